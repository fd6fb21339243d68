package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Image, Video, Audio)

	tests := []struct {
		path     string
		expected string
		ok       bool
	}{
		{"/data/d.jpg", TypeImage, true},
		{"/data/D.JPG", TypeImage, true},
		{"/data/movie.webm", TypeVideo, true},
		{"/data/song.flac", TypeAudio, true},
		{"/data/c.txt", "", false},
		{"/data/Makefile", "", false},
		{"/data/.jpg.bak", "", false},
	}

	for _, tt := range tests {
		got, ok := r.Detect(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.expected, got, tt.path)
	}
}

func TestRegistry_FirstCategoryWins(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		Category{Name: "first", Extensions: []string{".x"}},
		Category{Name: "second", Extensions: []string{".X"}},
	)
	got, ok := r.Detect("file.x")
	assert.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestNewRegistryFromNames(t *testing.T) {
	t.Parallel()

	r, err := NewRegistryFromNames([]string{"image", " Text "})
	require.NoError(t, err)

	got, ok := r.Detect("notes.txt")
	assert.True(t, ok)
	assert.Equal(t, TypeText, got)

	_, ok = r.Detect("song.mp3")
	assert.False(t, ok)

	_, err = NewRegistryFromNames([]string{"image", "spreadsheet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"spreadsheet"`)
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	c := NewClassifier(NewRegistry(Image))

	t.Run("directory takes precedence over extension", func(t *testing.T) {
		t.Parallel()
		got := c.Classify("/data/photos.jpg", true)
		require.NotNil(t, got.FileType)
		assert.Equal(t, TypeDirectory, *got.FileType)
		assert.False(t, got.Previewable)
	})

	t.Run("recognized file is previewable", func(t *testing.T) {
		t.Parallel()
		got := c.Classify("/data/d.jpg", false)
		require.NotNil(t, got.FileType)
		assert.Equal(t, TypeImage, *got.FileType)
		assert.True(t, got.Previewable)
	})

	t.Run("unrecognized file has no type", func(t *testing.T) {
		t.Parallel()
		got := c.Classify("/data/c.txt", false)
		assert.Nil(t, got.FileType)
		assert.False(t, got.Previewable)
	})
}
