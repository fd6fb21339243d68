package browse

import (
	"path/filepath"

	"github.com/storagebrowser/storage/pkg/filetype"
	"github.com/storagebrowser/storage/pkg/pathref"
)

// BackItemName is the display name of the synthetic parent entry.
const BackItemName = "BACK"

// Formatter turns entries into items.
type Formatter struct {
	classifier *filetype.Classifier
}

func NewFormatter(classifier *filetype.Classifier) *Formatter {
	return &Formatter{classifier: classifier}
}

func (f *Formatter) Format(entry Entry) Item {
	c := f.classifier.Classify(entry.AbsolutePath, entry.IsDir)
	return Item{
		Name:             entry.Name,
		FileType:         c.FileType,
		IsDir:            entry.IsDir,
		EncodedURI:       pathref.Encode(entry.AbsolutePath),
		Size:             entry.Size,
		PreviewAvailable: c.Previewable,
	}
}

// FormatUp builds the BACK item for dir. It references the parent of dir, or
// dir itself when dir is a root.
func (f *Formatter) FormatUp(dir string) Item {
	parent := parentOf(dir)
	c := f.classifier.Classify(parent, true)
	return Item{
		Name:       BackItemName,
		FileType:   c.FileType,
		IsDir:      true,
		EncodedURI: pathref.Encode(parent),
	}
}

func parentOf(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}
