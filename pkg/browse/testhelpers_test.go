package browse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robinjoseph08/golib/logger"
	"github.com/spf13/afero"
	"github.com/storagebrowser/storage/pkg/filetype"
	"github.com/stretchr/testify/require"
)

// faultyFs fails Stat for selected paths and Open for every path when openErr
// is set. onStat, if set, runs before every Stat.
type faultyFs struct {
	afero.Fs
	statErrs map[string]error
	openErr  error
	onStat   func(name string)
}

func (f *faultyFs) Stat(name string) (os.FileInfo, error) {
	if f.onStat != nil {
		f.onStat(name)
	}
	if err, ok := f.statErrs[name]; ok {
		return nil, err
	}
	return f.Fs.Stat(name)
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.Fs.Open(name)
}

func testContext() context.Context {
	return logger.New().WithContext(context.Background())
}

func newTestFormatter() *Formatter {
	return NewFormatter(filetype.NewClassifier(filetype.NewRegistry(filetype.Image, filetype.Video, filetype.Audio)))
}

func newTestService(fsys afero.Fs, pageSize int, exclude ...string) *Service {
	return NewService(fsys, newTestFormatter(), NewExcludeFilter(exclude), pageSize)
}

// newMemFs creates the given paths under an in-memory filesystem. Paths
// ending in a slash are directories.
func newMemFs(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, p := range paths {
		if p[len(p)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(filepath.Clean(p), 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, afero.WriteFile(fsys, p, []byte("content of "+p), 0644))
	}
	return fsys
}

func itemNames(items []Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
