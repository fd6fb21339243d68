package browse

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// NewRootFs returns the filesystem browsing is confined to. A root of "/"
// exposes the whole OS filesystem; anything else is jailed, and "/" inside
// the jail maps to root.
func NewRootFs(root string) afero.Fs {
	root = filepath.Clean(root)
	if root == string(filepath.Separator) {
		return afero.NewOsFs()
	}
	return afero.NewBasePathFs(afero.NewOsFs(), root)
}
