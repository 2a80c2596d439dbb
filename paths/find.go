// Package paths holds the default locations used by the tile tools and the
// filesystem checks made before a sheet is sliced.
package paths

import (
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	// DefaultSource is the sheet looked for in the working directory.
	DefaultSource = "tiles.png"
	// DefaultOutputDir is where the game expects to find /tiles/<name>.png.
	DefaultOutputDir = "public/tiles"
)

// Exists reports whether anything can be found at path.
//
// A path that cannot be examined (for instance due to permissions) is
// reported as missing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates dir along with any missing parents. It reports whether
// anything had to be created.
func EnsureDir(dir string) (bool, error) {
	if s, err := os.Stat(dir); err == nil {
		if !s.IsDir() {
			return false, errors.Errorf("%q exists and is not a directory", dir)
		}
		return false, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrapf(err, "creating directory %q", dir)
	}
	glog.V(1).Infof("paths.EnsureDir(%q): created", dir)
	return true, nil
}
