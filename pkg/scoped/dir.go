package scoped

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/logging"
)

const tempPrefix = "testkit-"

// TempDir owns one freshly created scratch directory. While the guard is
// alive the directory exists and belongs to the guard alone; Release
// removes it together with everything created inside it.
type TempDir struct {
	fs       afero.Fs
	path     string
	released bool
	log      zerolog.Logger
}

// NewTempDir creates a uniquely named directory under the system temp root
// on the OS filesystem.
func NewTempDir() (*TempDir, error) {
	return NewTempDirFS(afero.NewOsFs())
}

// NewTempDirFS creates the scratch directory on an arbitrary filesystem.
func NewTempDirFS(fsys afero.Fs) (*TempDir, error) {
	path, err := afero.TempDir(fsys, "", tempPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTempCreate, "cannot create scratch directory")
	}

	log := logging.GetLogger("scoped")
	log.Debug().Str("path", path).Msg("created scratch directory")
	return &TempDir{fs: fsys, path: path, log: log}, nil
}

// Path returns the directory the guard owns.
func (d *TempDir) Path() string {
	return d.path
}

// WriteFile creates a file with the given content inside the scratch
// directory, creating parent directories as needed, and returns its full
// path. name may contain separators for nested layouts.
func (d *TempDir) WriteFile(name, content string) (string, error) {
	path := filepath.Join(d.path, name)
	if err := d.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent directories for %s", path)
	}
	if err := afero.WriteFile(d.fs, path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return path, nil
}

// Release removes the directory and all its contents. Only the first call
// acts; later calls return nil.
func (d *TempDir) Release() error {
	if d.released {
		return nil
	}
	d.released = true

	if err := d.fs.RemoveAll(d.path); err != nil {
		return errors.Wrapf(err, errors.ErrTempCleanup, "cannot remove scratch directory %s", d.path)
	}
	d.log.Debug().Str("path", d.path).Msg("removed scratch directory")
	return nil
}

// MustRelease is Release for defer statements; it panics when the
// directory cannot be removed.
func (d *TempDir) MustRelease() {
	if err := d.Release(); err != nil {
		panic(err)
	}
}
