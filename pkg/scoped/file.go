package scoped

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/logging"
)

// TempFile owns one freshly created empty scratch file. The guard owns the
// path, not an open descriptor: the handle used for creation is closed
// before the constructor returns.
//
// Unlike TempDir, Release is strict about external interference: if the
// file has already been removed by other code, Release fails instead of
// shrugging, because it means something else mutated a path the guard was
// supposed to own exclusively.
type TempFile struct {
	fs       afero.Fs
	path     string
	released bool
	log      zerolog.Logger
}

// NewTempFile creates a uniquely named empty file under the system temp
// root on the OS filesystem.
func NewTempFile() (*TempFile, error) {
	return NewTempFileFS(afero.NewOsFs())
}

// NewTempFileFS creates the scratch file on an arbitrary filesystem.
func NewTempFileFS(fsys afero.Fs) (*TempFile, error) {
	file, err := afero.TempFile(fsys, "", tempPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTempCreate, "cannot create scratch file")
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		_ = fsys.Remove(path)
		return nil, errors.Wrapf(err, errors.ErrTempCreate, "cannot close scratch file %s", path)
	}

	log := logging.GetLogger("scoped")
	log.Debug().Str("path", path).Msg("created scratch file")
	return &TempFile{fs: fsys, path: path, log: log}, nil
}

// Path returns the file the guard owns.
func (f *TempFile) Path() string {
	return f.path
}

// Release removes the file. Only the first call acts; later calls return
// nil. A file already deleted by other code makes Release fail.
func (f *TempFile) Release() error {
	if f.released {
		return nil
	}
	f.released = true

	if err := f.fs.Remove(f.path); err != nil {
		return errors.Wrapf(err, errors.ErrTempCleanup, "cannot remove scratch file %s", f.path)
	}
	f.log.Debug().Str("path", f.path).Msg("removed scratch file")
	return nil
}

// MustRelease is Release for defer statements; it panics when the file
// cannot be removed.
func (f *TempFile) MustRelease() {
	if err := f.Release(); err != nil {
		panic(err)
	}
}
