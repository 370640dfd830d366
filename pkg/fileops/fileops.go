// Package fileops performs single and batch file operations with explicit
// partial-failure semantics: batches run in order, the first hard failure
// aborts, and work completed before the failure is never rolled back.
package fileops

import (
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/logging"
)

// Ops performs file operations against one filesystem.
type Ops struct {
	fs  afero.Fs
	log zerolog.Logger
}

// New creates an Ops bound to the given filesystem.
func New(fsys afero.Fs) *Ops {
	return &Ops{
		fs:  fsys,
		log: logging.GetLogger("fileops"),
	}
}

// NewOS creates an Ops bound to the real OS filesystem.
func NewOS() *Ops {
	return New(afero.NewOsFs())
}

// DeleteFile removes exactly one file. The file must exist.
func (o *Ops) DeleteFile(path string) error {
	if err := o.fs.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", path)
	}
	o.log.Debug().Str("path", path).Msg("deleted file")
	return nil
}

// DeleteFiles removes every file in paths, in order.
//
// When ignoreMissing is true, paths that do not exist are skipped and the
// batch continues; any other deletion error still aborts. When ignoreMissing
// is false the first failure aborts the batch. Either way, files deleted
// before an abort stay deleted — deletion is not rolled back.
func (o *Ops) DeleteFiles(paths []string, ignoreMissing bool) error {
	for _, path := range paths {
		err := o.fs.Remove(path)
		if err == nil {
			o.log.Debug().Str("path", path).Msg("deleted file")
			continue
		}
		if ignoreMissing && stderrors.Is(err, fs.ErrNotExist) {
			o.log.Debug().Str("path", path).Msg("skipped missing file")
			continue
		}
		return errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", path)
	}
	return nil
}

// CopyFile copies one file and returns the number of bytes written. An
// existing destination is overwritten.
func (o *Ops) CopyFile(source, destination string) (int64, error) {
	src, err := o.fs.Open(source)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileCopy, "cannot open source %s", source)
	}
	defer func() {
		_ = src.Close()
	}()

	dst, err := o.fs.Create(destination)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileCopy, "cannot create destination %s", destination)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return written, errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", source, destination)
	}
	if err := dst.Close(); err != nil {
		return written, errors.Wrapf(err, errors.ErrFileCopy, "cannot finish writing %s", destination)
	}

	o.log.Debug().
		Str("source", source).
		Str("destination", destination).
		Int64("bytes", written).
		Msg("copied file")
	return written, nil
}

// CopyFiles copies each source into destDir under the source's base name;
// directory components of the source are discarded. A source with no
// extractable base name (the root path, for instance) is silently skipped.
// The first failure aborts the batch; files copied before it stay in place.
func (o *Ops) CopyFiles(sources []string, destDir string) error {
	for _, source := range sources {
		name := filepath.Base(source)
		if name == "." || name == string(filepath.Separator) {
			o.log.Debug().Str("source", source).Msg("skipped source with no base name")
			continue
		}
		if _, err := o.CopyFile(source, filepath.Join(destDir, name)); err != nil {
			return err
		}
	}
	return nil
}

var defaultOps = NewOS()

// DeleteFile removes one file on the OS filesystem.
func DeleteFile(path string) error {
	return defaultOps.DeleteFile(path)
}

// DeleteFiles removes files on the OS filesystem. See Ops.DeleteFiles.
func DeleteFiles(paths []string, ignoreMissing bool) error {
	return defaultOps.DeleteFiles(paths, ignoreMissing)
}

// CopyFile copies one file on the OS filesystem. See Ops.CopyFile.
func CopyFile(source, destination string) (int64, error) {
	return defaultOps.CopyFile(source, destination)
}

// CopyFiles copies files into a directory on the OS filesystem. See
// Ops.CopyFiles.
func CopyFiles(sources []string, destDir string) error {
	return defaultOps.CopyFiles(sources, destDir)
}
