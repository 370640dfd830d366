package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/spf13/afero"

	"github.com/arthur-debert/testkit/pkg/errors"
)

// Size is the length in bytes of a file digest.
const Size = sha256.Size

// readBufferSize is the chunk size used for streaming file reads.
const readBufferSize = 32 * 1024

// Digest is the SHA-256 summary of a file's content. Two files with equal
// digests are treated as content-equal for testing purposes.
type Digest [Size]byte

// Hex returns the digest as lowercase hexadecimal.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String renders the digest in "sha256:<hex>" form.
func (d Digest) String() string {
	return "sha256:" + d.Hex()
}

// Equal reports whether two digests are identical.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// File computes the digest of a file on the OS filesystem.
func File(path string) (Digest, error) {
	return FileFS(afero.NewOsFs(), path)
}

// FileFS computes the digest of a file on the given filesystem, reading it
// in fixed-size chunks so large files never load fully into memory.
func FileFS(fsys afero.Fs, path string) (Digest, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return Digest{}, errors.Wrapf(err, errors.ErrFileRead, "cannot open %s for hashing", path)
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	buf := make([]byte, readBufferSize)
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return Digest{}, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s for hashing", path)
	}

	var digest Digest
	copy(digest[:], hash.Sum(nil))
	return digest, nil
}
