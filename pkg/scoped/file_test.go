// Test Type: Unit Test
// Description: Tests for the TempFile guard - scratch file lifecycle and strict cleanup

package scoped_test

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/scoped"
)

func TestNewTempFile(t *testing.T) {
	file, err := scoped.NewTempFile()
	require.NoError(t, err)
	defer file.MustRelease()

	info, err := os.Stat(file.Path())
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Zero(t, info.Size(), "fresh scratch file must be empty")
}

func TestTempFile_ReleaseRemovesFile(t *testing.T) {
	file, err := scoped.NewTempFile()
	require.NoError(t, err)

	path := file.Path()
	require.NoError(t, file.Release())
	assert.NoFileExists(t, path)
}

func TestTempFile_ReleaseIsTerminal(t *testing.T) {
	file, err := scoped.NewTempFile()
	require.NoError(t, err)

	require.NoError(t, file.Release())
	require.NoError(t, file.Release(), "second release must be a no-op")
}

func TestTempFile_ExternalDeletionFailsRelease(t *testing.T) {
	file, err := scoped.NewTempFile()
	require.NoError(t, err)

	// Something else removing the file breaks the guard's exclusive
	// ownership; Release must surface that instead of shrugging.
	require.NoError(t, os.Remove(file.Path()))

	err = file.Release()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTempCleanup))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTempFile_MustReleasePanicsOnExternalDeletion(t *testing.T) {
	file, err := scoped.NewTempFile()
	require.NoError(t, err)

	require.NoError(t, os.Remove(file.Path()))

	assert.Panics(t, func() {
		file.MustRelease()
	})
}

func TestTempFile_GuardsAreIndependent(t *testing.T) {
	first, err := scoped.NewTempFile()
	require.NoError(t, err)
	defer first.MustRelease()

	second, err := scoped.NewTempFile()
	require.NoError(t, err)
	defer second.MustRelease()

	assert.NotEqual(t, first.Path(), second.Path())
}
