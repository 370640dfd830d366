// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/testkit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "file_delete_error",
			code:    errors.ErrFileDelete,
			message: "cannot delete file",
			wantStr: "[FILE_DELETE] cannot delete file",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid path",
			wantStr: "[INVALID_INPUT] invalid path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap_PreservesUnderlyingError(t *testing.T) {
	wrapped := errors.Wrap(fs.ErrNotExist, errors.ErrFileDelete, "cannot delete file")

	if !stderrors.Is(wrapped, fs.ErrNotExist) {
		t.Error("Wrap() should keep the underlying error reachable via errors.Is")
	}

	if got := wrapped.Unwrap(); got != fs.ErrNotExist {
		t.Errorf("Unwrap() = %v, want %v", got, fs.ErrNotExist)
	}
}

func TestWrap_NilError(t *testing.T) {
	if got := errors.Wrap(nil, errors.ErrInternal, "whatever"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	if got := errors.Wrapf(nil, errors.ErrInternal, "whatever %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrTempCleanup, "cannot remove %s", "/tmp/x")

	if !errors.IsErrorCode(err, errors.ErrTempCleanup) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrTempCreate) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrTempCleanup) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{
			name: "testkit_error",
			err:  errors.New(errors.ErrEnvSet, "cannot set"),
			want: errors.ErrEnvSet,
		},
		{
			name: "wrapped_testkit_error",
			err:  errors.Wrap(errors.New(errors.ErrFileCopy, "inner"), errors.ErrInternal, "outer"),
			want: errors.ErrInternal,
		},
		{
			name: "plain_error",
			err:  stderrors.New("plain"),
			want: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileCopy, "copy failed").
		WithDetail("source", "/a").
		WithDetail("destination", "/b")

	if err.Details["source"] != "/a" {
		t.Errorf("Details[source] = %v, want /a", err.Details["source"])
	}

	if err.Details["destination"] != "/b" {
		t.Errorf("Details[destination] = %v, want /b", err.Details["destination"])
	}
}
