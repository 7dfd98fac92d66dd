package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrDirectoryUnavailable.WithDetails("connection refused")

	assert.True(t, errors.Is(err, ErrDirectoryUnavailable))
	assert.False(t, errors.Is(err, ErrLedgerWriteFailed))
	assert.Equal(t, "connection refused", err.Details())
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrContactNotFound.WrapMessage("delete contact")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONTACT_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrContactNotFound))
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert alert")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert alert", err.Details())
}
