package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypedErrors(t *testing.T) {
	verr := NewValidationError("bad input")
	require.EqualError(t, verr, "bad input")
	require.True(t, IsValidationError(verr))
	require.False(t, IsUnavailableError(verr))

	uerr := NewUnavailableError("gone")
	require.True(t, IsUnavailableError(uerr))
	require.False(t, IsPolicyError(uerr))

	perr := NewPolicyError("too long")
	require.True(t, IsPolicyError(perr))
	require.False(t, IsInternalError(perr))

	ierr := NewInternalError("boom")
	require.True(t, IsInternalError(ierr))
	require.False(t, IsValidationError(ierr))
}
