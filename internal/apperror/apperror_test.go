package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{Validation("missing fields"), http.StatusBadRequest},
		{Auth("Invalid credentials"), http.StatusUnauthorized},
		{Forbidden("Insufficient role"), http.StatusForbidden},
		{NotFound("Course not found"), http.StatusNotFound},
		{Conflict("Already registered"), http.StatusBadRequest},
		{Capacity("No seats left"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		require.Equal(t, tt.status, tt.err.Status, tt.err.Message)
	}
}

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	inner := NotFound("Course not found")
	wrapped := fmt.Errorf("register: %w", inner)

	ae, ok := As(wrapped)
	require.True(t, ok)
	require.Equal(t, inner, ae)

	_, ok = As(errors.New("plain"))
	require.False(t, ok)
}
