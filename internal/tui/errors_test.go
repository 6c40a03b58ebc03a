package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/internal/authkit"
	"github.com/MKhiriev/go-safe-auth/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "busy", err: service.ErrOperationInProgress, want: "Another login or logout is still running"},
		{name: "timeout", err: fmt.Errorf("%w: %w", service.ErrSignIn, authkit.ErrLoginTimeout), want: "Login timed out, the browser flow was not completed"},
		{name: "cancelled", err: authkit.ErrLoginCancelled, want: "Login cancelled"},
		{name: "no adapters", err: authkit.ErrNoAdaptersAvailable, want: "No login methods available for this client id"},
		{name: "unauthorized", err: fmt.Errorf("%w: bad client", adapter.ErrUnauthorized), want: "The provider rejected the client id"},
		{name: "network", err: errors.New("dial tcp 127.0.0.1:443: connect: connection refused"), want: "Network unavailable or provider unreachable"},
		{name: "other", err: errors.New("something else"), want: "something else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
