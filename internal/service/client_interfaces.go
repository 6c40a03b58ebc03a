package service

import (
	"context"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the authentication client and the session it
// produced. Once the client exists, at most one of Login and Logout runs at a
// time; a call made while another is in flight fails with
// ErrOperationInProgress and leaves the state untouched.
type ClientSessionService interface {
	// Initialize builds the authentication client from the configured
	// options. Only the first call does any work. On failure the client stays
	// unset and Login/Logout become no-ops.
	Initialize(ctx context.Context) error

	// Login runs the sign-in flow and stores the resulting session together
	// with the provider handle. Before a successful Initialize it returns a
	// zero SessionInfo and no error. On failure the session is unchanged and
	// the error wraps ErrSignIn.
	Login(ctx context.Context) (models.SessionInfo, error)

	// Logout clears the session and the provider handle, then signs out
	// remotely. The local state is cleared even if the remote sign-out fails;
	// that failure is returned wrapped in ErrRemoteSignOut. Without a client
	// or without a session it does nothing and returns nil.
	Logout(ctx context.Context) error

	// Session returns a copy of the current session, if any.
	Session() (models.SessionInfo, bool)

	// State returns the lifecycle tag.
	State() models.SessionState

	// Ready reports whether an authentication client is available.
	Ready() bool

	// Provider returns the provider handle of the current session, or nil.
	Provider() adapter.RPCAdapter
}

// AppInfoService exposes build metadata to the UI.
type AppInfoService interface {
	// GetAppInfo returns the build metadata the binary was linked with.
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
