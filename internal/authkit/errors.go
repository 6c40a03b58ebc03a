package authkit

import "errors"

var (
	ErrNoAdaptersAvailable = errors.New("no wallet adapters available")
	ErrLoginCancelled      = errors.New("login cancelled")
	ErrStateMismatch       = errors.New("login state mismatch")
	ErrNonceMismatch       = errors.New("id token nonce mismatch")
	ErrMissingAuthCode     = errors.New("authorization code missing in callback")
	ErrMissingIDToken      = errors.New("id_token missing in token response")
	ErrLoginTimeout        = errors.New("login timed out")
	ErrNotDiscovered       = errors.New("login flow used before discovery")
	ErrNotSignedIn         = errors.New("not signed in")
)
