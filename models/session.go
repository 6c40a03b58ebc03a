// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionInfo is the signed-in identity as seen by the client: the
// externally-owned account and the Safe wallets it owns, in the order the
// transaction service returned them.
type SessionInfo struct {
	EOA   string   `json:"eoa"`
	Safes []string `json:"safes,omitempty"`
}

// HasSafes reports whether at least one Safe is associated with the EOA.
func (s SessionInfo) HasSafes() bool {
	return len(s.Safes) > 0
}

// Clone returns a copy that does not share the Safes backing array.
func (s SessionInfo) Clone() SessionInfo {
	out := SessionInfo{EOA: s.EOA}
	if s.Safes != nil {
		out.Safes = append(make([]string, 0, len(s.Safes)), s.Safes...)
	}
	return out
}

// SessionState is the lifecycle tag of the client session. At most one
// authentication operation is outstanding at a time.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionInitializing
	SessionReady
	SessionSigningIn
	SessionSigningOut
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionInitializing:
		return "initializing"
	case SessionReady:
		return "ready"
	case SessionSigningIn:
		return "signing in"
	case SessionSigningOut:
		return "signing out"
	default:
		return "unknown"
	}
}

// Busy reports whether an authentication operation is in flight.
func (s SessionState) Busy() bool {
	return s == SessionInitializing || s == SessionSigningIn || s == SessionSigningOut
}
