// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport used by the auth kit.
//
// Three remote parties are involved in a session: the authentication
// provider's API (adapter discovery, wallet lookup, remote logout), the Safe
// transaction service (safes owned by an EOA) and the chain's JSON-RPC node
// (requests forwarded by the provider handle). Each one gets an interface and
// a resty-backed implementation.
//
// HTTP status codes are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can rely on [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-safe-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthServerAdapter talks to the authentication provider's API.
type AuthServerAdapter interface {
	// DiscoverAdapters lists the wallet adapters the provider offers for the
	// client id on the given network.
	DiscoverAdapters(ctx context.Context, clientID, network string) ([]models.AdapterInfo, error)

	// LookupWallet exchanges a verified id token for the wallet address bound
	// to the identity and a provider session token.
	LookupWallet(ctx context.Context, req models.WalletRequest) (models.WalletIdentity, error)

	// Logout invalidates the provider session identified by sessionToken.
	Logout(ctx context.Context, sessionToken string) error
}

// TxServiceAdapter talks to the Safe transaction service.
type TxServiceAdapter interface {
	// GetOwnerSafes returns the addresses of the Safes owned by owner, in the
	// order the service lists them. An owner without Safes yields an empty
	// slice and no error.
	GetOwnerSafes(ctx context.Context, owner string) ([]string, error)
}

// RPCAdapter sends JSON-RPC 2.0 calls to the chain's RPC target.
type RPCAdapter interface {
	// Call invokes method with params and decodes the result into result
	// (which may be nil to discard it).
	Call(ctx context.Context, method string, params []any, result any) error
}
