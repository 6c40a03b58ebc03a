// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package authkit is the client-side authentication kit.
//
// It is made of two layers. A [ModalPack] owns everything provider-specific:
// the wallet adapter registry discovered from the provider API, the hosted
// openlogin flow and the provider handle bound to the signed-in wallet. A
// [SafeAuthKit] sits on top of a pack and adds what the session needs on the
// Safe side: after the pack yields an externally-owned account, the Safes it
// owns are looked up in the Safe transaction service.
//
//	pack := NewModalPack(opts, authServer, flow, rpc, log)
//	kit, err := Init(ctx, pack, txService, log)
//	info, err := kit.SignIn(ctx)
package authkit

import (
	"context"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authkit_mock.go -package=mock

// AuthClient is the handle the session service works with once the kit has
// been initialised.
type AuthClient interface {
	// SignIn blocks until the user completes the hosted login and returns the
	// signed-in EOA with the Safes it owns.
	SignIn(ctx context.Context) (models.SessionInfo, error)

	// SignOut invalidates the provider session.
	SignOut(ctx context.Context) error

	// GetProvider returns the provider handle of the current session, or nil
	// when nobody is signed in.
	GetProvider() adapter.RPCAdapter
}

// Pack is a wallet/social-login provider integration.
type Pack interface {
	// Init discovers the adapters offered for the configured client id.
	Init(ctx context.Context) error

	// SignIn runs the login flow and returns the EOA address.
	SignIn(ctx context.Context) (string, error)

	// SignOut ends the provider session.
	SignOut(ctx context.Context) error

	// GetProvider returns the provider handle bound to the signed-in wallet.
	GetProvider() adapter.RPCAdapter
}

// LoginFlow drives the hosted login page.
type LoginFlow interface {
	// Discover fetches the issuer metadata. It must succeed before
	// Authenticate is called.
	Discover(ctx context.Context) error

	// Authenticate sends the user to the hosted login page and waits for the
	// verified result.
	Authenticate(ctx context.Context) (models.LoginCredential, error)
}
