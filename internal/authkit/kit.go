// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authkit

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/models"
)

// SafeAuthKit combines a login [Pack] with the Safe transaction service.
type SafeAuthKit struct {
	pack      Pack
	txService adapter.TxServiceAdapter
	logger    *logger.Logger
}

// Init initialises pack and returns a kit bound to it. The kit is not usable
// when an error is returned.
func Init(ctx context.Context, pack Pack, txService adapter.TxServiceAdapter, log *logger.Logger) (*SafeAuthKit, error) {
	if err := pack.Init(ctx); err != nil {
		return nil, fmt.Errorf("init auth pack: %w", err)
	}

	return &SafeAuthKit{
		pack:      pack,
		txService: txService,
		logger:    log.WithComponent("safe-auth-kit"),
	}, nil
}

// SignIn implements [AuthClient]. A failing Safe lookup does not fail the
// sign-in; the session then carries no Safes.
func (k *SafeAuthKit) SignIn(ctx context.Context) (models.SessionInfo, error) {
	eoa, err := k.pack.SignIn(ctx)
	if err != nil {
		return models.SessionInfo{}, err
	}

	safes, err := k.txService.GetOwnerSafes(ctx, eoa)
	if err != nil {
		k.logger.Err(err).Str("eoa", eoa).Msg("failed to fetch owner safes")
		safes = []string{}
	}

	info := models.SessionInfo{EOA: eoa, Safes: safes}
	k.logger.Debug().Str("eoa", info.EOA).Strs("safes", info.Safes).Msg("sign in response")
	return info, nil
}

// SignOut implements [AuthClient].
func (k *SafeAuthKit) SignOut(ctx context.Context) error {
	return k.pack.SignOut(ctx)
}

// GetProvider implements [AuthClient].
func (k *SafeAuthKit) GetProvider() adapter.RPCAdapter {
	return k.pack.GetProvider()
}
