// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/internal/authkit"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/models"
)

type clientSessionService struct {
	opts        models.AuthOptions
	initializer authkit.Initializer
	logger      *logger.Logger

	mu          sync.Mutex
	state       models.SessionState
	initStarted bool
	client      authkit.AuthClient
	session     *models.SessionInfo
	provider    adapter.RPCAdapter
}

// NewClientSessionService returns a [ClientSessionService] that builds its
// authentication client with initializer on the first Initialize call.
func NewClientSessionService(opts models.AuthOptions, initializer authkit.Initializer, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		opts:        opts,
		initializer: initializer,
		logger:      log.WithComponent("session-service"),
	}
}

func (s *clientSessionService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Busy() {
		s.mu.Unlock()
		return ErrOperationInProgress
	}
	if s.initStarted {
		s.mu.Unlock()
		return nil
	}
	s.initStarted = true
	s.state = models.SessionInitializing
	s.mu.Unlock()

	client, err := s.initializer(ctx, s.opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = models.SessionIdle
		s.logger.Err(err).Str("network", s.opts.Network).Msg("auth client initialization failed")
		return fmt.Errorf("%w: %w", ErrInitialize, err)
	}

	s.client = client
	s.state = models.SessionReady
	s.logger.Info().Str("network", s.opts.Network).Str("chain_id", s.opts.Chain.ChainID).Msg("auth client ready")
	return nil
}

func (s *clientSessionService) Login(ctx context.Context) (models.SessionInfo, error) {
	s.mu.Lock()
	client := s.client
	if client == nil {
		s.mu.Unlock()
		s.logger.Debug().Msg("login ignored: auth client not initialised")
		return models.SessionInfo{}, nil
	}
	if s.state.Busy() {
		s.mu.Unlock()
		return models.SessionInfo{}, ErrOperationInProgress
	}
	s.state = models.SessionSigningIn
	s.mu.Unlock()

	info, err := client.SignIn(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.SessionReady

	if err != nil {
		s.logger.Err(err).Msg("sign in failed")
		return models.SessionInfo{}, fmt.Errorf("%w: %w", ErrSignIn, err)
	}

	stored := info.Clone()
	s.session = &stored
	s.provider = client.GetProvider()

	s.logger.Info().Str("eoa", info.EOA).Int("safes", len(info.Safes)).Msg("signed in")
	return info.Clone(), nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	if client == nil {
		s.mu.Unlock()
		return nil
	}
	if s.state.Busy() {
		s.mu.Unlock()
		return ErrOperationInProgress
	}
	if s.session == nil {
		s.mu.Unlock()
		return nil
	}
	eoa := s.session.EOA
	s.session = nil
	s.provider = nil
	s.state = models.SessionSigningOut
	s.mu.Unlock()

	err := client.SignOut(ctx)

	s.mu.Lock()
	s.state = models.SessionReady
	s.mu.Unlock()

	if err != nil {
		s.logger.Err(err).Str("eoa", eoa).Msg("remote sign out failed, local session cleared")
		return fmt.Errorf("%w: %w", ErrRemoteSignOut, err)
	}

	s.logger.Info().Str("eoa", eoa).Msg("signed out")
	return nil
}

func (s *clientSessionService) Session() (models.SessionInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return models.SessionInfo{}, false
	}
	return s.session.Clone(), true
}

func (s *clientSessionService) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *clientSessionService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.client != nil
}

func (s *clientSessionService) Provider() adapter.RPCAdapter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.provider
}
