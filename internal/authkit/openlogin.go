// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authkit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-safe-auth/internal/config"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/utils"
	"github.com/MKhiriev/go-safe-auth/models"
	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Extra authorization request parameters understood by the hosted login page.
const (
	paramNetwork           = "network"
	paramChainID           = "chain_id"
	paramTheme             = "theme"
	paramLoginMethodsOrder = "login_methods_order"
	paramMFALevel          = "mfa_level"
	paramUXMode            = "ux_mode"
	paramWhiteLabelName    = "white_label_name"
	paramHiddenAdapters    = "hidden_adapters"
)

var defaultScopes = []string{oidc.ScopeOpenID, "profile", "email"}

// OpenloginFlow is the [LoginFlow] of the openlogin adapter: an OIDC
// authorization code flow with PKCE whose redirect lands on a loopback
// listener, so the hosted page can be used from a terminal.
type OpenloginFlow struct {
	opts            models.AuthOptions
	issuer          string
	redirectAddress string
	loginTimeout    time.Duration
	openURL         func(string) error
	logger          *logger.Logger

	mu       sync.RWMutex
	endpoint oauth2.Endpoint
	verifier *oidc.IDTokenVerifier
}

// NewOpenloginFlow builds the flow for the issuer and loopback address in
// authCfg. Discover must be called before Authenticate.
func NewOpenloginFlow(authCfg config.ClientAuth, opts models.AuthOptions, log *logger.Logger) *OpenloginFlow {
	return &OpenloginFlow{
		opts:            opts,
		issuer:          authCfg.OIDCIssuer,
		redirectAddress: authCfg.RedirectAddress,
		loginTimeout:    authCfg.LoginTimeout,
		openURL:         openBrowser,
		logger:          log.WithComponent("openlogin"),
	}
}

// Discover implements [LoginFlow]. It reads the issuer's
// .well-known/openid-configuration.
func (f *OpenloginFlow) Discover(ctx context.Context) error {
	provider, err := oidc.NewProvider(ctx, f.issuer)
	if err != nil {
		return fmt.Errorf("oidc discovery for %s: %w", f.issuer, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.endpoint = provider.Endpoint()
	f.verifier = provider.Verifier(&oidc.Config{ClientID: f.opts.ClientID})

	f.logger.Debug().Str("issuer", f.issuer).Msg("oidc issuer discovered")
	return nil
}

// Authenticate implements [LoginFlow]. It opens the hosted login page in the
// browser and waits for the redirect, at most loginTimeout.
func (f *OpenloginFlow) Authenticate(ctx context.Context) (models.LoginCredential, error) {
	f.mu.RLock()
	endpoint, verifier := f.endpoint, f.verifier
	f.mu.RUnlock()
	if verifier == nil {
		return models.LoginCredential{}, ErrNotDiscovered
	}

	state := utils.NewID()
	nonce := utils.NewID()
	pkce := oauth2.GenerateVerifier()

	srv, err := newCallbackServer(f.redirectAddress, state, f.logger)
	if err != nil {
		return models.LoginCredential{}, err
	}
	go srv.serve()
	defer srv.shutdown()

	oauthCfg := oauth2.Config{
		ClientID:    f.opts.ClientID,
		Endpoint:    endpoint,
		RedirectURL: srv.redirectURL(),
		Scopes:      defaultScopes,
	}

	authURL := oauthCfg.AuthCodeURL(state, f.authCodeOptions(nonce, pkce)...)
	if err = f.openURL(authURL); err != nil {
		return models.LoginCredential{}, fmt.Errorf("open browser: %w", err)
	}
	f.logger.Info().Str("redirect_url", oauthCfg.RedirectURL).Msg("waiting for login callback")

	waitCtx := ctx
	if f.loginTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, f.loginTimeout)
		defer cancel()
	}

	code, err := srv.wait(waitCtx)
	if err != nil {
		return models.LoginCredential{}, err
	}

	token, err := oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(pkce))
	if err != nil {
		return models.LoginCredential{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return models.LoginCredential{}, ErrMissingIDToken
	}

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return models.LoginCredential{}, fmt.Errorf("verify id token: %w", err)
	}
	if idToken.Nonce != nonce {
		return models.LoginCredential{}, ErrNonceMismatch
	}

	var claims struct {
		Email             string `json:"email"`
		Verifier          string `json:"verifier"`
		AggregateVerifier string `json:"aggregateVerifier"`
	}
	if err = idToken.Claims(&claims); err != nil {
		return models.LoginCredential{}, fmt.Errorf("decode id token claims: %w", err)
	}

	cred := models.LoginCredential{
		IDToken:  rawIDToken,
		Verifier: firstNonEmpty(claims.AggregateVerifier, claims.Verifier, idToken.Issuer),
		Email:    claims.Email,
	}
	f.logger.Debug().Str("verifier", cred.Verifier).Str("subject", idToken.Subject).Msg("id token verified")

	return cred, nil
}

func (f *OpenloginFlow) authCodeOptions(nonce, pkce string) []oauth2.AuthCodeOption {
	opts := []oauth2.AuthCodeOption{
		oidc.Nonce(nonce),
		oauth2.S256ChallengeOption(pkce),
		oauth2.SetAuthURLParam(paramNetwork, f.opts.Network),
		oauth2.SetAuthURLParam(paramChainID, f.opts.Chain.ChainID),
		oauth2.SetAuthURLParam(paramMFALevel, string(f.opts.LoginSettings.MFALevel)),
		oauth2.SetAuthURLParam(paramUXMode, string(f.opts.AdapterSettings.UXMode)),
	}
	if f.opts.UI.Theme != "" {
		opts = append(opts, oauth2.SetAuthURLParam(paramTheme, f.opts.UI.Theme))
	}
	if len(f.opts.UI.LoginMethodsOrder) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam(paramLoginMethodsOrder, strings.Join(f.opts.UI.LoginMethodsOrder, ",")))
	}
	if name := f.opts.AdapterSettings.WhiteLabel.Name; name != "" {
		opts = append(opts, oauth2.SetAuthURLParam(paramWhiteLabelName, name))
	}
	if hidden := f.opts.HiddenAdapters(false); len(hidden) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam(paramHiddenAdapters, strings.Join(hidden, ",")))
	}
	return opts
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
