// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging command-line flags, environment variables, an optional JSON file
// and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the authentication provider settings.
	Auth Auth `envPrefix:"AUTH_"`
	// UI holds the login modal display preferences.
	UI UI `envPrefix:"UI_"`
	// Chain identifies the network the provider handle is bound to.
	Chain Chain `envPrefix:"CHAIN_"`
	// Adapter holds outbound transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the settings of the authentication provider and its openlogin
// adapter.
type Auth struct {
	// ClientID identifies this application to the provider. It may be empty:
	// initialization then fails at the provider instead of at startup.
	// Env: AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Network is the provider network (e.g. "testnet", "mainnet").
	// Env: AUTH_NETWORK
	Network string `env:"NETWORK"`
	// ProviderURL is the base URL of the provider API.
	// Env: AUTH_PROVIDER_URL
	ProviderURL string `env:"PROVIDER_URL"`
	// OIDCIssuer is the issuer used for OIDC discovery of the social login.
	// Env: AUTH_OIDC_ISSUER
	OIDCIssuer string `env:"OIDC_ISSUER"`
	// RedirectAddress is the loopback host:port receiving the login callback.
	// Env: AUTH_REDIRECT_ADDRESS
	RedirectAddress string `env:"REDIRECT_ADDRESS"`
	// LoginTimeout bounds how long sign-in waits for the browser callback.
	// Env: AUTH_LOGIN_TIMEOUT
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"`
	// MFALevel is one of default, optional, mandatory, none.
	// Env: AUTH_MFA_LEVEL
	MFALevel string `env:"MFA_LEVEL"`
	// UXMode is popup or redirect.
	// Env: AUTH_UX_MODE
	UXMode string `env:"UX_MODE"`
	// WhiteLabelName is the brand shown on the hosted login page.
	// Env: AUTH_WHITE_LABEL_NAME
	WhiteLabelName string `env:"WHITE_LABEL_NAME"`
}

// UI holds the display preferences passed to the login modal.
type UI struct {
	// Theme is "dark" or "light".
	// Env: UI_THEME
	Theme string `env:"THEME"`
	// LoginMethodsOrder lists social login methods in display order.
	// Env: UI_LOGIN_METHODS_ORDER (comma separated)
	LoginMethodsOrder []string `env:"LOGIN_METHODS_ORDER" envSeparator:","`
}

// Chain identifies an EVM chain.
type Chain struct {
	// Namespace of the chain (e.g. "eip155").
	// Env: CHAIN_NAMESPACE
	Namespace string `env:"NAMESPACE"`
	// ChainID in hex (e.g. "0x13881").
	// Env: CHAIN_ID
	ChainID string `env:"ID"`
	// RPCTarget is the JSON-RPC endpoint of the chain.
	// Env: CHAIN_RPC_TARGET
	RPCTarget string `env:"RPC_TARGET"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// TxServiceURL is the base URL of the Safe transaction service.
	// Env: ADAPTER_TX_SERVICE_URL
	TxServiceURL string `env:"TX_SERVICE_URL"`
	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration. For every
// field the first non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
