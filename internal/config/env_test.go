// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG":                  "/path/to/config.json",
		"AUTH_CLIENT_ID":          "BExampleClientID",
		"AUTH_NETWORK":            "mainnet",
		"AUTH_PROVIDER_URL":       "https://auth.example.com",
		"AUTH_OIDC_ISSUER":        "https://issuer.example.com",
		"AUTH_REDIRECT_ADDRESS":   "127.0.0.1:9999",
		"AUTH_LOGIN_TIMEOUT":      "2m",
		"AUTH_MFA_LEVEL":          "optional",
		"AUTH_UX_MODE":            "redirect",
		"AUTH_WHITE_LABEL_NAME":   "Acme",
		"UI_THEME":                "light",
		"UI_LOGIN_METHODS_ORDER":  "github,google,twitter",
		"CHAIN_NAMESPACE":         "eip155",
		"CHAIN_ID":                "0x1",
		"CHAIN_RPC_TARGET":        "https://rpc.example.com",
		"ADAPTER_TX_SERVICE_URL":  "https://safe-transaction-mainnet.safe.global",
		"ADAPTER_REQUEST_TIMEOUT": "10s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "BExampleClientID", cfg.Auth.ClientID)
	assert.Equal(t, "mainnet", cfg.Auth.Network)
	assert.Equal(t, "https://auth.example.com", cfg.Auth.ProviderURL)
	assert.Equal(t, "https://issuer.example.com", cfg.Auth.OIDCIssuer)
	assert.Equal(t, "127.0.0.1:9999", cfg.Auth.RedirectAddress)
	assert.Equal(t, 2*time.Minute, cfg.Auth.LoginTimeout)
	assert.Equal(t, "optional", cfg.Auth.MFALevel)
	assert.Equal(t, "redirect", cfg.Auth.UXMode)
	assert.Equal(t, "Acme", cfg.Auth.WhiteLabelName)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, []string{"github", "google", "twitter"}, cfg.UI.LoginMethodsOrder)
	assert.Equal(t, "eip155", cfg.Chain.Namespace)
	assert.Equal(t, "0x1", cfg.Chain.ChainID)
	assert.Equal(t, "https://rpc.example.com", cfg.Chain.RPCTarget)
	assert.Equal(t, "https://safe-transaction-mainnet.safe.global", cfg.Adapter.TxServiceURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, Auth{}, cfg.Auth)
	assert.Equal(t, Chain{}, cfg.Chain)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Empty(t, cfg.UI.LoginMethodsOrder)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"AUTH_LOGIN_TIMEOUT": "invalid_duration"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

var knownEnvKeys = []string{
	"CONFIG",
	"AUTH_CLIENT_ID", "AUTH_NETWORK", "AUTH_PROVIDER_URL", "AUTH_OIDC_ISSUER",
	"AUTH_REDIRECT_ADDRESS", "AUTH_LOGIN_TIMEOUT", "AUTH_MFA_LEVEL", "AUTH_UX_MODE",
	"AUTH_WHITE_LABEL_NAME",
	"UI_THEME", "UI_LOGIN_METHODS_ORDER",
	"CHAIN_NAMESPACE", "CHAIN_ID", "CHAIN_RPC_TARGET",
	"ADAPTER_TX_SERVICE_URL", "ADAPTER_REQUEST_TIMEOUT",
}

// setEnvVars blanks every known key for the test and then applies vars.
// caarlos0/env treats an empty value as unset for plain fields.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range knownEnvKeys {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
