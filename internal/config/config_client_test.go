package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-safe-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfig_EmptyClientIDIsAccepted(t *testing.T) {
	cfg := validClientConfig()
	cfg.Auth.ClientID = ""
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"bad provider url", func(c *ClientConfig) { c.Auth.ProviderURL = "not a url" }, ErrInvalidAuthConfigs},
		{"bad issuer", func(c *ClientConfig) { c.Auth.OIDCIssuer = "" }, ErrInvalidAuthConfigs},
		{"unknown mfa", func(c *ClientConfig) { c.Auth.MFALevel = "always" }, ErrInvalidAuthConfigs},
		{"unknown ux mode", func(c *ClientConfig) { c.Auth.UXMode = "inline" }, ErrInvalidAuthConfigs},
		{"zero login timeout", func(c *ClientConfig) { c.Auth.LoginTimeout = 0 }, ErrInvalidAuthConfigs},
		{"bad redirect", func(c *ClientConfig) { c.Auth.RedirectAddress = "example.com:80" }, ErrInvalidAuthConfigs},
		{"chain id not hex", func(c *ClientConfig) { c.Chain.ChainID = "80001" }, ErrInvalidChainConfigs},
		{"no rpc target", func(c *ClientConfig) { c.Chain.RPCTarget = "" }, ErrInvalidChainConfigs},
		{"no tx service", func(c *ClientConfig) { c.Adapter.TxServiceURL = "" }, ErrInvalidAdapterConfigs},
		{"zero request timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientConfig_AuthOptions(t *testing.T) {
	cfg := validClientConfig()
	cfg.Auth.ClientID = "client-123"

	opts := cfg.AuthOptions()

	assert.Equal(t, "client-123", opts.ClientID)
	assert.Equal(t, "testnet", opts.Network)
	assert.Equal(t, models.ChainConfig{
		ChainNamespace: "eip155",
		ChainID:        "0x13881",
		RPCTarget:      DefaultRPCTarget,
	}, opts.Chain)
	assert.Equal(t, "dark", opts.UI.Theme)
	assert.Equal(t, []string{"google", "facebook"}, opts.UI.LoginMethodsOrder)
	assert.Equal(t, models.MFALevelMandatory, opts.LoginSettings.MFALevel)
	assert.Equal(t, models.UXModePopup, opts.AdapterSettings.UXMode)
	assert.Equal(t, "Safe", opts.AdapterSettings.WhiteLabel.Name)
	assert.Equal(t, DefaultTxServiceURL, opts.TxServiceURL)

	require.Contains(t, opts.ModalConfig, models.AdapterTorusEVM)
	assert.False(t, opts.ModalConfig[models.AdapterTorusEVM].VisibleOn(false))
	assert.True(t, opts.ModalConfig[models.AdapterMetamask].VisibleOn(false))
	assert.False(t, opts.ModalConfig[models.AdapterMetamask].VisibleOn(true))
}

// TestClientConfig_AuthOptions_IsACopy verifies that mutating the returned
// options does not leak back into the config.
func TestClientConfig_AuthOptions_IsACopy(t *testing.T) {
	cfg := validClientConfig()

	opts := cfg.AuthOptions()
	opts.UI.LoginMethodsOrder[0] = "twitter"

	assert.Equal(t, "google", cfg.UI.LoginMethodsOrder[0])
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}
