package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-safe-auth/models"
)

// ClientAuth holds the provider settings used by the auth kit.
type ClientAuth struct {
	ClientID        string
	Network         string
	ProviderURL     string
	OIDCIssuer      string
	RedirectAddress string
	LoginTimeout    time.Duration
	MFALevel        models.MFALevel
	UXMode          models.UXMode
	WhiteLabelName  string
}

// ClientUI holds the login modal display preferences.
type ClientUI struct {
	Theme             string
	LoginMethodsOrder []string
}

// ClientChain identifies the chain the provider handle is bound to.
type ClientChain struct {
	Namespace string
	ChainID   string
	RPCTarget string
}

// ClientAdapter holds outbound transport settings.
type ClientAdapter struct {
	// TxServiceURL is the Safe transaction service base URL.
	TxServiceURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	Auth    ClientAuth
	UI      ClientUI
	Chain   ClientChain
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Auth: ClientAuth{
			ClientID:        cfg.Auth.ClientID,
			Network:         cfg.Auth.Network,
			ProviderURL:     cfg.Auth.ProviderURL,
			OIDCIssuer:      cfg.Auth.OIDCIssuer,
			RedirectAddress: cfg.Auth.RedirectAddress,
			LoginTimeout:    cfg.Auth.LoginTimeout,
			MFALevel:        models.MFALevel(cfg.Auth.MFALevel),
			UXMode:          models.UXMode(cfg.Auth.UXMode),
			WhiteLabelName:  cfg.Auth.WhiteLabelName,
		},
		UI: ClientUI{
			Theme:             cfg.UI.Theme,
			LoginMethodsOrder: append([]string(nil), cfg.UI.LoginMethodsOrder...),
		},
		Chain: ClientChain{
			Namespace: cfg.Chain.Namespace,
			ChainID:   cfg.Chain.ChainID,
			RPCTarget: cfg.Chain.RPCTarget,
		},
		Adapter: ClientAdapter{
			TxServiceURL:   cfg.Adapter.TxServiceURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
}

// AuthOptions renders the immutable options record the auth kit is
// initialised with. Every call returns a fresh copy.
func (c *ClientConfig) AuthOptions() models.AuthOptions {
	return models.AuthOptions{
		ClientID: c.Auth.ClientID,
		Network:  c.Auth.Network,
		Chain: models.ChainConfig{
			ChainNamespace: c.Chain.Namespace,
			ChainID:        c.Chain.ChainID,
			RPCTarget:      c.Chain.RPCTarget,
		},
		UI: models.UIConfig{
			Theme:             c.UI.Theme,
			LoginMethodsOrder: append([]string(nil), c.UI.LoginMethodsOrder...),
		},
		ModalConfig: DefaultModalConfig(),
		LoginSettings: models.LoginSettings{
			MFALevel: c.Auth.MFALevel,
		},
		AdapterSettings: models.AdapterSettings{
			UXMode:     c.Auth.UXMode,
			WhiteLabel: models.WhiteLabel{Name: c.Auth.WhiteLabelName},
		},
		TxServiceURL: c.Adapter.TxServiceURL,
	}
}
