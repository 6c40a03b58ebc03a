// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-safe-auth/models"
)

const (
	DefaultNetwork         = "testnet"
	DefaultProviderURL     = "https://auth.web3auth.io"
	DefaultOIDCIssuer      = "https://auth.web3auth.io"
	DefaultRedirectAddress = "127.0.0.1:8765"
	DefaultLoginTimeout    = 5 * time.Minute
	DefaultWhiteLabelName  = "Safe"
	DefaultTheme           = "dark"
	DefaultChainID         = "0x13881"
	DefaultRPCTarget       = "https://polygon-mumbai-bor.publicnode.com"
	DefaultTxServiceURL    = "https://safe-transaction-goerli.safe.global"
	DefaultRequestTimeout  = 30 * time.Second
)

// DefaultLoginMethodsOrder is the social login order shown in the modal.
var DefaultLoginMethodsOrder = []string{"google", "facebook"}

// DefaultModalConfig hides the Torus wallet from the modal and offers
// MetaMask on desktop only.
func DefaultModalConfig() map[string]models.AdapterModalConfig {
	return map[string]models.AdapterModalConfig{
		models.AdapterTorusEVM: {
			Label:       "torus",
			ShowOnModal: models.BoolPtr(false),
		},
		models.AdapterMetamask: {
			Label:         "metamask",
			ShowOnDesktop: models.BoolPtr(true),
			ShowOnMobile:  models.BoolPtr(false),
		},
	}
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			Network:         DefaultNetwork,
			ProviderURL:     DefaultProviderURL,
			OIDCIssuer:      DefaultOIDCIssuer,
			RedirectAddress: DefaultRedirectAddress,
			LoginTimeout:    DefaultLoginTimeout,
			MFALevel:        string(models.MFALevelMandatory),
			UXMode:          string(models.UXModePopup),
			WhiteLabelName:  DefaultWhiteLabelName,
		},
		UI: UI{
			Theme:             DefaultTheme,
			LoginMethodsOrder: append([]string(nil), DefaultLoginMethodsOrder...),
		},
		Chain: Chain{
			Namespace: models.ChainNamespaceEIP155,
			ChainID:   DefaultChainID,
			RPCTarget: DefaultRPCTarget,
		},
		Adapter: Adapter{
			TxServiceURL:   DefaultTxServiceURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
