// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Wallet adapter identifiers understood by the hosted login modal.
const (
	AdapterOpenlogin     = "openlogin"
	AdapterMetamask      = "metamask"
	AdapterTorusEVM      = "torus-evm"
	AdapterWalletConnect = "wallet-connect-v2"
)

// ChainNamespaceEIP155 is the namespace of EVM-compatible chains.
const ChainNamespaceEIP155 = "eip155"

// MFALevel controls whether the provider asks the user to set up or confirm a
// second factor during the social login.
type MFALevel string

const (
	MFALevelDefault   MFALevel = "default"
	MFALevelOptional  MFALevel = "optional"
	MFALevelMandatory MFALevel = "mandatory"
	MFALevelNone      MFALevel = "none"
)

// Valid reports whether m is one of the known MFA levels.
func (m MFALevel) Valid() bool {
	switch m {
	case MFALevelDefault, MFALevelOptional, MFALevelMandatory, MFALevelNone:
		return true
	}
	return false
}

// UXMode selects how the hosted login surface is opened.
type UXMode string

const (
	UXModePopup    UXMode = "popup"
	UXModeRedirect UXMode = "redirect"
)

// Valid reports whether u is one of the known UX modes.
func (u UXMode) Valid() bool {
	return u == UXModePopup || u == UXModeRedirect
}

// ChainConfig identifies the chain the provider handle is bound to.
type ChainConfig struct {
	ChainNamespace string `json:"chainNamespace"`
	ChainID        string `json:"chainId"`
	RPCTarget      string `json:"rpcTarget"`
}

// UIConfig holds the display preferences passed to the login modal.
type UIConfig struct {
	Theme             string   `json:"theme"`
	LoginMethodsOrder []string `json:"loginMethodsOrder,omitempty"`
}

// AdapterModalConfig is the display/visibility policy of one wallet adapter.
// Nil booleans mean "provider default" (shown).
type AdapterModalConfig struct {
	Label         string `json:"label"`
	ShowOnModal   *bool  `json:"showOnModal,omitempty"`
	ShowOnDesktop *bool  `json:"showOnDesktop,omitempty"`
	ShowOnMobile  *bool  `json:"showOnMobile,omitempty"`
}

// VisibleOn reports whether the adapter is offered in the modal on the given
// kind of device.
func (c AdapterModalConfig) VisibleOn(mobile bool) bool {
	if c.ShowOnModal != nil && !*c.ShowOnModal {
		return false
	}
	if mobile {
		return c.ShowOnMobile == nil || *c.ShowOnMobile
	}
	return c.ShowOnDesktop == nil || *c.ShowOnDesktop
}

// LoginSettings tune the openlogin adapter's login step.
type LoginSettings struct {
	MFALevel MFALevel `json:"mfaLevel"`
}

// WhiteLabel carries branding shown on the hosted login page.
type WhiteLabel struct {
	Name string `json:"name"`
}

// AdapterSettings configure the openlogin adapter's surface.
type AdapterSettings struct {
	UXMode     UXMode     `json:"uxMode"`
	WhiteLabel WhiteLabel `json:"whiteLabel"`
}

// AuthOptions is the immutable configuration an authentication client is
// initialised with.
type AuthOptions struct {
	ClientID        string                        `json:"clientId"`
	Network         string                        `json:"web3AuthNetwork"`
	Chain           ChainConfig                   `json:"chainConfig"`
	UI              UIConfig                      `json:"uiConfig"`
	ModalConfig     map[string]AdapterModalConfig `json:"modalConfig,omitempty"`
	LoginSettings   LoginSettings                 `json:"loginSettings"`
	AdapterSettings AdapterSettings               `json:"adapterSettings"`
	TxServiceURL    string                        `json:"txServiceUrl"`
}

// HiddenAdapters returns the ids of adapters that must not be offered on the
// given kind of device, in a stable order.
func (o AuthOptions) HiddenAdapters(mobile bool) []string {
	hidden := make([]string, 0, len(o.ModalConfig))
	for _, id := range []string{AdapterOpenlogin, AdapterMetamask, AdapterTorusEVM, AdapterWalletConnect} {
		if cfg, ok := o.ModalConfig[id]; ok && !cfg.VisibleOn(mobile) {
			hidden = append(hidden, id)
		}
	}
	return hidden
}

// BoolPtr returns a pointer to v, for building AdapterModalConfig literals.
func BoolPtr(v bool) *bool {
	return &v
}
