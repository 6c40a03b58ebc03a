// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Field-level rules live in
// [ClientConfig.validate]; only the duration sanity is checked here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.LoginTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("negative timeout in configuration")
	}
	return nil
}

// validate checks the client configuration. An empty client id is accepted:
// the provider rejects it during initialization and the client keeps running
// with login disabled.
func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.Auth.ProviderURL) || !isAbsoluteURL(cfg.Auth.OIDCIssuer) {
		return ErrInvalidAuthConfigs
	}
	if !cfg.Auth.MFALevel.Valid() || !cfg.Auth.UXMode.Valid() || cfg.Auth.LoginTimeout <= 0 {
		return ErrInvalidAuthConfigs
	}
	var addr NetAddress
	if err := addr.Set(cfg.Auth.RedirectAddress); err != nil {
		return fmt.Errorf("%w: redirect address: %v", ErrInvalidAuthConfigs, err)
	}

	if !strings.HasPrefix(cfg.Chain.ChainID, "0x") || !isAbsoluteURL(cfg.Chain.RPCTarget) {
		return ErrInvalidChainConfigs
	}

	if !isAbsoluteURL(cfg.Adapter.TxServiceURL) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && u.Scheme != "" && u.Host != ""
}
