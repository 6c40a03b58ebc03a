package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAuthConfigs indicates invalid provider settings (unparsable
	// provider URL or issuer, unknown MFA level or UX mode, bad redirect
	// address, zero login timeout).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidChainConfigs indicates a missing chain id or RPC target.
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidAdapterConfigs indicates a missing transaction service URL
	// or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
