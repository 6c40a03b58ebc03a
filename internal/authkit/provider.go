// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
)

// Provider is the EIP-1193 style handle bound to a signed-in wallet. Account
// and chain queries are answered from the session; every other method is
// forwarded to the chain's JSON-RPC node.
type Provider struct {
	address string
	chainID string
	rpc     adapter.RPCAdapter
}

func newProvider(address, chainID string, rpc adapter.RPCAdapter) *Provider {
	return &Provider{address: address, chainID: chainID, rpc: rpc}
}

// Call implements [adapter.RPCAdapter].
func (p *Provider) Call(ctx context.Context, method string, params []any, result any) error {
	switch method {
	case "eth_accounts", "eth_requestAccounts":
		return assign([]string{p.address}, result)
	case "eth_chainId":
		return assign(p.chainID, result)
	}

	if p.rpc == nil {
		return fmt.Errorf("%s: no rpc target configured", method)
	}
	return p.rpc.Call(ctx, method, params, result)
}

// assign copies v into result the same way a decoded JSON-RPC result would be.
func assign(v, result any) error {
	if result == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, result)
}
