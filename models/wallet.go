// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AdapterInfo describes one wallet adapter advertised by the provider for a
// client id and network.
type AdapterInfo struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdapterStatusReady marks an adapter that can be used for sign-in.
const AdapterStatusReady = "ready"

// AdaptersResponse is the body of the provider's adapter discovery endpoint.
type AdaptersResponse struct {
	Adapters []AdapterInfo `json:"adapters"`
}

// WalletRequest exchanges a verified OIDC id token for the wallet bound to the
// identity.
type WalletRequest struct {
	ClientID string `json:"client_id"`
	Network  string `json:"network"`
	IDToken  string `json:"id_token"`
	Verifier string `json:"verifier"`
	ChainID  string `json:"chain_id"`
}

// WalletIdentity is the provider's answer to a WalletRequest.
type WalletIdentity struct {
	Address      string `json:"address"`
	SessionToken string `json:"session_token"`
}

// OwnerSafesResponse is the Safe transaction service body for
// GET /api/v1/owners/{address}/safes/.
type OwnerSafesResponse struct {
	Safes []string `json:"safes"`
}

// LoginCredential is what a completed hosted login hands back: the raw,
// already verified id token and the verifier that issued it.
type LoginCredential struct {
	IDToken  string
	Verifier string
	Email    string
}
