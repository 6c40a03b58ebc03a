package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-auth/internal/config"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/utils"
	"github.com/MKhiriev/go-safe-auth/models"
)

type httpAuthServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthServerAdapter constructs the resty implementation of
// [AuthServerAdapter] rooted at authCfg.ProviderURL.
//
// Returns an error if the provider URL is empty or cannot be parsed.
func NewHTTPAuthServerAdapter(authCfg config.ClientAuth, adapterCfg config.ClientAdapter, log *logger.Logger) (AuthServerAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(authCfg.ProviderURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}

	return &httpAuthServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log.WithComponent("auth-server-adapter"),
	}, nil
}

// DiscoverAdapters implements [AuthServerAdapter] with
// GET /api/v1/adapters?client_id=...&network=...
func (h *httpAuthServerAdapter) DiscoverAdapters(ctx context.Context, clientID, network string) ([]models.AdapterInfo, error) {
	var body models.AdaptersResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("client_id", clientID).
		SetQueryParam("network", network).
		SetResult(&body).
		Get("/api/v1/adapters")
	if err != nil {
		return nil, fmt.Errorf("discover adapters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().Int("count", len(body.Adapters)).Str("network", network).Msg("adapters discovered")
	return body.Adapters, nil
}

// LookupWallet implements [AuthServerAdapter] with POST /api/v1/wallet.
// A response without an address is reported as [ErrEmptyWallet].
func (h *httpAuthServerAdapter) LookupWallet(ctx context.Context, req models.WalletRequest) (models.WalletIdentity, error) {
	var identity models.WalletIdentity

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&identity).
		Post("/api/v1/wallet")
	if err != nil {
		return models.WalletIdentity{}, fmt.Errorf("wallet lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletIdentity{}, err
	}

	identity.Address = strings.TrimSpace(identity.Address)
	if identity.Address == "" {
		return models.WalletIdentity{}, ErrEmptyWallet
	}

	return identity, nil
}

// Logout implements [AuthServerAdapter] with POST /api/v1/logout, sending the
// session token as a bearer credential.
func (h *httpAuthServerAdapter) Logout(ctx context.Context, sessionToken string) error {
	req := h.client.R().SetContext(ctx)
	if token := strings.TrimSpace(sessionToken); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post("/api/v1/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}
