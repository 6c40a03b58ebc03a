package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-auth/internal/config"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/utils"
	"github.com/MKhiriev/go-safe-auth/models"
)

type httpTxServiceAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTxServiceAdapter constructs the resty implementation of
// [TxServiceAdapter] rooted at adapterCfg.TxServiceURL.
func NewHTTPTxServiceAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (TxServiceAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.TxServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tx service url: %w", err)
	}

	return &httpTxServiceAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log.WithComponent("tx-service-adapter"),
	}, nil
}

// GetOwnerSafes implements [TxServiceAdapter] with
// GET /api/v1/owners/{address}/safes/. The service only accepts EIP-55
// checksummed addresses, so owner is checksummed first. A 404 means the owner
// is unknown to the service and is reported as no Safes.
func (h *httpTxServiceAdapter) GetOwnerSafes(ctx context.Context, owner string) ([]string, error) {
	var body models.OwnerSafesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("owner", utils.ChecksumAddress(owner)).
		SetResult(&body).
		Get("/api/v1/owners/{owner}/safes/")
	if err != nil {
		return nil, fmt.Errorf("owner safes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			h.logger.Debug().Str("owner", owner).Msg("owner unknown to tx service")
			return []string{}, nil
		}
		return nil, err
	}

	if body.Safes == nil {
		return []string{}, nil
	}
	return body.Safes, nil
}
