package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-safe-auth/internal/config"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/utils"
	"github.com/MKhiriev/go-safe-auth/models"
)

const jsonRPCVersion = "2.0"

type httpRPCAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRPCAdapter constructs the resty implementation of [RPCAdapter]
// posting to chainCfg.RPCTarget.
func NewHTTPRPCAdapter(chainCfg config.ClientChain, adapterCfg config.ClientAdapter, log *logger.Logger) (RPCAdapter, error) {
	target, err := utils.NormalizeBaseURL(chainCfg.RPCTarget)
	if err != nil {
		return nil, fmt.Errorf("invalid rpc target: %w", err)
	}

	return &httpRPCAdapter{
		client: utils.NewHTTPClient(target, adapterCfg.RequestTimeout),
		logger: log.WithComponent("rpc-adapter"),
	}, nil
}

// Call implements [RPCAdapter]. JSON-RPC level failures are wrapped in
// [ErrRPC]; a response that carries neither result nor error is
// [ErrInvalidRPCResponse].
func (h *httpRPCAdapter) Call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}
	req := models.RPCRequest{
		JSONRPC: jsonRPCVersion,
		ID:      utils.NewID(),
		Method:  method,
		Params:  params,
	}

	var rpcResp models.RPCResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&rpcResp).
		Post("")
	if err != nil {
		return fmt.Errorf("rpc %s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if rpcResp.Error != nil {
		return fmt.Errorf("%w: %s: %d %s", ErrRPC, method, rpcResp.Error.Code, rpcResp.Error.Message)
	}
	if rpcResp.Result == nil {
		return fmt.Errorf("%w: %s: empty result", ErrInvalidRPCResponse, method)
	}
	if result == nil {
		return nil
	}
	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRPCResponse, method, err)
	}

	h.logger.Debug().Str("method", method).Msg("rpc call done")
	return nil
}
