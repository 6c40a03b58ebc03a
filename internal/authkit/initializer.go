package authkit

import (
	"context"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/internal/config"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/models"
)

// Initializer builds an [AuthClient] for a set of options.
type Initializer func(ctx context.Context, opts models.AuthOptions) (AuthClient, error)

// NewInitializer returns the production [Initializer]: resty adapters for the
// provider API, the Safe transaction service and the chain RPC, the openlogin
// flow and a [ModalPack], wrapped in a [SafeAuthKit].
func NewInitializer(cfg *config.ClientConfig, log *logger.Logger) Initializer {
	return func(ctx context.Context, opts models.AuthOptions) (AuthClient, error) {
		authServer, err := adapter.NewHTTPAuthServerAdapter(cfg.Auth, cfg.Adapter, log)
		if err != nil {
			return nil, err
		}

		txCfg := cfg.Adapter
		if opts.TxServiceURL != "" {
			txCfg.TxServiceURL = opts.TxServiceURL
		}
		txService, err := adapter.NewHTTPTxServiceAdapter(txCfg, log)
		if err != nil {
			return nil, err
		}

		chainCfg := cfg.Chain
		if opts.Chain.RPCTarget != "" {
			chainCfg.RPCTarget = opts.Chain.RPCTarget
		}
		rpc, err := adapter.NewHTTPRPCAdapter(chainCfg, cfg.Adapter, log)
		if err != nil {
			return nil, err
		}

		flow := NewOpenloginFlow(cfg.Auth, opts, log)
		pack := NewModalPack(opts, authServer, flow, rpc, log)

		kit, err := Init(ctx, pack, txService, log)
		if err != nil {
			return nil, err
		}
		return kit, nil
	}
}
