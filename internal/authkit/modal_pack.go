package authkit

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/internal/logger"
	"github.com/MKhiriev/go-safe-auth/internal/utils"
	"github.com/MKhiriev/go-safe-auth/models"
)

// ModalPack is the [Pack] of the hosted wallet/social-login modal. Only the
// openlogin adapter can be driven from a terminal; the rest of the registry
// is kept so the hosted page can be told what to hide.
type ModalPack struct {
	opts       models.AuthOptions
	authServer adapter.AuthServerAdapter
	flow       LoginFlow
	rpc        adapter.RPCAdapter
	logger     *logger.Logger

	mu       sync.RWMutex
	adapters []models.AdapterInfo
	identity *models.WalletIdentity
	provider *Provider
}

// NewModalPack assembles a pack. rpc may be nil, in which case the provider
// handle only answers account and chain queries.
func NewModalPack(opts models.AuthOptions, authServer adapter.AuthServerAdapter, flow LoginFlow, rpc adapter.RPCAdapter, log *logger.Logger) *ModalPack {
	return &ModalPack{
		opts:       opts,
		authServer: authServer,
		flow:       flow,
		rpc:        rpc,
		logger:     log.WithComponent("modal-pack"),
	}
}

// Init implements [Pack]. It keeps the adapters that are ready and visible on
// a desktop modal, and prepares the openlogin flow when it is among them.
func (p *ModalPack) Init(ctx context.Context) error {
	discovered, err := p.authServer.DiscoverAdapters(ctx, p.opts.ClientID, p.opts.Network)
	if err != nil {
		return fmt.Errorf("discover adapters: %w", err)
	}

	registry := make([]models.AdapterInfo, 0, len(discovered))
	for _, a := range discovered {
		if a.Status != models.AdapterStatusReady {
			continue
		}
		if cfg, ok := p.opts.ModalConfig[a.Name]; ok && !cfg.VisibleOn(false) {
			continue
		}
		registry = append(registry, a)
	}
	if len(registry) == 0 {
		return ErrNoAdaptersAvailable
	}

	if hasAdapter(registry, models.AdapterOpenlogin) {
		if err = p.flow.Discover(ctx); err != nil {
			return err
		}
	}

	p.mu.Lock()
	p.adapters = registry
	p.mu.Unlock()

	p.logger.Info().Int("adapters", len(registry)).Str("network", p.opts.Network).Msg("modal pack initialised")
	return nil
}

// SignIn implements [Pack].
func (p *ModalPack) SignIn(ctx context.Context) (string, error) {
	p.mu.RLock()
	ready := hasAdapter(p.adapters, models.AdapterOpenlogin)
	p.mu.RUnlock()
	if !ready {
		return "", fmt.Errorf("%w: %s", ErrNoAdaptersAvailable, models.AdapterOpenlogin)
	}

	cred, err := p.flow.Authenticate(ctx)
	if err != nil {
		return "", err
	}

	identity, err := p.authServer.LookupWallet(ctx, models.WalletRequest{
		ClientID: p.opts.ClientID,
		Network:  p.opts.Network,
		IDToken:  cred.IDToken,
		Verifier: cred.Verifier,
		ChainID:  p.opts.Chain.ChainID,
	})
	if err != nil {
		return "", fmt.Errorf("wallet lookup: %w", err)
	}

	p.mu.Lock()
	p.identity = &identity
	p.provider = newProvider(identity.Address, p.opts.Chain.ChainID, p.rpc)
	p.mu.Unlock()

	p.logger.Debug().Str("eoa", identity.Address).Str("verifier", cred.Verifier).Msg("signed in")
	return identity.Address, nil
}

// SignOut implements [Pack]. Local state is dropped first; the provider is
// only contacted while the session token is still valid.
func (p *ModalPack) SignOut(ctx context.Context) error {
	p.mu.Lock()
	identity := p.identity
	p.identity = nil
	p.provider = nil
	p.mu.Unlock()

	if identity == nil {
		return ErrNotSignedIn
	}

	if sessionExpired(identity.SessionToken, time.Now()) {
		p.logger.Debug().Msg("session token expired, skipping remote logout")
		return nil
	}

	return p.authServer.Logout(ctx, identity.SessionToken)
}

// GetProvider implements [Pack].
func (p *ModalPack) GetProvider() adapter.RPCAdapter {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.provider == nil {
		return nil
	}
	return p.provider
}

func hasAdapter(registry []models.AdapterInfo, name string) bool {
	return slices.ContainsFunc(registry, func(a models.AdapterInfo) bool { return a.Name == name })
}

// sessionExpired reports whether token is a JWT whose exp lies before now.
// Opaque tokens and tokens without exp are treated as live.
func sessionExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	exp, err := utils.TokenExpiry(token)
	if err != nil {
		return false
	}
	return exp.Before(now)
}
