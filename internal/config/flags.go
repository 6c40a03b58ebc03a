package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-client-id        provider client id
//	-network          provider network
//	-provider-url     provider API base URL
//	-oidc-issuer      OIDC issuer of the social login
//	-redirect-address loopback callback address in format [host]:[port]
//	-login-timeout    how long to wait for the browser login (e.g. "5m")
//	-mfa-level        default|optional|mandatory|none
//	-ux-mode          popup|redirect
//	-theme            modal theme
//	-chain-id         chain id in hex
//	-rpc-target       chain JSON-RPC endpoint
//	-tx-service-url   Safe transaction service base URL
//	-request-timeout  outbound request timeout (e.g. "30s")
//	-c/-config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("safe-auth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var redirectAddress NetAddress
	var clientID, network, providerURL, oidcIssuer string
	var mfaLevel, uxMode, theme string
	var chainID, rpcTarget, txServiceURL string
	var jsonConfigPath string
	var loginTimeout, requestTimeout time.Duration

	fs.StringVar(&clientID, "client-id", "", "Provider client id")
	fs.StringVar(&network, "network", "", "Provider network")
	fs.StringVar(&providerURL, "provider-url", "", "Provider API base URL")
	fs.StringVar(&oidcIssuer, "oidc-issuer", "", "OIDC issuer URL")
	fs.Var(&redirectAddress, "redirect-address", "Loopback callback address host:port")
	fs.DurationVar(&loginTimeout, "login-timeout", 0, "Login timeout (e.g., 5m)")
	fs.StringVar(&mfaLevel, "mfa-level", "", "MFA level")
	fs.StringVar(&uxMode, "ux-mode", "", "Login UX mode")
	fs.StringVar(&theme, "theme", "", "Modal theme")
	fs.StringVar(&chainID, "chain-id", "", "Chain id in hex")
	fs.StringVar(&rpcTarget, "rpc-target", "", "Chain JSON-RPC endpoint")
	fs.StringVar(&txServiceURL, "tx-service-url", "", "Safe transaction service URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Auth: Auth{
			ClientID:        clientID,
			Network:         network,
			ProviderURL:     providerURL,
			OIDCIssuer:      oidcIssuer,
			RedirectAddress: redirectAddress.String(),
			LoginTimeout:    loginTimeout,
			MFALevel:        mfaLevel,
			UXMode:          uxMode,
		},
		UI: UI{
			Theme: theme,
		},
		Chain: Chain{
			ChainID:   chainID,
			RPCTarget: rpcTarget,
		},
		Adapter: Adapter{
			TxServiceURL:   txServiceURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
