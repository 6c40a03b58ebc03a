package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON file.
type StructuredJSONConfig struct {
	Auth struct {
		ClientID        string   `json:"client_id"`
		Network         string   `json:"network"`
		ProviderURL     string   `json:"provider_url"`
		OIDCIssuer      string   `json:"oidc_issuer"`
		RedirectAddress string   `json:"redirect_address"`
		LoginTimeout    Duration `json:"login_timeout"`
		MFALevel        string   `json:"mfa_level"`
		UXMode          string   `json:"ux_mode"`
		WhiteLabelName  string   `json:"white_label_name"`
	} `json:"auth,omitempty"`

	UI struct {
		Theme             string   `json:"theme"`
		LoginMethodsOrder []string `json:"login_methods_order"`
	} `json:"ui,omitempty"`

	Chain struct {
		Namespace string `json:"namespace"`
		ChainID   string `json:"chain_id"`
		RPCTarget string `json:"rpc_target"`
	} `json:"chain,omitempty"`

	Adapter struct {
		TxServiceURL   string   `json:"tx_service_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Auth: Auth{
			ClientID:        jsonCfg.Auth.ClientID,
			Network:         jsonCfg.Auth.Network,
			ProviderURL:     jsonCfg.Auth.ProviderURL,
			OIDCIssuer:      jsonCfg.Auth.OIDCIssuer,
			RedirectAddress: jsonCfg.Auth.RedirectAddress,
			LoginTimeout:    time.Duration(jsonCfg.Auth.LoginTimeout),
			MFALevel:        jsonCfg.Auth.MFALevel,
			UXMode:          jsonCfg.Auth.UXMode,
			WhiteLabelName:  jsonCfg.Auth.WhiteLabelName,
		},
		UI: UI{
			Theme:             jsonCfg.UI.Theme,
			LoginMethodsOrder: jsonCfg.UI.LoginMethodsOrder,
		},
		Chain: Chain{
			Namespace: jsonCfg.Chain.Namespace,
			ChainID:   jsonCfg.Chain.ChainID,
			RPCTarget: jsonCfg.Chain.RPCTarget,
		},
		Adapter: Adapter{
			TxServiceURL:   jsonCfg.Adapter.TxServiceURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
