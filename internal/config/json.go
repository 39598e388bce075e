package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonSigning struct {
	Engine      string   `json:"engine"`
	CertPath    string   `json:"cert_path"`
	KeyPath     string   `json:"key_path"`
	KeyPassword string   `json:"key_password"`
	ChainPath   string   `json:"chain_path"`
	P12Path     string   `json:"p12_path"`
	OpenSSLPath string   `json:"openssl_path"`
	Timeout     Duration `json:"timeout"`
}

type jsonWallet struct {
	TemplatesDir  string      `json:"templates_dir"`
	WebServiceURL string      `json:"web_service_url"`
	Signing       jsonSigning `json:"signing"`
}

type StructuredJSONConfig struct {
	App struct {
		AdminSecret       string `json:"admin_secret"`
		AdminSecretHeader string `json:"admin_secret_header"`
		Version           string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Passes jsonWallet `json:"passes,omitempty"`
	Orders jsonWallet `json:"orders,omitempty"`

	Push struct {
		Endpoint    string   `json:"endpoint"`
		Timeout     Duration `json:"timeout"`
		Concurrency int      `json:"concurrency"`
		KeyID       string   `json:"key_id"`
		TeamID      string   `json:"team_id"`
		AuthKeyPath string   `json:"auth_key_path"`
	} `json:"push,omitempty"`

	Workers struct {
		BundleConcurrency   int      `json:"bundle_concurrency"`
		OrphanSweepInterval Duration `json:"orphan_sweep_interval"`
	} `json:"workers,omitempty"`
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
		App: App{
			AdminSecret:       jsonCfg.App.AdminSecret,
			AdminSecretHeader: jsonCfg.App.AdminSecretHeader,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Passes: jsonCfg.Passes.wallet(),
		Orders: jsonCfg.Orders.wallet(),
		Push: Push{
			Endpoint:    jsonCfg.Push.Endpoint,
			Timeout:     time.Duration(jsonCfg.Push.Timeout),
			Concurrency: jsonCfg.Push.Concurrency,
			KeyID:       jsonCfg.Push.KeyID,
			TeamID:      jsonCfg.Push.TeamID,
			AuthKeyPath: jsonCfg.Push.AuthKeyPath,
		},
		Workers: Workers{
			BundleConcurrency:   jsonCfg.Workers.BundleConcurrency,
			OrphanSweepInterval: time.Duration(jsonCfg.Workers.OrphanSweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

func (w jsonWallet) wallet() Wallet {
	return Wallet{
		TemplatesDir:  w.TemplatesDir,
		WebServiceURL: w.WebServiceURL,
		Signing: Signing{
			Engine:      w.Signing.Engine,
			CertPath:    w.Signing.CertPath,
			KeyPath:     w.Signing.KeyPath,
			KeyPassword: w.Signing.KeyPassword,
			ChainPath:   w.Signing.ChainPath,
			P12Path:     w.Signing.P12Path,
			OpenSSLPath: w.Signing.OpenSSLPath,
			Timeout:     time.Duration(w.Signing.Timeout),
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
