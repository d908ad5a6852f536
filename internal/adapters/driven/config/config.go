// Package config builds the one explicit configuration struct for the
// redten client. It is constructed once at process start and passed by
// reference into every component; no other package reads environment
// variables or config files on its own.
//
// Precedence, lowest to highest: built-in defaults, the optional TOML
// file at ~/.redten/config.toml, then AI_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full client configuration.
type Config struct {
	Endpoint EndpointConfig
	User     UserConfig
	TLS      TLSConfig
	Creds    CredsConfig
	History  HistoryConfig

	// Debug widens request/response logging on failures.
	Debug bool
}

// EndpointConfig locates the redten REST API.
type EndpointConfig struct {
	// API is the service host, host:port in local mode.
	API string

	// Env is the hosted environment name (dev, qa, prod).
	Env string

	// Local switches from hosted <host>/v1/<env> addressing to a raw
	// host:port, for a self-hosted API.
	Local bool
}

// BaseURL returns the https base URL every request is joined onto.
func (e EndpointConfig) BaseURL() string {
	if e.Local {
		return fmt.Sprintf("https://%s", e.API)
	}
	return fmt.Sprintf("https://%s/v1/%s", e.API, e.Env)
}

// UserConfig holds default login credentials. Explicit call arguments
// always win over these.
type UserConfig struct {
	Username string
	Email    string
	Password string
}

// TLSConfig holds optional mutual-TLS material. When CAFile is empty,
// server certificate verification is disabled (logged, not silent).
type TLSConfig struct {
	CAFile   string
	CertFile string
	KeyFile  string
}

// CredsConfig controls the single-slot local credentials cache.
type CredsConfig struct {
	// File is the cache path, default ~/.redten/creds.json.
	File string

	// DisableCache forces a fresh login on every authenticate call,
	// the more secure mode for production workloads.
	DisableCache bool
}

// HistoryConfig controls the local ask-history database.
type HistoryConfig struct {
	// File is the sqlite path, default ~/.redten/history.db.
	File string

	// Disable turns off history recording entirely.
	Disable bool
}

// Dir returns the redten dot-directory, ~/.redten unless HOME is unset.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".redten"
	}
	return filepath.Join(home, ".redten")
}

func defaults() Config {
	dir := Dir()
	return Config{
		Endpoint: EndpointConfig{
			API: "api.redten.io",
			Env: "dev",
		},
		Creds: CredsConfig{
			File: filepath.Join(dir, "creds.json"),
		},
		History: HistoryConfig{
			File: filepath.Join(dir, "history.db"),
		},
	}
}

// fileConfig mirrors the optional ~/.redten/config.toml layout.
type fileConfig struct {
	Endpoint struct {
		API   string `toml:"api"`
		Env   string `toml:"env"`
		Local bool   `toml:"local"`
	} `toml:"endpoint"`
	User struct {
		Username string `toml:"username"`
		Email    string `toml:"email"`
		Password string `toml:"password"`
	} `toml:"user"`
	TLS struct {
		CA   string `toml:"ca"`
		Cert string `toml:"cert"`
		Key  string `toml:"key"`
	} `toml:"tls"`
	Creds struct {
		File         string `toml:"file"`
		DisableCache bool   `toml:"disable_cache"`
	} `toml:"creds"`
	History struct {
		File    string `toml:"file"`
		Disable bool   `toml:"disable"`
	} `toml:"history"`
	Debug bool `toml:"debug"`
}

// Load reads configuration from defaults, the optional TOML file and
// the environment.
func Load() (*Config, error) {
	return loadWith(filepath.Join(Dir(), "config.toml"), os.Getenv)
}

func loadWith(tomlPath string, getenv func(string) string) (*Config, error) {
	cfg := defaults()

	if err := applyFile(&cfg, tomlPath); err != nil {
		return nil, err
	}
	applyEnvOverrides(&cfg, getenv)

	if cfg.Endpoint.Local && cfg.Endpoint.API == "api.redten.io" {
		// Local mode with no explicit address targets a dev server.
		cfg.Endpoint.API = "0.0.0.0:3000"
	}

	return &cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	setIf(&cfg.Endpoint.API, fc.Endpoint.API)
	setIf(&cfg.Endpoint.Env, fc.Endpoint.Env)
	if fc.Endpoint.Local {
		cfg.Endpoint.Local = true
	}
	setIf(&cfg.User.Username, fc.User.Username)
	setIf(&cfg.User.Email, fc.User.Email)
	setIf(&cfg.User.Password, fc.User.Password)
	setIf(&cfg.TLS.CAFile, fc.TLS.CA)
	setIf(&cfg.TLS.CertFile, fc.TLS.Cert)
	setIf(&cfg.TLS.KeyFile, fc.TLS.Key)
	setIf(&cfg.Creds.File, fc.Creds.File)
	if fc.Creds.DisableCache {
		cfg.Creds.DisableCache = true
	}
	setIf(&cfg.History.File, fc.History.File)
	if fc.History.Disable {
		cfg.History.Disable = true
	}
	if fc.Debug {
		cfg.Debug = true
	}

	return nil
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	setIf(&cfg.Endpoint.API, getenv("AI_API"))
	setIf(&cfg.Endpoint.Env, getenv("AI_ENV"))
	if getenv("USE_LOCAL") == "1" {
		cfg.Endpoint.Local = true
	}

	setIf(&cfg.User.Username, getenv("AI_USER"))
	setIf(&cfg.User.Email, getenv("AI_EMAIL"))
	setIf(&cfg.User.Password, getenv("AI_PASSWORD"))

	setIf(&cfg.TLS.CAFile, getenv("AI_API_CA"))
	setIf(&cfg.TLS.CertFile, getenv("AI_API_CERT"))
	setIf(&cfg.TLS.KeyFile, getenv("AI_API_KEY"))

	setIf(&cfg.Creds.File, getenv("AI_CREDS_FILE"))
	if getenv("DISABLE_CRED_CACHE") == "1" {
		cfg.Creds.DisableCache = true
	}

	setIf(&cfg.History.File, getenv("AI_HISTORY_FILE"))
	if getenv("DISABLE_HISTORY") == "1" {
		cfg.History.Disable = true
	}

	if getenv("LLM_DEBUG") == "1" {
		cfg.Debug = true
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
