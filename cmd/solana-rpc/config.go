package main

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"

	"github.com/sebamiro/solana"
)

// Config of the command line client. Values come from defaults, then the
// config file, then flags.
type Config struct {
	Endpoint string            `yaml:"endpoint" validate:"required"`
	Headers  map[string]string `yaml:"headers"`
	// Timeout of each command. Nil means unset; zero disables it.
	Timeout    *time.Duration `yaml:"timeout" validate:"omitempty,gte=0"`
	Commitment string         `yaml:"commitment" validate:"omitempty,oneof=processed confirmed finalized"`
}

const defaultTimeout = 30 * time.Second

func defaultConfig() Config {
	return Config{
		Endpoint:   "devnet",
		Commitment: string(solana.CommitmentConfirmed),
	}
}

// loadConfig reads path, if set, fills the gaps with defaults and applies
// overrides on top. Only non-zero override fields win, except Timeout which
// wins whenever it is set.
func loadConfig(path string, overrides Config) (Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}
	// mergo treats a zero timeout as unset.
	timeout := cfg.Timeout
	if overrides.Timeout != nil {
		timeout = overrides.Timeout
	}
	if timeout == nil {
		d := defaultTimeout
		timeout = &d
	}
	cfg.Timeout, overrides.Timeout = nil, nil

	if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
		return Config{}, errors.Wrap(err, "apply flags")
	}
	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return Config{}, errors.Wrap(err, "apply defaults")
	}
	cfg.Timeout = timeout
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	endpoint, err := resolveEndpoint(cfg.Endpoint)
	if err != nil {
		return Config{}, err
	}
	cfg.Endpoint = endpoint
	return cfg, nil
}

// resolveEndpoint accepts a cluster name or an http(s) URL.
func resolveEndpoint(endpoint string) (string, error) {
	if u, err := solana.ClusterURL(endpoint); err == nil {
		return u, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", errors.Errorf("endpoint %q is neither a cluster (%s) nor an http URL",
			endpoint, strings.Join(solana.Clusters(), ", "))
	}
	return endpoint, nil
}

// parseHeaders turns repeated "Key: Value" flags into a map.
func parseHeaders(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(values))
	for _, v := range values {
		k, val, ok := strings.Cut(v, ":")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, errors.Errorf("header %q: want \"Key: Value\"", v)
		}
		headers[k] = strings.TrimSpace(val)
	}
	return headers, nil
}
