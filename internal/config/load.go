package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Load reads the configuration at configPath, applies the named environment
// overlay (empty for none), normalizes and validates it.
//
// ${VAR} references are expanded before decoding from the process
// environment, falling back to a .env or .env.local next to the file. The
// env file is re-read on every call.
func Load(configPath, env string) (*Config, error) {
	envPath, fileVars, err := readEnvFile(filepath.Dir(configPath))
	if err != nil {
		slog.Warn("Could not read environment file", logfields.Path(envPath), logfields.Error(err))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := ParseWithLookup(data, envLookup(fileVars))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
			Fatal().
			UserAction().
			WithContext("path", configPath).
			Build()
	}

	if err := cfg.ApplyEnvironment(env); err != nil {
		return nil, err
	}

	nres, err := NormalizeConfig(cfg)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "normalize").Build()
	}
	for _, w := range nres.Warnings {
		slog.Warn("Config normalization", slog.String("detail", w), logfields.ConfigPath(configPath))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse expands ${VAR} references from the process environment and decodes
// data. It performs no normalization or validation.
func Parse(data []byte) (*Config, error) {
	return ParseWithLookup(data, os.LookupEnv)
}

// ParseWithLookup is Parse with a custom variable source.
func ParseWithLookup(data []byte, lookup LookupFunc) (*Config, error) {
	expanded := expandEnv(string(data), lookup)
	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
