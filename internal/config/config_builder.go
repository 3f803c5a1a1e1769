package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// applyDefaults fills every field that is still zero after merging all
// sources with its hardcoded fallback. Mirrors the original deployment's
// "env var or fallback" behavior; the diagnostics endpoint reports which
// values fell back.
func (cfg *StructuredConfig) applyDefaults() {
	db := &cfg.Storage.DB
	if db.Host == "" {
		db.Host = DefaultDBHost
	}
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.User == "" {
		db.User = DefaultDBUser
	}
	if db.Password == "" {
		db.Password = DefaultDBPassword
	}
	if db.Name == "" {
		db.Name = DefaultDBName
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxOpenConns == 0 {
		db.MaxOpenConns = DefaultMaxOpenConns
	}
	if db.MaxIdleConns == 0 {
		db.MaxIdleConns = DefaultMaxIdleConns
	}
	if db.ConnMaxLifetime == 0 {
		db.ConnMaxLifetime = DefaultConnMaxLifetime
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Identity.Table == "" {
		cfg.Identity.Table = DefaultIdentityTable
	}
	if cfg.Identity.UserType == "" {
		cfg.Identity.UserType = DefaultUserType
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
}
