package config

// identityTables is the allowlist of identity table names. The table name is
// interpolated into SQL identifiers, so anything outside this set is
// rejected at startup.
var identityTables = map[string]struct{}{
	"users":     {},
	"employees": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, ok := identityTables[cfg.Identity.Table]; !ok {
		return ErrInvalidIdentityTable
	}

	if cfg.Storage.DB.DSN == "" && (cfg.Storage.DB.Host == "" || cfg.Storage.DB.Port == 0 || cfg.Storage.DB.Name == "") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
