package util

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/internal/resolve"
	"github.com/pgschema/typespec/internal/sqltype"
)

// TypeConfig holds the catalog settings type resolution runs with.
type TypeConfig struct {
	DefaultCharset      string
	Locale              string
	MaxNumericPrecision int
}

// DefaultTypeConfig returns the built-in settings.
func DefaultTypeConfig() TypeConfig {
	return TypeConfig{
		DefaultCharset:      sqltype.DefaultCharsetName,
		Locale:              sqltype.DefaultLocale,
		MaxNumericPrecision: sqltype.DefaultMaxNumericPrecision,
	}
}

// BindTypeFlags registers the type configuration flags on cmd.
func BindTypeFlags(cmd *cobra.Command, config *TypeConfig) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&config.DefaultCharset, "charset", config.DefaultCharset, "Default character set for character types (env TYPESPEC_DEFAULT_CHARSET)")
	flags.StringVar(&config.Locale, "locale", config.Locale, "Collation locale (env TYPESPEC_DEFAULT_LOCALE)")
	flags.IntVar(&config.MaxNumericPrecision, "max-numeric-precision", config.MaxNumericPrecision, "Maximum DECIMAL precision (env TYPESPEC_MAX_NUMERIC_PRECISION)")
}

// LoadTypeConfig fills unset flags from the environment.
func LoadTypeConfig(cmd *cobra.Command, config *TypeConfig) {
	StringFromEnv(cmd, "charset", "TYPESPEC_DEFAULT_CHARSET", &config.DefaultCharset)
	StringFromEnv(cmd, "locale", "TYPESPEC_DEFAULT_LOCALE", &config.Locale)
	IntFromEnv(cmd, "max-numeric-precision", "TYPESPEC_MAX_NUMERIC_PRECISION", &config.MaxNumericPrecision)
}

// Env installs the default charset process-wide and returns the resolution
// environment described by config.
func (c TypeConfig) Env() (resolve.Env, error) {
	if err := sqltype.SetDefaultCharset(c.DefaultCharset); err != nil {
		return resolve.Env{}, fmt.Errorf("invalid default character set: %w", err)
	}
	if _, err := sqltype.NewCollation(sqltype.DefaultCharset(), c.Locale, sqltype.Coercible); err != nil {
		return resolve.Env{}, err
	}
	return resolve.Env{
		Factory:        sqltype.NewFactory(sqltype.WithMaxNumericPrecision(c.MaxNumericPrecision)),
		DefaultCharset: sqltype.DefaultCharset,
		Locale:         c.Locale,
	}, nil
}

var (
	envMu   sync.RWMutex
	current = resolve.DefaultEnv()
)

// SetTypeEnv installs the environment subcommands resolve with.
func SetTypeEnv(env resolve.Env) {
	envMu.Lock()
	defer envMu.Unlock()
	current = env
}

// TypeEnv returns the environment installed by SetTypeEnv.
func TypeEnv() resolve.Env {
	envMu.RLock()
	defer envMu.RUnlock()
	return current
}
