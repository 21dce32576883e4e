package util

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// GetEnvWithDefault returns the value of an environment variable or a default value if not set
func GetEnvWithDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvIntWithDefault returns the value of an environment variable as int or a default value if not set
func GetEnvIntWithDefault(envVar string, defaultValue int) int {
	if value := os.Getenv(envVar); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// StringFromEnv overwrites *dst with envVar's value unless the flag was set
// on the command line.
func StringFromEnv(cmd *cobra.Command, flag, envVar string, dst *string) {
	if v := GetEnvWithDefault(envVar, ""); v != "" && !cmd.Flags().Changed(flag) {
		*dst = v
	}
}

// IntFromEnv is StringFromEnv for integer flags.
func IntFromEnv(cmd *cobra.Command, flag, envVar string, dst *int) {
	if v := GetEnvIntWithDefault(envVar, 0); v != 0 && !cmd.Flags().Changed(flag) {
		*dst = v
	}
}

// PreRunEWithConnection creates a PreRunE function that fills connection
// flags from PG* environment variables and checks the required ones.
func PreRunEWithConnection(config *ConnectionConfig) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		StringFromEnv(cmd, "host", "PGHOST", &config.Host)
		IntFromEnv(cmd, "port", "PGPORT", &config.Port)
		StringFromEnv(cmd, "db", "PGDATABASE", &config.Database)
		StringFromEnv(cmd, "user", "PGUSER", &config.User)
		StringFromEnv(cmd, "password", "PGPASSWORD", &config.Password)
		StringFromEnv(cmd, "sslmode", "PGSSLMODE", &config.SSLMode)
		StringFromEnv(cmd, "application-name", "PGAPPNAME", &config.ApplicationName)

		if config.Database == "" {
			return fmt.Errorf("database name is required (use --db flag or PGDATABASE environment variable)")
		}
		if config.User == "" {
			return fmt.Errorf("database user is required (use --user flag or PGUSER environment variable)")
		}
		return nil
	}
}
