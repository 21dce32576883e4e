package util

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("TEST_STRING", "test-value")
	if got := GetEnvWithDefault("TEST_STRING", "default"); got != "test-value" {
		t.Errorf("Expected GetEnvWithDefault to return 'test-value', got '%s'", got)
	}

	if got := GetEnvWithDefault("TYPESPEC_MISSING_VAR", "default"); got != "default" {
		t.Errorf("Expected GetEnvWithDefault to return 'default', got '%s'", got)
	}

	t.Setenv("EMPTY_VAR", "")
	if got := GetEnvWithDefault("EMPTY_VAR", "default"); got != "default" {
		t.Errorf("Expected GetEnvWithDefault to return 'default' for empty var, got '%s'", got)
	}
}

func TestGetEnvIntWithDefault(t *testing.T) {
	t.Setenv("TEST_INT", "12345")
	if got := GetEnvIntWithDefault("TEST_INT", 0); got != 12345 {
		t.Errorf("Expected GetEnvIntWithDefault to return 12345, got %d", got)
	}

	t.Setenv("TEST_INVALID_INT", "not-a-number")
	if got := GetEnvIntWithDefault("TEST_INVALID_INT", 999); got != 999 {
		t.Errorf("Expected GetEnvIntWithDefault to return default 999, got %d", got)
	}

	if got := GetEnvIntWithDefault("TYPESPEC_MISSING_INT_VAR", 777); got != 777 {
		t.Errorf("Expected GetEnvIntWithDefault to return default 777, got %d", got)
	}
}

func newConnCmd(config *ConnectionConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&config.Host, "host", "localhost", "")
	cmd.Flags().IntVar(&config.Port, "port", 5432, "")
	cmd.Flags().StringVar(&config.Database, "db", "", "")
	cmd.Flags().StringVar(&config.User, "user", "", "")
	cmd.Flags().StringVar(&config.Password, "password", "", "")
	cmd.Flags().StringVar(&config.SSLMode, "sslmode", "", "")
	cmd.Flags().StringVar(&config.ApplicationName, "application-name", "", "")
	return cmd
}

func TestPreRunEWithConnection(t *testing.T) {
	t.Setenv("PGDATABASE", "envdb")
	t.Setenv("PGUSER", "envuser")
	t.Setenv("PGPORT", "6543")

	config := &ConnectionConfig{}
	cmd := newConnCmd(config)
	if err := cmd.ParseFlags([]string{"--user", "flaguser"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := PreRunEWithConnection(config)(cmd, nil); err != nil {
		t.Fatalf("PreRunE: %v", err)
	}
	if config.Database != "envdb" {
		t.Errorf("Database = %q; want envdb", config.Database)
	}
	if config.User != "flaguser" {
		t.Errorf("User = %q; flag should win over env", config.User)
	}
	if config.Port != 6543 {
		t.Errorf("Port = %d; want 6543", config.Port)
	}
}

func TestPreRunEWithConnectionMissingDB(t *testing.T) {
	t.Setenv("PGDATABASE", "")
	t.Setenv("PGUSER", "")
	config := &ConnectionConfig{}
	cmd := newConnCmd(config)
	if err := PreRunEWithConnection(config)(cmd, nil); err == nil {
		t.Error("expected error without a database name")
	}
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(&ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Database: "app",
		User:     "bob",
		Password: "it's secret",
		SSLMode:  "disable",
	})
	want := `host=localhost port=5432 dbname=app user=bob password='it\'s secret' sslmode=disable`
	if dsn != want {
		t.Errorf("buildDSN() = %q; want %q", dsn, want)
	}
}
