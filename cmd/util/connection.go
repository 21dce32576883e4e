package util

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pgschema/typespec/internal/logger"
)

// ConnectionConfig holds database connection parameters
type ConnectionConfig struct {
	Host            string
	Port            int
	Database        string
	User            string
	Password        string
	SSLMode         string
	ApplicationName string
}

// Connect opens a pgx-backed connection and checks it with a ping.
func Connect(ctx context.Context, config *ConnectionConfig) (*sql.DB, error) {
	log := logger.Get()
	log.Debug("Attempting database connection",
		"host", config.Host,
		"port", config.Port,
		"database", config.Database,
		"user", config.User,
		"sslmode", config.SSLMode,
		"application_name", config.ApplicationName,
	)

	conn, err := sql.Open("pgx", buildDSN(config))
	if err != nil {
		log.Debug("Database connection failed", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Debug("Database ping failed", "error", err)
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Debug("Database connection established successfully")
	return conn, nil
}

// buildDSN constructs a PostgreSQL keyword/value connection string. Values
// are quoted so that passwords may contain spaces or quotes.
func buildDSN(config *ConnectionConfig) string {
	parts := []string{
		"host=" + quoteDSNValue(config.Host),
		fmt.Sprintf("port=%d", config.Port),
		"dbname=" + quoteDSNValue(config.Database),
		"user=" + quoteDSNValue(config.User),
	}
	if config.Password != "" {
		parts = append(parts, "password="+quoteDSNValue(config.Password))
	}
	if config.SSLMode != "" {
		parts = append(parts, "sslmode="+quoteDSNValue(config.SSLMode))
	}
	if config.ApplicationName != "" {
		parts = append(parts, "application_name="+quoteDSNValue(config.ApplicationName))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
