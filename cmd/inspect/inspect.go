package inspect

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/postgres"
	"github.com/pgschema/typespec/internal/resolve"
)

var (
	inspectConn        util.ConnectionConfig
	inspectSchema      string
	inspectOutput      string
	inspectConcurrency int
	inspectNoColor     bool
	inspectFingerprint bool
	inspectExpect      string
)

var InspectCmd = &cobra.Command{
	Use:          "inspect",
	Short:        "Resolve the column types of a live PostgreSQL schema",
	Long:         "Connect to a PostgreSQL database and resolve the type of every column of every base table in a schema (specified by --schema, defaults to 'public').",
	RunE:         runInspect,
	SilenceUsage: true,
	PreRunE:      util.PreRunEWithConnection(&inspectConn),
}

func init() {
	InspectCmd.Flags().StringVar(&inspectConn.Host, "host", "localhost", "Database server host (env: PGHOST)")
	InspectCmd.Flags().IntVar(&inspectConn.Port, "port", 5432, "Database server port (env: PGPORT)")
	InspectCmd.Flags().StringVar(&inspectConn.Database, "db", "", "Database name (required) (env: PGDATABASE)")
	InspectCmd.Flags().StringVar(&inspectConn.User, "user", "", "Database user name (required) (env: PGUSER)")
	InspectCmd.Flags().StringVar(&inspectConn.Password, "password", "", "Database password (optional, can also use PGPASSWORD env var)")
	InspectCmd.Flags().StringVar(&inspectConn.SSLMode, "sslmode", "prefer", "SSL mode (env: PGSSLMODE)")
	InspectCmd.Flags().StringVar(&inspectConn.ApplicationName, "application-name", "typespec", "Application name reported to the server (env: PGAPPNAME)")
	InspectCmd.Flags().StringVar(&inspectSchema, "schema", "public", "Schema name")
	InspectCmd.Flags().StringVar(&inspectOutput, "output", util.OutputText, "Output format (text, json)")
	InspectCmd.Flags().IntVar(&inspectConcurrency, "concurrency", resolve.DefaultConcurrency, "Maximum number of columns resolved at once")
	InspectCmd.Flags().BoolVar(&inspectNoColor, "no-color", false, "Disable colored output")
	InspectCmd.Flags().BoolVar(&inspectFingerprint, "fingerprint", false, "Print a fingerprint of the resolved column types instead of the types")
	InspectCmd.Flags().StringVar(&inspectExpect, "expect-fingerprint", "", "Fail unless the column types match this fingerprint (8+ hex characters)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := util.Connect(ctx, &inspectConn)
	if err != nil {
		return err
	}
	defer db.Close()

	cols, err := postgres.NewInspector(db).Columns(ctx, inspectSchema)
	if err != nil {
		return err
	}

	rows, err := util.ResolveColumns(ctx, cols, util.TypeEnv(), inspectConcurrency)
	if err != nil {
		return err
	}
	if inspectFingerprint || inspectExpect != "" {
		return util.WriteFingerprint(cmd.OutOrStdout(), rows, inspectExpect)
	}
	return util.WriteRows(cmd.OutOrStdout(), rows, inspectOutput, inspectNoColor)
}
