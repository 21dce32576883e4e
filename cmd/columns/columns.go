package columns

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/logger"
	"github.com/pgschema/typespec/internal/postgres"
	"github.com/pgschema/typespec/internal/resolve"
)

var (
	columnsFile        string
	columnsSchema      string
	columnsOutput      string
	columnsConcurrency int
	columnsNoColor     bool
	columnsFingerprint bool
	columnsExpect      string
)

var ColumnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Resolve the column types of CREATE TABLE statements",
	Long: `Parse a PostgreSQL DDL file and resolve the declared type of every column
of every CREATE TABLE statement. Other statements are ignored. Use
--file - to read the DDL from standard input.

Unqualified tables are reported under --schema, or under the schema named
in a pgschema dump header when --schema is not given.`,
	RunE:         runColumns,
	SilenceUsage: true,
}

func init() {
	ColumnsCmd.Flags().StringVar(&columnsFile, "file", "", "Path to SQL file with CREATE TABLE statements (required)")
	ColumnsCmd.Flags().StringVar(&columnsSchema, "schema", "", "Schema for unqualified tables (default: detected from dump header)")
	ColumnsCmd.Flags().StringVar(&columnsOutput, "output", util.OutputText, "Output format (text, json)")
	ColumnsCmd.Flags().IntVar(&columnsConcurrency, "concurrency", resolve.DefaultConcurrency, "Maximum number of columns resolved at once")
	ColumnsCmd.Flags().BoolVar(&columnsNoColor, "no-color", false, "Disable colored output")
	ColumnsCmd.Flags().BoolVar(&columnsFingerprint, "fingerprint", false, "Print a fingerprint of the resolved column types instead of the types")
	ColumnsCmd.Flags().StringVar(&columnsExpect, "expect-fingerprint", "", "Fail unless the column types match this fingerprint (8+ hex characters)")
	ColumnsCmd.MarkFlagRequired("file")
}

func runColumns(cmd *cobra.Command, args []string) error {
	sql, err := util.ReadFileOrStdin(columnsFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cols, err := postgres.ParseColumns(sql)
	if err != nil {
		return err
	}

	schema := columnsSchema
	if schema == "" {
		schema = util.DetectSchema(sql)
	}
	for i := range cols {
		if cols[i].Schema == "" {
			cols[i].Schema = schema
		}
	}
	logger.Get().Debug("Parsed columns", "file", columnsFile, "schema", schema, "count", len(cols))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rows, err := util.ResolveColumns(ctx, cols, util.TypeEnv(), columnsConcurrency)
	if err != nil {
		return err
	}
	if columnsFingerprint || columnsExpect != "" {
		return util.WriteFingerprint(cmd.OutOrStdout(), rows, columnsExpect)
	}
	return util.WriteRows(cmd.OutOrStdout(), rows, columnsOutput, columnsNoColor)
}
