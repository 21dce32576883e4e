package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/cmd/columns"
	"github.com/pgschema/typespec/cmd/format"
	"github.com/pgschema/typespec/cmd/inspect"
	"github.com/pgschema/typespec/cmd/kinds"
	"github.com/pgschema/typespec/cmd/resolve"
	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/logger"
	"github.com/pgschema/typespec/internal/version"
)

var (
	Debug      bool
	typeConfig = util.DefaultTypeConfig()
)

var RootCmd = &cobra.Command{
	Use:   "typespec",
	Short: "Resolve and format SQL type specifications",
	Long: fmt.Sprintf(`typespec resolves SQL type specifications such as DECIMAL(10,2) or
VARCHAR(50) CHARACTER SET latin1 into validated types.

Version: %s

Commands:
  resolve   Resolve type specifications
  format    Print type specifications in canonical form
  kinds     List builtin types and the arguments they accept
  columns   Resolve the column types of CREATE TABLE statements
  inspect   Resolve the column types of a live PostgreSQL schema

Use "typespec [command] --help" for more information about a command.`, version.String()),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(os.Stderr, Debug)
		util.LoadTypeConfig(cmd, &typeConfig)
		env, err := typeConfig.Env()
		if err != nil {
			return err
		}
		util.SetTypeEnv(env)
		logger.Get().Debug("Type configuration loaded",
			"charset", typeConfig.DefaultCharset,
			"locale", typeConfig.Locale,
			"max_numeric_precision", typeConfig.MaxNumericPrecision,
		)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	util.BindTypeFlags(RootCmd, &typeConfig)

	RootCmd.AddCommand(resolve.ResolveCmd)
	RootCmd.AddCommand(format.FormatCmd)
	RootCmd.AddCommand(kinds.KindsCmd)
	RootCmd.AddCommand(columns.ColumnsCmd)
	RootCmd.AddCommand(inspect.InspectCmd)
	RootCmd.AddCommand(VersionCmd)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
