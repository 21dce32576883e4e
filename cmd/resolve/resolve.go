package resolve

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/logger"
	"github.com/pgschema/typespec/internal/parser"
	"github.com/pgschema/typespec/internal/resolve"
	"github.com/pgschema/typespec/internal/sqltype"
)

var (
	resolveOutput      string
	resolveConcurrency int
	resolveNoColor     bool
)

var ResolveCmd = &cobra.Command{
	Use:   "resolve [SPEC...]",
	Short: "Resolve type specifications",
	Long: `Resolve one or more type specifications such as 'DECIMAL(10,2)' or
'VARCHAR(50) CHARACTER SET latin1'. With no arguments, or "-", one
specification per line is read from standard input.

The command exits non-zero when any specification fails to resolve.`,
	RunE:         runResolve,
	SilenceUsage: true,
}

func init() {
	ResolveCmd.Flags().StringVar(&resolveOutput, "output", util.OutputText, "Output format (text, json)")
	ResolveCmd.Flags().IntVar(&resolveConcurrency, "concurrency", resolve.DefaultConcurrency, "Maximum number of specifications resolved at once")
	ResolveCmd.Flags().BoolVar(&resolveNoColor, "no-color", false, "Disable colored output")
}

func runResolve(cmd *cobra.Command, args []string) error {
	texts, err := util.ReadSpecArgs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	rows, err := resolveTexts(cmd, texts)
	if err != nil {
		return err
	}
	return util.WriteRows(cmd.OutOrStdout(), rows, resolveOutput, resolveNoColor)
}

// resolveTexts parses every text and resolves the ones that parse. Rows are
// in input order.
func resolveTexts(cmd *cobra.Command, texts []string) ([]util.ResolvedRow, error) {
	rows := make([]util.ResolvedRow, len(texts))
	var (
		specs   []*ast.DataTypeSpec
		indexes []int
	)
	for i, text := range texts {
		spec, err := parser.Parse(text)
		if err != nil {
			rows[i] = util.NewResolvedRow(text, nil, sqltype.Descriptor{}, err)
			continue
		}
		specs = append(specs, spec)
		indexes = append(indexes, i)
	}

	logger.Get().Debug("Resolving type specifications", "count", len(specs), "concurrency", resolveConcurrency)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := resolve.ResolveAll(ctx, specs, util.TypeEnv(), resolveConcurrency)
	if err != nil {
		return nil, fmt.Errorf("resolution interrupted: %w", err)
	}
	for j, r := range results {
		i := indexes[j]
		rows[i] = util.NewResolvedRow(texts[i], r.Spec, r.Type, r.Err)
	}
	return rows, nil
}
