package format

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/cmd/util"
	"github.com/pgschema/typespec/internal/ast"
	"github.com/pgschema/typespec/internal/parser"
)

var formatQuoteAll bool

var FormatCmd = &cobra.Command{
	Use:   "format [SPEC...]",
	Short: "Print type specifications in canonical form",
	Long: `Parse type specifications and print each one in canonical form, one per
line. Arguments are written as '(precision, scale)' and identifiers are
quoted only where needed. With no arguments, or "-", specifications are read
from standard input.`,
	RunE:         runFormat,
	SilenceUsage: true,
}

func init() {
	FormatCmd.Flags().BoolVar(&formatQuoteAll, "quote-all", false, "Quote every identifier, not only those that require it")
}

func runFormat(cmd *cobra.Command, args []string) error {
	texts, err := util.ReadSpecArgs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var opts []ast.WriterOption
	if formatQuoteAll {
		opts = append(opts, ast.WithQuoteAllIdentifiers())
	}

	out := cmd.OutOrStdout()
	for _, text := range texts {
		spec, err := parser.Parse(text)
		if err != nil {
			return fmt.Errorf("%q: %w", text, err)
		}
		w := ast.NewWriter(opts...)
		spec.Unparse(w, 0, 0)
		fmt.Fprintln(out, w.String())
	}
	return nil
}
