package kinds

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pgschema/typespec/internal/sqltype"
)

var KindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List builtin types and the arguments they accept",
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

func runKinds(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFAMILY\tFORMS")
	for _, k := range sqltype.Kinds() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, k.Family(), strings.Join(forms(k), " "))
	}
	return tw.Flush()
}

// forms lists the argument shapes k accepts.
func forms(k sqltype.Kind) []string {
	var out []string
	if k.AllowsNeitherPrecisionNorScale() {
		out = append(out, k.String())
	}
	if k.AllowsPrecisionOnly() {
		out = append(out, k.String()+"(p)")
	}
	if k.AllowsPrecisionAndScale() {
		out = append(out, k.String()+"(p, s)")
	}
	return out
}
