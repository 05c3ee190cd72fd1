package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rawbytedev/fricgan/internal/common"
	"github.com/spf13/cobra"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "List enabled capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry(cmd)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CAPABILITY\tWIDTH")
			for _, c := range reg.Capabilities() {
				width := "var"
				if common.IsFixed(c) {
					width = fmt.Sprint(common.FixedSize(c))
				}
				fmt.Fprintf(w, "%s\t%s\n", c, width)
			}
			return w.Flush()
		},
	}
}
