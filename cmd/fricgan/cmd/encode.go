package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <capability> <value>",
		Short: "Encode a value and print it as hex",
		Long: `Encode a value with the named capability and print the encoded
bytes as lowercase hex. Integers accept 0x, 0o and 0b prefixes.

Example:
  fricgan encode vlq32 300
  fricgan encode vlq-string hello`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry(cmd)
			if err != nil {
				return err
			}
			c, err := capability(reg, args[0])
			if err != nil {
				return err
			}
			out, err := reg.Encode(c, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		},
	}
}
