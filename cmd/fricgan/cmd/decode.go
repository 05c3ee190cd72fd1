package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/rawbytedev/fricgan/config"
	"github.com/rawbytedev/fricgan/internal/common"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <capability> <hex>",
		Short: "Decode a hex-encoded value",
		Long: `Decode the value at the start of the hex input and print it with the
number of bytes consumed. With --all, decode values back to back until
the input is exhausted.

Example:
  fricgan decode vlq32 ac02
  fricgan decode --all u8 010203`,
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
			data, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}
			all, _ := cmd.Flags().GetBool("all")

			out := cmd.OutOrStdout()
			for off := 0; ; {
				text, n, err := reg.Decode(c, data[off:])
				if err != nil {
					return fmt.Errorf("offset %d: %w", off, err)
				}
				fmt.Fprintf(out, "%s\t%d\n", format(c, text), n)
				off += n
				if !all || off >= len(data) {
					return nil
				}
			}
		},
	}
	decodeCmd.Flags().BoolP("all", "a", false, "decode repeated values until the input is exhausted")
	return decodeCmd
}

func format(c config.Capability, text string) string {
	if common.KindOf(c) == common.KindString {
		return strconv.Quote(text)
	}
	return text
}
