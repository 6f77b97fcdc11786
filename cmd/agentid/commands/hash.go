package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/crypto"
)

func hashCmd() *cobra.Command {
	var asBase64 bool
	cmd := &cobra.Command{
		Use:   "hash TEXT",
		Short: "Print the SHA-256 of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := crypto.Sha256Hex(args[0])
			if asBase64 {
				sum = crypto.Sha256Base64(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asBase64, "base64", false, "print base64 instead of hex")
	return cmd
}
