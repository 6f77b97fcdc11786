package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/store"
)

func (c *cli) signCmd() *cobra.Command {
	var keyPath, message string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message and print the base64 signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := store.ReadKeyFile(keyPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			sig, err := c.app.Signature.SignMessage(priv, message)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "private key file, or - for stdin")
	cmd.Flags().StringVar(&message, "message", "", "message to sign")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
