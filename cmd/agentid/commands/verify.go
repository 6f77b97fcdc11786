package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/store"
)

var errInvalidSignature = errors.New("signature is invalid")

func (c *cli) verifyCmd() *cobra.Command {
	var pubPath, message, signature string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a base64 signature against a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := store.ReadKeyFile(pubPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ok, err := c.app.Signature.VerifySignature(pub, message, signature)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&pubPath, "pub", "", "public key file, or - for stdin")
	f.StringVar(&message, "message", "", "signed message")
	f.StringVar(&signature, "signature", "", "base64 signature")
	_ = cmd.MarkFlagRequired("pub")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
