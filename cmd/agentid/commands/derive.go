package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/crypto"
	"agentid/internal/store"
)

var errDeriveFailed = errors.New("could not derive public key")

func (c *cli) deriveCmd() *cobra.Command {
	var keyPath string
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the public key for a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := store.ReadKeyFile(keyPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var (
				pub string
				ok  bool
			)
			if crypto.HasPEMFraming(priv) {
				pub, ok = c.app.Identity.DerivePublicKey(priv)
			} else {
				pub, ok = c.app.Identity.DeriveWireGuardPublicKey(priv)
			}
			if !ok {
				return errDeriveFailed
			}
			fmt.Fprint(cmd.OutOrStdout(), withNewline(pub))
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "", "private key file, or - for stdin")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
