package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/store"
)

func (c *cli) fingerprintCmd() *cobra.Command {
	var (
		pubPath string
		withSSH bool
	)
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint, short id and agent id of a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := store.ReadKeyFile(pubPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ids := c.app.Identity

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Fingerprint: %s\n", ids.Fingerprint(pub))
			fmt.Fprintf(w, "Short ID:    %s\n", ids.ShortID(pub))
			fmt.Fprintf(w, "Agent ID:    %s\n", ids.AgentID(pub))

			if withSSH {
				fp, err := ids.OpenSSHFingerprint(pub)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "OpenSSH:     %s\n", fp)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pubPath, "pub", "", "public key file, or - for stdin")
	cmd.Flags().BoolVar(&withSSH, "ssh", false, "also print the OpenSSH SHA256 fingerprint")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
