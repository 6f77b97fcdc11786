package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"agentid/internal/app"
	"agentid/internal/domain"
)

type keygenOutput struct {
	PrivateKey  string         `json:"private_key,omitempty"`
	PublicKey   string         `json:"public_key"`
	Type        domain.KeyType `json:"type"`
	ShortID     string         `json:"short_id"`
	Fingerprint string         `json:"fingerprint"`
	PrivatePath string         `json:"private_path,omitempty"`
	PublicPath  string         `json:"public_path,omitempty"`
}

func (c *cli) keygenCmd() *cobra.Command {
	var (
		name   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long: "Generate a key pair. With --out or --name the pair is written to\n" +
			"<out>/<name>.key and <out>/<name>.pub instead of being printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.app
			kp, err := a.Identity.GenerateKeyPair(a.Config.KeyType)
			if err != nil {
				return err
			}

			out := keygenOutput{
				PrivateKey:  kp.PrivateKey,
				PublicKey:   kp.PublicKey,
				Type:        kp.Type,
				ShortID:     a.Identity.ShortID(kp.PublicKey).String(),
				Fingerprint: a.Identity.Fingerprint(kp.PublicKey).String(),
			}

			if cmd.Flags().Changed("out") || cmd.Flags().Changed("name") {
				privPath, pubPath, err := a.Keys.SaveKeyPair(name, kp)
				if err != nil {
					return err
				}
				out.PrivateKey = ""
				out.PrivatePath, out.PublicPath = privPath, pubPath
				a.Logger.Info().Str("type", kp.Type.String()).Str("dir", a.Config.OutDir).Msg("key pair written")
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if out.PrivatePath != "" {
				fmt.Fprintf(w, "Private key: %s\nPublic key:  %s\n", out.PrivatePath, out.PublicPath)
			} else {
				fmt.Fprint(w, withNewline(out.PrivateKey))
				fmt.Fprint(w, withNewline(out.PublicKey))
			}
			fmt.Fprintf(w, "Short ID:    %s\nFingerprint: %s\n", out.ShortID, out.Fingerprint)
			return nil
		},
	}

	f := cmd.Flags()
	f.String("type", domain.KeyTypeEd25519.String(), "key type (rsa, ed25519, wireguard)")
	f.String("out", ".", "directory to write key files to")
	f.StringVar(&name, "name", "agent", "base name for key files")
	f.BoolVar(&asJSON, "json", false, "print JSON")
	c.bind(app.KeyKeyType, f, "type")
	c.bind(app.KeyOutDir, f, "out")
	return cmd
}

func withNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
