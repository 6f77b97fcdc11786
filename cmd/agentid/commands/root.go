package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"agentid/internal/app"
)

// cli carries state shared by the root command and its subcommands.
type cli struct {
	v       *viper.Viper
	cfgFile string
	app     *app.App
}

// Execute runs the agentid CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	app.SetDefaults(c.v)

	root := &cobra.Command{
		Use:          "agentid",
		Short:        "Agent identity keys, fingerprints and signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.cfgFile != "" {
				c.v.SetConfigFile(c.cfgFile)
				if err := c.v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			a, err := app.New(c.v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", app.LogFormatConsole, "log format (console or json)")
	c.bind(app.KeyLogLevel, pf, "log-level")
	c.bind(app.KeyLogFormat, pf, "log-format")

	root.AddCommand(
		c.keygenCmd(),
		c.deriveCmd(),
		c.fingerprintCmd(),
		c.signCmd(),
		c.verifyCmd(),
		hashCmd(),
	)
	return root
}

func (c *cli) bind(key string, fs *pflag.FlagSet, name string) {
	if err := c.v.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", name, err))
	}
}
