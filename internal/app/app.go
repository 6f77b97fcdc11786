package app

import (
	"io"

	"github.com/spf13/viper"
)

// App is the loaded configuration plus the wired dependencies.
type App struct {
	Config Config
	*Wire
}

// New loads configuration from v and wires services that log to logOut.
func New(v *viper.Viper, logOut io.Writer) (*App, error) {
	cfg, err := LoadConfig(v)
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg, logOut)
	return &App{Config: cfg, Wire: NewWire(cfg, logger)}, nil
}
