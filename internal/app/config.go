package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"agentid/internal/domain"
)

// Config keys, shared by flags, env vars and config files.
const (
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyKeyType   = "key_type"
	KeyOutDir    = "out_dir"

	envPrefix = "AGENTID"
)

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ErrInvalidConfig wraps every validation failure from LoadConfig.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime options for the CLI.
type Config struct {
	LogLevel  string         // zerolog level name, e.g. "debug"
	LogFormat string         // "console" or "json"
	KeyType   domain.KeyType // default for keygen
	OutDir    string         // where keygen writes key files
}

// SetDefaults registers defaults and env binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, LogFormatConsole)
	v.SetDefault(KeyKeyType, domain.KeyTypeEd25519.String())
	v.SetDefault(KeyOutDir, ".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// LoadConfig reads and validates a Config from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		OutDir:    v.GetString(KeyOutDir),
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return Config{}, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.LogFormat)
	}

	kt, err := domain.ParseKeyType(v.GetString(KeyKeyType))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.KeyType = kt

	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	return cfg, nil
}
