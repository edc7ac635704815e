// Package config resolves command line settings from flags, HASHIRA_*
// environment variables and an optional config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Amanking2425/catalog-placement-hashira/internal/logging"
)

const (
	ConfigFileKey = "config"
	LogLevelKey   = "log-level"
	LogFormatKey  = "log-format"
	OutputKey     = "output"
	FilesKey      = "files"

	TextOutput = "text"
	JSONOutput = "json"

	envPrefix = "hashira"
)

var (
	ErrUnknownOutput = errors.New("unknown output format")

	// DefaultFiles are solved when no file is named.
	DefaultFiles = []string{"testcase1.json", "testcase2.json"}
)

type Config struct {
	Log    logging.Config
	Output string
	Files  []string
}

// AddFlags registers the flags read by Load.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "config file (yaml, toml or json)")
	fs.String(LogLevelKey, "info", "log level: debug, info, warn or error")
	fs.String(LogFormatKey, logging.ConsoleFormat, "log format: console or json")
	fs.StringP(OutputKey, "o", TextOutput, "output format: text or json")
}

// Load builds the viper environment over fs and returns the resolved config.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(FilesKey, DefaultFiles)

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Log: logging.Config{
			Level:  v.GetString(LogLevelKey),
			Format: v.GetString(LogFormatKey),
		},
		Output: strings.ToLower(v.GetString(OutputKey)),
		Files:  v.GetStringSlice(FilesKey),
	}
	switch cfg.Output {
	case TextOutput, JSONOutput:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOutput, cfg.Output)
	}
	return cfg, nil
}
