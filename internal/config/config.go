// Package config turns command-line flags, and an optional YAML file named
// with --config, into the settings of a tutoring session.
//
// Viper is used on a private instance with no environment binding: unless a
// config file is explicitly given, nothing outside the command line is
// consulted. Flags that were set explicitly win over the file, and the file
// wins over flag defaults.
package config

import (
	"strconv"

	tutorerrors "github.com/conneroisu/pass-tutor/internal/errors"
	"github.com/conneroisu/pass-tutor/internal/logging"
	"github.com/conneroisu/pass-tutor/internal/password"
	"github.com/conneroisu/pass-tutor/internal/tutor"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, the config file and the viper instance.
const (
	KeySymbols        = "symbols"
	KeyNumbers        = "numbers"
	KeyUpper          = "upper"
	KeyLower          = "lower"
	KeyLength         = "length"
	KeyPracticeRounds = "practice-rounds"
	KeyHideInput      = "hide-input"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
)

type Config struct {
	Symbols        bool   `mapstructure:"symbols"`
	Numbers        bool   `mapstructure:"numbers"`
	Upper          bool   `mapstructure:"upper"`
	Lower          bool   `mapstructure:"lower"`
	Length         string `mapstructure:"length"`
	PracticeRounds int    `mapstructure:"practice-rounds"`
	HideInput      bool   `mapstructure:"hide-input"`
	LogLevel       string `mapstructure:"log-level"`
	LogFormat      string `mapstructure:"log-format"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySymbols, false)
	v.SetDefault(KeyNumbers, false)
	v.SetDefault(KeyUpper, false)
	v.SetDefault(KeyLower, false)
	v.SetDefault(KeyLength, strconv.Itoa(password.DefaultLength))
	v.SetDefault(KeyPracticeRounds, tutor.DefaultPracticeRounds)
	v.SetDefault(KeyHideInput, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
}

// NewViper returns a viper instance bound to flags. When configFile is not
// empty it is read as well; failure to read it is a config error.
func NewViper(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, tutorerrors.NewConfigError(tutorerrors.ErrCodeConfigInvalid, "failed to bind flags", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, tutorerrors.NewConfigError(tutorerrors.ErrCodeConfigInvalid, "failed to read config file", err).
				WithContext("file", configFile)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, tutorerrors.NewConfigError(tutorerrors.ErrCodeConfigInvalid, "failed to decode configuration", err)
	}

	if config.PracticeRounds < 1 {
		config.PracticeRounds = tutor.DefaultPracticeRounds
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return tutorerrors.NewConfigError(tutorerrors.ErrCodeConfigInvalid, "invalid log level", err)
	}

	switch config.LogFormat {
	case "text", "json":
	default:
		return tutorerrors.NewConfigError(tutorerrors.ErrCodeConfigInvalid, "invalid log format: "+config.LogFormat+" (text, json)", nil)
	}

	return nil
}

// ParseLength parses raw as an unsigned 32-bit length. Anything that does
// not parse yields password.DefaultLength.
func ParseLength(raw string) int {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return password.DefaultLength
	}
	return int(n)
}

// PasswordSpec returns the password spec described by the configuration.
func (c *Config) PasswordSpec() password.Spec {
	return password.NewSpec(c.Symbols, c.Numbers, c.Upper, c.Lower, ParseLength(c.Length))
}

// LoggerConfig returns the logger settings described by the configuration.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	level, _ := logging.ParseLevel(c.LogLevel)

	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = c.LogFormat

	return lc
}
