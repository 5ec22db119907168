package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bjaus/pastetab"
)

// EnvPrefix prefixes environment overrides, e.g. PASTETAB_SEP=";".
const EnvPrefix = "PASTETAB"

// Config holds the resolved settings for one conversion.
type Config struct {
	In      string `mapstructure:"in"`      // input file
	Out     string `mapstructure:"out"`     // output file
	Sep     string `mapstructure:"sep"`     // one-character CSV delimiter
	TSV     bool   `mapstructure:"tsv"`     // write tabs instead of Sep
	Format  string `mapstructure:"format"`  // output format, csv when empty
	Header  bool   `mapstructure:"header"`  // first row is a header (table, markdown, html)
	Quiet   bool   `mapstructure:"quiet"`   // suppress the status line
	Verbose bool   `mapstructure:"verbose"` // log detection details
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("in", "input.txt")
	v.SetDefault("out", "output.csv")
	v.SetDefault("sep", ",")
	v.SetDefault("tsv", false)
	v.SetDefault("format", "")
	v.SetDefault("header", false)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
}

// loadConfig merges defaults, an optional config file, PASTETAB_*
// environment variables and command-line flags, in increasing priority.
// A missing config file is only logged.
func loadConfig(fs afero.Fs, flags *pflag.FlagSet, configPath string, logger *logrus.Logger) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %v", ErrConfig, err)
			}
			logger.Warnf("Config file not found at %s, using defaults", configPath)
		} else {
			logger.Debugf("Using config file: %s", v.ConfigFileUsed())
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if utf8.RuneCountInString(c.Sep) != 1 {
		return fmt.Errorf("%w: --sep must be a single character, got %q", ErrConfig, c.Sep)
	}
	if r, _ := utf8.DecodeRuneInString(c.Sep); !pastetab.ValidDelimiter(r) {
		return fmt.Errorf("%w: --sep cannot be %q", ErrConfig, c.Sep)
	}
	if c.Format != "" {
		if _, err := pastetab.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}
	return nil
}

// Delimiter returns the output delimiter: tab when TSV is set, else Sep.
func (c *Config) Delimiter() rune {
	if c.TSV {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(c.Sep)
	return r
}

// OutputFormat returns the format to render. TSV wins over Format so the
// --tsv shortcut behaves like it always has.
func (c *Config) OutputFormat() pastetab.Format {
	if c.TSV {
		return pastetab.TSV
	}
	if c.Format == "" {
		return pastetab.CSV
	}
	f, _ := pastetab.ParseFormat(c.Format)
	return f
}

// renderOptions maps the config onto rendering options.
func (c *Config) renderOptions() []pastetab.Option {
	opts := []pastetab.Option{pastetab.WithDelimiter(c.Delimiter())}
	if c.Header {
		opts = append(opts, pastetab.WithHeader())
	}
	return opts
}
