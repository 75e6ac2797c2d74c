// Package config loads metroroute settings from flags, environment,
// an optional .env file and an optional YAML config file.
//
// Precedence, highest first: command-line flags, METRO_* environment
// variables (including those loaded from --env-file), the --config file,
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metro/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "METRO"

// ErrInvalidConfig wraps every validation or source-loading failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete metroroute configuration.
type Config struct {
	Source   string         `yaml:"source" mapstructure:"source" validate:"required_unless=AllPairs true"`
	Target   string         `yaml:"target" mapstructure:"target" validate:"required_unless=AllPairs true"`
	Strategy string         `yaml:"strategy" mapstructure:"strategy" validate:"oneof=heap linear"`
	Network  string         `yaml:"network" mapstructure:"network"`
	DOT      string         `yaml:"dot" mapstructure:"dot"`
	AllPairs bool           `yaml:"all_pairs" mapstructure:"all_pairs"`
	Log      logging.Config `yaml:"log" mapstructure:"log"`
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// flag name -> viper key
var flagKeys = map[string]string{
	"source":     "source",
	"target":     "target",
	"strategy":   "strategy",
	"network":    "network",
	"dot":        "dot",
	"all-pairs":  "all_pairs",
	"log-level":  "log.level",
	"log-format": "log.format",
}

type loader struct {
	output io.Writer
}

// Option configures Load.
type Option func(*loader)

// WithOutput sets where usage and flag errors are printed. Default io.Discard.
func WithOutput(w io.Writer) Option {
	return func(l *loader) { l.output = w }
}

// NewFlagSet declares every metroroute flag.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("metroroute", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringP("source", "s", "", "source station ID")
	fs.StringP("target", "t", "", "target station ID")
	fs.String("strategy", "heap", "node selection strategy: heap or linear")
	fs.StringP("network", "n", "", "YAML network file (default: built-in sample)")
	fs.String("dot", "", "write a Graphviz DOT rendering to this path")
	fs.Bool("all-pairs", false, "print the all-pairs distance table instead of a single query")
	fs.String("log-level", "warn", "log level: trace, debug, info, warn, error, disabled")
	fs.String("log-format", logging.FormatConsole, "log format: console or json")
	fs.StringP("config", "c", "", "YAML config file")
	fs.String("env-file", "", ".env file to load into the environment")

	return fs
}

// Load parses args (without the program name) and merges every source into
// a validated Config. Two positional arguments are taken as source and
// target when the corresponding flags are absent. pflag.ErrHelp is returned
// unwrapped for -h/--help.
func Load(args []string, opts ...Option) (Config, error) {
	l := loader{output: io.Discard}
	for _, opt := range opts {
		opt(&l)
	}

	fs := NewFlagSet()
	fs.SetOutput(l.output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 1) .env first so viper sees its variables.
	if path, _ := fs.GetString("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("%w: env file %s: %v", ErrInvalidConfig, path, err)
		}
	}

	// 2) Environment and flags.
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", false)
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}

	// 3) Optional config file.
	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: config file %s: %v", ErrInvalidConfig, path, err)
		}
	}

	// 4) Positional source and target.
	switch fs.NArg() {
	case 0:
	case 2:
		if !fs.Changed("source") {
			v.Set("source", fs.Arg(0))
		}
		if !fs.Changed("target") {
			v.Set("target", fs.Arg(1))
		}
	default:
		return Config{}, fmt.Errorf("%w: expected 0 or 2 positional arguments, got %d", ErrInvalidConfig, fs.NArg())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Strategy = strings.ToLower(cfg.Strategy)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Log.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
