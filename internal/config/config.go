package config

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper/internal/mines"
)

const EnvPrefix = "MINES"

type Custom struct {
	Rows  int `mapstructure:"rows"`
	Cols  int `mapstructure:"cols"`
	Mines int `mapstructure:"mines"`
}

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

type Config struct {
	Mode       string `mapstructure:"mode"`
	Difficulty string `mapstructure:"difficulty"`
	Board      string `mapstructure:"board"`
	Custom     Custom `mapstructure:"custom"`
	Seed       uint64 `mapstructure:"seed"`
	Plain      bool   `mapstructure:"plain"`
	Log        Log    `mapstructure:"log"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"mode":       "mode",
	"difficulty": "difficulty",
	"board":      "board",
	"seed":       "seed",
	"plain":      "plain",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "production")
	v.SetDefault("difficulty", "easy")
	v.SetDefault("board", "")
	v.SetDefault("custom.rows", 10)
	v.SetDefault("custom.cols", 10)
	v.SetDefault("custom.mines", 10)
	v.SetDefault("seed", 0)
	v.SetDefault("plain", false)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// NewFlagSet declares the command line flags understood by [Load].
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file path")
	flags.String("mode", "production", "production or development")
	flags.StringP("difficulty", "d", "easy", "easy, normal, hard or custom")
	flags.StringP("board", "b", "", "board as rows:cols:mines, overrides difficulty")
	flags.Uint64("seed", 0, "mine placement seed, 0 picks one at random")
	flags.Bool("plain", false, "line based interface instead of the full screen one")
	flags.String("log-level", "", "log level, defaults to debug in development and info otherwise")
	flags.String("log-file", "", "write logs to this file, rotated")
	return flags
}

// Load merges, from lowest to highest precedence, the defaults, the file
// named by the config flag, MINES_* environment variables and the flags
// that were set explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
			}
		}
	}

	if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", f.Value.String(), err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &c, nil
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) LogLevel() (logrus.Level, error) {
	if c.Log.Level == "" {
		if c.Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.Log.Level)
}

// GameParams resolves the board to play: an explicit board seed wins over
// the difficulty, and the custom difficulty reads the custom section.
func (c Config) GameParams() (mines.GameParams, error) {
	var (
		p   mines.GameParams
		err error
	)
	switch {
	case c.Board != "":
		p, err = mines.ParseSeed(c.Board)
		if err != nil {
			return p, err
		}
	case strings.EqualFold(c.Difficulty, "custom"):
		p = mines.GameParams{Rows: c.Custom.Rows, Cols: c.Custom.Cols, MineCount: c.Custom.Mines}
	default:
		var ok bool
		if p, ok = mines.Presets[strings.ToLower(c.Difficulty)]; !ok {
			return p, fmt.Errorf("unknown difficulty %q", c.Difficulty)
		}
	}
	return p, p.Validate()
}

func (c Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":            c.Mode,
		"difficulty":      c.Difficulty,
		"board":           c.Board,
		"custom":          fmt.Sprintf("%d:%d:%d", c.Custom.Rows, c.Custom.Cols, c.Custom.Mines),
		"seed":            c.Seed,
		"plain":           c.Plain,
		"log_level":       c.Log.Level,
		"log_file":        c.Log.File,
		"log_max_size":    c.Log.MaxSize,
		"log_max_backups": c.Log.MaxBackups,
		"log_max_age":     c.Log.MaxAge,
	}
}
