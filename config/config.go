// Package config loads the cranes command configuration from flags,
// CRANES_* environment variables and an optional YAML file, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/cranes/solver"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

const envPrefix = "CRANES"

// Config keys; each doubles as the flag name.
const (
	KeyConfigFile          = "config"
	KeyAlgorithm           = "algorithm"
	KeyGridFile            = "grid-file"
	KeyRows                = "rows"
	KeyColumns             = "columns"
	KeySeed                = "seed"
	KeyBuildingProbability = "building-probability"
	KeyCraneProbability    = "crane-probability"
	KeyCompare             = "compare"
	KeyDebug               = "debug"
)

type Config struct {
	Algorithm           solver.Algorithm
	GridFile            string
	Rows                int
	Columns             int
	Seed                uint64
	BuildingProbability float64
	CraneProbability    float64
	Compare             bool
	Debug               bool

	v *viper.Viper
}

// Load parses args (without the program name) and resolves every key.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("cranes", pflag.ContinueOnError)
	fs.String(KeyConfigFile, "", "optional YAML config file")
	fs.String(KeyAlgorithm, "dynprog", "solver to run: dynprog or exhaustive")
	fs.String(KeyGridFile, "", "grid file (.txt or .yaml); a random grid is generated when empty")
	fs.Int(KeyRows, 8, "rows of the random grid")
	fs.Int(KeyColumns, 8, "columns of the random grid")
	fs.Uint64(KeySeed, 0, "random grid seed; 0 uses the default seed")
	fs.Float64(KeyBuildingProbability, 0.15, "chance that a random cell is a building")
	fs.Float64(KeyCraneProbability, 0.25, "chance that a random non-building cell is a crane")
	fs.Bool(KeyCompare, false, "run both solvers and check that their scores agree")
	fs.Bool(KeyDebug, false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	algo, err := solver.ParseAlgorithm(v.GetString(KeyAlgorithm))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyAlgorithm, err)
	}
	cfg := &Config{
		Algorithm:           algo,
		GridFile:            v.GetString(KeyGridFile),
		Rows:                v.GetInt(KeyRows),
		Columns:             v.GetInt(KeyColumns),
		Seed:                v.GetUint64(KeySeed),
		BuildingProbability: v.GetFloat64(KeyBuildingProbability),
		CraneProbability:    v.GetFloat64(KeyCraneProbability),
		Compare:             v.GetBool(KeyCompare),
		Debug:               v.GetBool(KeyDebug),
		v:                   v,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the random grid settings. They are ignored, and not
// checked, when GridFile is set.
func (c *Config) Validate() error {
	if c.GridFile != "" {
		return nil
	}
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("%w: rows=%d, columns=%d must be positive", ErrInvalidConfig, c.Rows, c.Columns)
	}
	for key, p := range map[string]float64{
		KeyBuildingProbability: c.BuildingProbability,
		KeyCraneProbability:    c.CraneProbability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: %s=%v must lie in [0,1]", ErrInvalidConfig, key, p)
		}
	}
	return nil
}

// SanitizedSettings returns every resolved key and value.
func (c *Config) SanitizedSettings() map[string]any {
	if c.v == nil {
		return nil
	}
	return c.v.AllSettings()
}
