// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfrac/experiment"
	"github.com/katalvlaran/lvfrac/fbm"
	"github.com/katalvlaran/lvfrac/montecarlo"
)

// envPrefix namespaces every environment override.
const envPrefix = "LVFRAC_"

// Config is the CLI view of experiment.Params plus presentation settings.
// Precedence: defaults -> YAML file -> LVFRAC_* environment -> flags.
type Config struct {
	Alpha          float64                    `yaml:"alpha" env:"ALPHA"`
	Hurst          float64                    `yaml:"hurst" env:"HURST"`
	Steps          int                        `yaml:"steps" env:"STEPS"`
	Horizon        float64                    `yaml:"horizon" env:"HORIZON"`
	Warp           float64                    `yaml:"warp" env:"WARP"`
	Paths          int                        `yaml:"paths" env:"PATHS"`
	Antithetic     bool                       `yaml:"antithetic" env:"ANTITHETIC"`
	Workers        int                        `yaml:"workers" env:"WORKERS"`
	Seed           int64                      `yaml:"seed" env:"SEED"`
	Retain         int                        `yaml:"retain" env:"RETAIN"`
	Bandwidth      float64                    `yaml:"bandwidth" env:"BANDWIDTH"`
	BandwidthScale float64                    `yaml:"bandwidth_scale" env:"BANDWIDTH_SCALE"`
	Level          float64                    `yaml:"level" env:"LEVEL"`
	A              float64                    `yaml:"a" env:"A"`
	B              float64                    `yaml:"b" env:"B"`
	Method         fbm.Method                 `yaml:"method" env:"METHOD"`
	MaxDuration    time.Duration              `yaml:"max_duration" env:"MAX_DURATION"`
	NonFinite      montecarlo.NonFinitePolicy `yaml:"non_finite" env:"NON_FINITE"`

	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	Output   string `yaml:"output" env:"OUTPUT"` // JSON curves destination; empty disables
}

// DefaultConfig mirrors experiment.DefaultParams.
func DefaultConfig() Config {
	p := experiment.DefaultParams()

	return Config{
		Alpha:          p.Alpha,
		Hurst:          p.Hurst,
		Steps:          p.Steps,
		Horizon:        p.Horizon,
		Warp:           p.Warp,
		Paths:          p.Paths,
		Antithetic:     p.Antithetic,
		Workers:        p.Workers,
		Seed:           p.Seed,
		Retain:         p.Retain,
		Bandwidth:      p.Bandwidth,
		BandwidthScale: p.BandwidthScale,
		Level:          p.Level,
		A:              p.A,
		B:              p.B,
		Method:         p.Method,
		MaxDuration:    p.MaxDuration,
		NonFinite:      p.NonFinite,
		LogLevel:       "info",
	}
}

// Params converts to the library parameters.
func (c Config) Params() experiment.Params {
	return experiment.Params{
		Alpha:          c.Alpha,
		Hurst:          c.Hurst,
		Steps:          c.Steps,
		Horizon:        c.Horizon,
		Warp:           c.Warp,
		Paths:          c.Paths,
		Antithetic:     c.Antithetic,
		Workers:        c.Workers,
		Seed:           c.Seed,
		Retain:         c.Retain,
		Bandwidth:      c.Bandwidth,
		BandwidthScale: c.BandwidthScale,
		Level:          c.Level,
		A:              c.A,
		B:              c.B,
		Method:         c.Method,
		MaxDuration:    c.MaxDuration,
		NonFinite:      c.NonFinite,
	}
}

// LoadConfig applies the YAML file at path (optional) and then the
// environment on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := decodeYAML(f, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// decodeYAML rejects unknown keys so typos do not silently fall back to
// defaults. An empty document is fine.
func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// bindFlags registers one flag per tunable, defaulting to the zero config so
// help output shows the built-in values.
func bindFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.Float64("alpha", d.Alpha, "fractional order alpha in (0,1); H = 1 - alpha")
	fs.Float64("hurst", d.Hurst, "Hurst exponent (0 derives it from alpha)")
	fs.Int("steps", d.Steps, "grid points N")
	fs.Float64("horizon", d.Horizon, "time horizon T")
	fs.Float64("warp", d.Warp, "grid warp exponent p (1 = uniform, <1 concentrates near 0)")
	fs.Int("paths", d.Paths, "Monte Carlo realizations M")
	fs.Bool("antithetic", d.Antithetic, "pair each path with its negation")
	fs.Int("workers", d.Workers, "parallel workers")
	fs.Int64("seed", d.Seed, "random seed (0 = fixed default)")
	fs.Int("retain", d.Retain, "sample paths kept for output")
	fs.Float64("bandwidth", d.Bandwidth, "kernel bandwidth epsilon (0 = increment rule)")
	fs.Float64("bandwidth-scale", d.BandwidthScale, "kappa for the increment bandwidth rule")
	fs.Float64("level", d.Level, "local-time level")
	fs.Float64("a", d.A, "weight intercept a in f(t) = a + b t")
	fs.Float64("b", d.B, "weight slope b in f(t) = a + b t")
	fs.String("method", d.Method.String(), "sampler: cholesky, hosking or daviesharte")
	fs.Duration("max-duration", d.MaxDuration, "wall-clock budget (0 = none)")
	fs.String("non-finite", d.NonFinite.String(), "non-finite realizations: skip or abort")
	fs.StringP("output", "o", d.Output, "write grid, curves and paths as JSON to this file")
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			if e := apply(); e != nil {
				err = fmt.Errorf("--%s: %w", name, e)
			}
		}
	}
	set("alpha", func() (e error) { cfg.Alpha, e = fs.GetFloat64("alpha"); return })
	set("hurst", func() (e error) { cfg.Hurst, e = fs.GetFloat64("hurst"); return })
	set("steps", func() (e error) { cfg.Steps, e = fs.GetInt("steps"); return })
	set("horizon", func() (e error) { cfg.Horizon, e = fs.GetFloat64("horizon"); return })
	set("warp", func() (e error) { cfg.Warp, e = fs.GetFloat64("warp"); return })
	set("paths", func() (e error) { cfg.Paths, e = fs.GetInt("paths"); return })
	set("antithetic", func() (e error) { cfg.Antithetic, e = fs.GetBool("antithetic"); return })
	set("workers", func() (e error) { cfg.Workers, e = fs.GetInt("workers"); return })
	set("seed", func() (e error) { cfg.Seed, e = fs.GetInt64("seed"); return })
	set("retain", func() (e error) { cfg.Retain, e = fs.GetInt("retain"); return })
	set("bandwidth", func() (e error) { cfg.Bandwidth, e = fs.GetFloat64("bandwidth"); return })
	set("bandwidth-scale", func() (e error) { cfg.BandwidthScale, e = fs.GetFloat64("bandwidth-scale"); return })
	set("level", func() (e error) { cfg.Level, e = fs.GetFloat64("level"); return })
	set("a", func() (e error) { cfg.A, e = fs.GetFloat64("a"); return })
	set("b", func() (e error) { cfg.B, e = fs.GetFloat64("b"); return })
	set("max-duration", func() (e error) { cfg.MaxDuration, e = fs.GetDuration("max-duration"); return })
	set("output", func() (e error) { cfg.Output, e = fs.GetString("output"); return })
	set("method", func() error {
		s, e := fs.GetString("method")
		if e != nil {
			return e
		}
		return cfg.Method.UnmarshalText([]byte(s))
	})
	set("non-finite", func() error {
		s, e := fs.GetString("non-finite")
		if e != nil {
			return e
		}
		return cfg.NonFinite.UnmarshalText([]byte(s))
	})

	return err
}
