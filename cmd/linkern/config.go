package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkern/lk"
)

// Initial-tour providers selectable in the config.
const (
	providerMultiStart = "multistart"
	providerNearest    = "nearest"
	providerRandom     = "random"
	providerIdentity   = "identity"
)

var errConfig = errors.New("linkern: invalid config")

// Config is the on-disk configuration. Flags override individual fields.
type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"` // default: <input>.tour

	Seed struct {
		Provider   string `yaml:"provider"`
		RandomSeed int64  `yaml:"random_seed"`
		Start      int    `yaml:"start"`  // nearest: start city index
		Starts     int    `yaml:"starts"` // multistart: 0 ⇒ classic count
		Workers    int    `yaml:"workers"`
	} `yaml:"seed"`

	LK struct {
		MaxPasses  int           `yaml:"max_passes"`
		MaxDepth   int           `yaml:"max_depth"`
		Candidates int           `yaml:"candidates"`
		Workers    int           `yaml:"workers"`
		TimeLimit  time.Duration `yaml:"time_limit"`
	} `yaml:"lk"`

	Log struct {
		Level  string `yaml:"level"`  // debug | info | warn | error
		Format string `yaml:"format"` // text | json
	} `yaml:"log"`

	Bound struct {
		Iterations int `yaml:"iterations"` // 1-tree subgradient steps; 0 disables
	} `yaml:"bound"`

	Metrics struct {
		Textfile string `yaml:"textfile"` // Prometheus text dump; empty disables
	} `yaml:"metrics"`
}

func defaultConfig() Config {
	var c Config
	c.Seed.Provider = providerMultiStart
	c.Log.Level = "info"
	c.Log.Format = "text"

	return c
}

// loadConfig overlays the YAML file at path on the defaults. Unknown keys
// are rejected.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("linkern: config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%w: %s: %v", errConfig, path, err)
	}

	return c, nil
}

func (c Config) validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: no input file", errConfig)
	}
	switch c.Seed.Provider {
	case providerMultiStart, providerNearest, providerRandom, providerIdentity:
	default:
		return fmt.Errorf("%w: unknown seed provider %q", errConfig, c.Seed.Provider)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Bound.Iterations < 0 {
		return fmt.Errorf("%w: negative bound iterations", errConfig)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: unknown log format %q", errConfig, c.Log.Format)
	}

	return nil
}

func (c Config) output() string {
	if c.Output != "" {
		return c.Output
	}

	return c.Input + ".tour"
}

func (c Config) lkOptions() []lk.Option {
	return []lk.Option{
		lk.WithMaxPasses(c.LK.MaxPasses),
		lk.WithMaxDepth(c.LK.MaxDepth),
		lk.WithCandidates(c.LK.Candidates),
		lk.WithWorkers(c.LK.Workers),
		lk.WithTimeLimit(c.LK.TimeLimit),
	}
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", errConfig, s)
	}

	return l, nil
}

// newLogger builds a text or JSON slog logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: l}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
