package main

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownDemo is returned when a config file or the command line names a
// demo that does not exist.
var ErrUnknownDemo = errors.New("unknown demo")

// Config selects which demos run and in what order.
type Config struct {
	// Demos lists demo names. Empty means all of them, in registration order.
	Demos []string `yaml:"demos"`
}

// loadConfig reads a YAML config file. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg.withDefaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	// Reject unknown keys; a misspelled "demos" must not fall back to all demos.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if len(out.Demos) == 0 {
		out.Demos = demoNames()
	}
	return out
}

func (c *Config) validate() error {
	for _, name := range c.Demos {
		if _, ok := findDemo(name); !ok {
			return errors.Wrapf(ErrUnknownDemo, "%q", name)
		}
	}
	return nil
}
