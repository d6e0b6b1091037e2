// Package config is the polycheck configuration, loaded from a TOML file.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	logging "github.com/op/go-logging"

	"polycheck/geom"
)

var format = logging.MustStringFormatter(
	"%{color}%{time:15:04:05.000} %{module} > %{level:.4s} %{message}%{color:reset}",
)

// Config holds every tunable of a run. Zero values are filled in by Load and
// Default.
type Config struct {
	Geometry struct {
		// Epsilon is the tolerance for the geometric predicates.
		Epsilon float64 `toml:"epsilon"`
	} `toml:"geometry"`

	Logging []Backend `toml:"logging"`
}

// Backend describes one logging destination.
type Backend struct {
	Output string `toml:"output"` // "stdout", "stderr", or a file path
	Level  string `toml:"level"`
}

// Default returns the configuration used when no file is given: the default
// epsilon and error-level logging on stderr.
func Default() *Config {
	c := &Config{}
	c.Geometry.Epsilon = geom.DefaultEpsilon
	c.Logging = []Backend{{Output: "stderr", Level: "error"}}
	return c
}

// Load decodes a TOML configuration, filling defaults for anything the file
// leaves unset.
func (c *Config) Load(r io.Reader) error {
	if _, err := toml.DecodeReader(r, c); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if c.Geometry.Epsilon <= 0 {
		c.Geometry.Epsilon = geom.DefaultEpsilon
	}
	if len(c.Logging) == 0 {
		c.Logging = Default().Logging
	}
	return nil
}

// SetupLogging installs the configured logging backends process-wide.
func (c *Config) SetupLogging() error {
	var backends []logging.Backend
	for _, b := range c.Logging {
		var output io.Writer
		switch b.Output {
		case "stdout":
			output = os.Stdout
		case "stderr", "":
			output = os.Stderr
		default:
			f, err := os.OpenFile(os.ExpandEnv(b.Output), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0660)
			if err != nil {
				return fmt.Errorf("open log output: %w", err)
			}
			output = f
		}

		level, err := logging.LogLevel(b.Level)
		if err != nil {
			return fmt.Errorf("log level %q: %w", b.Level, err)
		}

		backend := logging.NewLogBackend(output, "", 0)
		leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
		leveled.SetLevel(level, "")
		backends = append(backends, leveled)
	}
	logging.SetBackend(backends...)
	return nil
}
