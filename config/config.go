// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for the quad app.
// All fields have working defaults; a TOML or YAML file can optionally
// override them.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/quad/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvFile is the environment variable that names an optional
// config file. When it is unset, [Load] returns the defaults.
const EnvFile = "QUAD_CONFIG"

// PowerPreferences are the valid values of [Config.PowerPreference].
var PowerPreferences = []string{"balanced", "low-power", "high-performance"}

// PresentModes are the valid values of [Config.PresentMode].
var PresentModes = []string{"fifo", "mailbox", "immediate"}

// Config is the main config struct that contains all of the
// configuration options for the quad app.
type Config struct {

	// the window title
	Title string `toml:"title" yaml:"title"`

	// initial window width in screen units
	Width int `toml:"width" yaml:"width"`

	// initial window height in screen units
	Height int `toml:"height" yaml:"height"`

	// adapter power preference hint: balanced, low-power or high-performance
	PowerPreference string `toml:"power_preference" yaml:"power_preference"`

	// presentation mode: fifo (vsync), mailbox or immediate.
	// Modes other than fifo fall back to fifo if the surface does not support them.
	PresentMode string `toml:"present_mode" yaml:"present_mode"`

	// maximum number of images in flight in the presentation chain
	MaxFrameLatency uint32 `toml:"max_frame_latency" yaml:"max_frame_latency"`

	// whether to request another redraw after every frame
	Continuous bool `toml:"continuous" yaml:"continuous"`

	// number of consecutive outdated image acquisitions, each followed
	// by a reconfiguration, after which the surface is treated as
	// permanently lost; 0 retries forever
	MaxOutdated int `toml:"max_outdated" yaml:"max_outdated"`

	// log level: debug, info, warn or error
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Defaults sets the default values for all fields.
func (c *Config) Defaults() {
	c.Title = "quad"
	c.Width = 800
	c.Height = 600
	c.PowerPreference = "balanced"
	c.PresentMode = "fifo"
	c.MaxFrameLatency = 2
	c.Continuous = true
	c.MaxOutdated = 3
	c.LogLevel = "info"
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Validate returns an error if any field has an invalid value.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if !slices.Contains(PowerPreferences, c.PowerPreference) {
		return fmt.Errorf("config: invalid power_preference %q (want one of %v)", c.PowerPreference, PowerPreferences)
	}
	if !slices.Contains(PresentModes, c.PresentMode) {
		return fmt.Errorf("config: invalid present_mode %q (want one of %v)", c.PresentMode, PresentModes)
	}
	if c.MaxFrameLatency == 0 {
		return fmt.Errorf("config: max_frame_latency must be at least 1")
	}
	if c.MaxOutdated < 0 {
		return fmt.Errorf("config: max_outdated must not be negative")
	}
	if c.LogLevel != "" {
		var lv slog.Level
		if err := lv.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return fmt.Errorf("config: invalid log_level %q", c.LogLevel)
		}
	}
	return nil
}

// Read decodes TOML data over the defaults and validates the result.
// Unknown keys are an error.
func Read(data []byte) (*Config, error) {
	c := New()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadYAML decodes YAML data over the defaults and validates the result.
// Unknown keys are an error.
func ReadYAML(data []byte) (*Config, error) {
	c := New()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// isYAML returns true if the file name has a YAML extension.
// All other files are read as TOML.
func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// Open reads the config from the given file, which is YAML if it has
// a .yaml or .yml extension and TOML otherwise.
func Open(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	read := Read
	if isYAML(filename) {
		read = ReadYAML
	}
	c, err := read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Load returns the config from the file named by [EnvFile],
// or the defaults if it is not set.
func Load() (*Config, error) {
	fn := os.Getenv(EnvFile)
	if fn == "" {
		return New(), nil
	}
	return Open(fn)
}

// Save writes the config to the given file, in YAML if it has
// a .yaml or .yml extension and TOML otherwise.
func (c *Config) Save(filename string) error {
	marshal := toml.Marshal
	if isYAML(filename) {
		marshal = yaml.Marshal
	}
	data, err := marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
