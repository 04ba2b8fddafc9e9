// Package config loads diagnostics configuration from TOML files and
// turns channel tables into constructed channels.
package config

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"eddy/msg"
)

// ChannelConfig mirrors one [channels.*] table.
type ChannelConfig struct {
	Title     string `toml:"title"`
	Severity  string `toml:"severity"`
	MaxErrors int    `toml:"max-errors"`
}

// Config is the on-disk diagnostics configuration.
type Config struct {
	Level    int                      `toml:"level"`
	Channels map[string]ChannelConfig `toml:"channels"`
}

// Load parses and validates the configuration at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field ranges without constructing anything.
func (c *Config) Validate() error {
	if c.Level < 0 {
		return fmt.Errorf("level must be >= 0, got %d", c.Level)
	}
	for _, name := range c.channelNames() {
		ch := c.Channels[name]
		if ch.Title == "" {
			return fmt.Errorf("channel %q: title is required", name)
		}
		if _, err := msg.ParseSeverity(ch.Severity); err != nil {
			return fmt.Errorf("channel %q: %w", name, err)
		}
		if ch.MaxErrors < 0 {
			return fmt.Errorf("channel %q: max-errors must be >= 0, got %d", name, ch.MaxErrors)
		}
	}
	return nil
}

// Record converts the table into a channel constructor record.
func (cc ChannelConfig) Record() msg.Record {
	return msg.Record{
		"title":     cc.Title,
		"severity":  cc.Severity,
		"maxErrors": cc.MaxErrors,
	}
}

// Build constructs every configured channel, keyed by table name.
func (c *Config) Build() (map[string]*msg.Channel, error) {
	out := make(map[string]*msg.Channel, len(c.Channels))
	for _, name := range c.channelNames() {
		ch, err := msg.FromRecord(c.Channels[name].Record())
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", name, err)
		}
		out[name] = ch
	}
	return out, nil
}

// Apply retunes the process-wide registry: the debug level, plus the
// error threshold of any table whose name matches a predefined channel.
func (c *Config) Apply() {
	msg.Level = c.Level
	registry := msg.Channels()
	for name, cc := range c.Channels {
		if ch, ok := registry[name]; ok {
			ch.SetMaxErrors(cc.MaxErrors)
		}
	}
}

// Deterministic iteration order for validation and construction errors.
func (c *Config) channelNames() []string {
	names := make([]string, 0, len(c.Channels))
	for name := range c.Channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
