package pronto

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of window creation settings.
//
//	title = "sketch"
//	width = 800
//	height = 600
//	backend = "devdraw"
//	background = "#202030"
//	vsync = true
//
// Fields left out of the file keep their defaults.
type Config struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Backend    string `toml:"backend"`
	Background *Color `toml:"background"`
	VSync      *bool  `toml:"vsync"`
	KeyRepeat  bool   `toml:"key_repeat"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:  "pronto",
		Width:  800,
		Height: 600,
	}
}

// LoadConfig reads a TOML config from path on top of DefaultConfig.
// Unknown keys are rejected so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pronto: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML config on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("pronto: parse config: %w", err)
	}
	if !cfg.Fullscreen && (cfg.Width <= 0 || cfg.Height <= 0) {
		return Config{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// Options converts the config into window options. Size, title and
// fullscreen are not options; pass them to New or NewFullscreen, or use
// Open.
func (c Config) Options() []Option {
	var opts []Option
	if c.Backend != "" {
		opts = append(opts, WithBackend(c.Backend))
	}
	if c.Background != nil {
		opts = append(opts, WithBackground(*c.Background))
	}
	if c.VSync != nil {
		opts = append(opts, WithVSync(*c.VSync))
	}
	if c.KeyRepeat {
		opts = append(opts, WithKeyRepeat(true))
	}
	return opts
}

// Open creates the window described by c. Extra options are applied after
// the config's own, so they win.
func (c Config) Open(extra ...Option) (*Window, error) {
	opts := append(c.Options(), extra...)
	if c.Fullscreen {
		return NewFullscreen(opts...)
	}
	return New(c.Width, c.Height, c.Title, opts...)
}
