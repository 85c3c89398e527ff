// Package config manages application configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/roboco-io/spanstyle/internal/style"
	"github.com/roboco-io/spanstyle/internal/translate"
)

// Config represents the application configuration.
type Config struct {
	Link           LinkConfig   `yaml:"link"`
	BulletFontSize float32      `yaml:"bullet_font_size"`
	BaseFontSize   float32      `yaml:"base_font_size"` // ambient size used to resolve relative sizes in text output
	Offsets        string       `yaml:"offsets"`        // strict, clamp
	Output         OutputConfig `yaml:"output"`
}

// LinkConfig describes the visual style applied to hyperlinks.
type LinkConfig struct {
	Color     string `yaml:"color"`               // #rrggbb, #aarrggbb or a color name; empty for no color (needs underline)
	Underline bool   `yaml:"underline,omitempty"` // also underline links
}

// OutputConfig contains output formatting options.
type OutputConfig struct {
	Format string `yaml:"format"` // json, yaml, text
	Pretty bool   `yaml:"pretty"`
}

// Supported output formats.
var OutputFormats = []string{"json", "yaml", "text"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Link: LinkConfig{
			Color: "blue",
		},
		BulletFontSize: translate.DefaultBulletFontSize,
		BaseFontSize:   16,
		Offsets:        string(translate.OffsetsStrict),
		Output: OutputConfig{
			Format: "json",
			Pretty: true,
		},
	}
}

// LinkStyle builds the link style described by the configuration.
func (c *Config) LinkStyle() (style.Style, error) {
	var s style.Style
	if c.Link.Color != "" {
		col, err := style.ParseColor(c.Link.Color)
		if err != nil {
			return style.Style{}, fmt.Errorf("invalid link.color: %w", err)
		}
		s = s.WithColor(col)
	}
	if c.Link.Underline {
		s = s.WithTextDecoration(style.TextDecorationUnderline)
	}
	if s.IsEmpty() {
		return style.Style{}, fmt.Errorf("link style is empty: set link.color or link.underline")
	}
	return s, nil
}

// ToOptions converts the configuration into translation options.
func (c *Config) ToOptions() (translate.Options, error) {
	linkStyle, err := c.LinkStyle()
	if err != nil {
		return translate.Options{}, err
	}

	offsets, err := translate.ParseOffsetPolicy(c.Offsets)
	if err != nil {
		return translate.Options{}, fmt.Errorf("invalid offsets: %w", err)
	}

	if c.BulletFontSize < 0 {
		return translate.Options{}, fmt.Errorf("invalid bullet_font_size: %g", c.BulletFontSize)
	}

	return translate.Options{
		LinkStyle:      linkStyle,
		BulletFontSize: c.BulletFontSize,
		Offsets:        offsets,
	}, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := c.ToOptions(); err != nil {
		return err
	}
	if c.BaseFontSize <= 0 {
		return fmt.Errorf("invalid base_font_size: %g", c.BaseFontSize)
	}
	if !IsOutputFormat(c.Output.Format) {
		return fmt.Errorf("invalid output.format: %s (supported: %s)", c.Output.Format, strings.Join(OutputFormats, ", "))
	}
	return nil
}

// IsOutputFormat reports whether format is a supported output format.
func IsOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// ApplyEnv overrides configuration values from SPANSTYLE_* environment
// variables.
func (c *Config) ApplyEnv() {
	c.Offsets = GetEnvOrDefault("SPANSTYLE_OFFSETS", c.Offsets)
	c.Output.Format = GetEnvOrDefault("SPANSTYLE_FORMAT", c.Output.Format)
	c.Link.Color = GetEnvOrDefault("SPANSTYLE_LINK_COLOR", c.Link.Color)
}
