// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// FormatTable renders records as a bordered table.
	FormatTable OutputFormat = "table"
	// FormatTree renders module records as an indented hierarchy.
	FormatTree OutputFormat = "tree"
	// FormatJSON renders records as indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatSummary renders test cases grouped per module.
	FormatSummary OutputFormat = "summary"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

type (
	// OutputFormat selects how record sequences are rendered.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is
	// not recognized. It wraps ErrInvalidOutputFormat for errors.Is().
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is().
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// UIConfig holds terminal presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// OutputConfig holds report rendering settings.
	OutputConfig struct {
		Format OutputFormat `mapstructure:"format"`
	}

	// Config is the chipdoc configuration.
	Config struct {
		// DefaultSchema is the schema file used when --schema is omitted.
		DefaultSchema string       `mapstructure:"default_schema"`
		Output        OutputConfig `mapstructure:"output"`
		UI            UIConfig     `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: table, tree, json, summary)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid reports whether the format is one of the known values.
func (f OutputFormat) IsValid() (bool, error) {
	switch f {
	case FormatTable, FormatTree, FormatJSON, FormatSummary:
		return true, nil
	default:
		return false, &InvalidOutputFormatError{Value: f}
	}
}

// IsValid reports whether the scheme is one of the known values.
func (s ColorScheme) IsValid() (bool, error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, &InvalidColorSchemeError{Value: s}
	}
}

// Validate checks every typed field.
func (c *Config) Validate() error {
	if c.Output.Format != "" {
		if _, err := c.Output.Format.IsValid(); err != nil {
			return err
		}
	}
	if c.UI.ColorScheme != "" {
		if _, err := c.UI.ColorScheme.IsValid(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatTable,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
