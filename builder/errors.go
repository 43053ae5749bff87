package builder

import "errors"

// Sentinel errors for builder package.
var (
	// ErrEmptyFontData is returned when Build is called without font data.
	ErrEmptyFontData = errors.New("builder: empty font data")

	// ErrAtlasTooLarge is returned when the glyph grid needs a texture wider
	// than MaxTextureSize.
	ErrAtlasTooLarge = errors.New("builder: atlas exceeds maximum texture size")

	// ErrGridFull is returned when more glyphs are placed than the grid holds.
	ErrGridFull = errors.New("builder: glyph grid is full")
)

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "builder: invalid config." + e.Field + ": " + e.Reason
}
