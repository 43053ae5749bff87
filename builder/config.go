package builder

// MaxTextureSize is the largest atlas side Build produces.
const MaxTextureSize = 8192

// Config holds atlas baking parameters.
type Config struct {
	// Size is the font size in pixels per em.
	// Default: 32
	Size int

	// Runes lists the code points to bake. Duplicates are ignored and the
	// space glyph is always included.
	// Default: printable ASCII, U+0020 to U+007E.
	Runes []rune

	// Margin is the empty border, in pixels, around every cell and along the
	// atlas edges.
	// Default: 1
	Margin int

	// Columns is the number of cells per grid row.
	// Default: 10
	Columns int

	// SkipMissing drops code points that the font's cmap does not map, so
	// they fall back to the space glyph at layout time instead of being
	// drawn as the font's .notdef box.
	// Default: false
	SkipMissing bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:    32,
		Runes:   ASCII(),
		Margin:  1,
		Columns: 10,
	}
}

// ASCII returns the printable ASCII code points, U+0020 to U+007E.
func ASCII() []rune {
	runes := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < 4 {
		return &ConfigError{Field: "Size", Reason: "must be at least 4"}
	}
	if c.Size > 512 {
		return &ConfigError{Field: "Size", Reason: "must be at most 512"}
	}
	if c.Margin < 0 {
		return &ConfigError{Field: "Margin", Reason: "must be non-negative"}
	}
	if c.Columns < 1 {
		return &ConfigError{Field: "Columns", Reason: "must be at least 1"}
	}
	for _, r := range c.Runes {
		if r < 0 || r > 0x10FFFF {
			return &ConfigError{Field: "Runes", Reason: "contains an invalid code point"}
		}
	}
	return nil
}
