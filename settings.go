package boxdraw

// Settings configures cell sizing and the optimizer's aggressiveness.
//
// Based on the Settings carrier the original tool exposes: a fixed set of
// named presets plus a WithSize builder, rather than a general options
// struct with defaulting logic scattered across call sites.
type Settings struct {
	// TextWidth is the pixel width of one display column. Default 8.0.
	TextWidth float64

	// TextHeight is the pixel height of one row. Default 16.0.
	TextHeight float64

	// Optimize enables line and text fusion in the optimizer.
	Optimize bool

	// CompactPath additionally fuses chains of connected lines/arcs into a
	// single SVG path. Only meaningful when Optimize is true.
	CompactPath bool
}

// DefaultSettings returns the standard 8x16 cell size with both
// optimizations enabled.
func DefaultSettings() Settings {
	return Settings{TextWidth: 8.0, TextHeight: 16.0, Optimize: true, CompactPath: true}
}

// NoOptimizationSettings disables both line/text fusion and chain fusion:
// every recognized primitive is emitted independently.
func NoOptimizationSettings() Settings {
	s := DefaultSettings()
	s.Optimize = false
	s.CompactPath = false
	return s
}

// SeparateLinesSettings enables line/text fusion but emits fused chains as
// individual lines and arcs rather than single paths.
func SeparateLinesSettings() Settings {
	s := DefaultSettings()
	s.Optimize = true
	s.CompactPath = false
	return s
}

// CompactSettings enables both line/text fusion and chain fusion. Identical
// to DefaultSettings; named separately so callers can be explicit about
// which preset they mean.
func CompactSettings() Settings {
	s := DefaultSettings()
	s.Optimize = true
	s.CompactPath = true
	return s
}

// WithSize returns a copy of s with TextWidth and TextHeight overridden.
func (s Settings) WithSize(textWidth, textHeight float64) Settings {
	s.TextWidth = textWidth
	s.TextHeight = textHeight
	return s
}
