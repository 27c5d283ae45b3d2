package figscene

import "fmt"

// LineStyle selects the stroke pattern of a drawable.
type LineStyle uint8

const (
	Solid LineStyle = iota
	Dashed
)

// The dash/gap pair shared by every dashed stroke. The gap also sizes
// the solid fill segment behind arrow tips.
const (
	dashLength = 8.0
	dashGap    = 2.0
)

func (ls LineStyle) String() string {
	switch ls {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	}
	return fmt.Sprintf("LineStyle(%d)", uint8(ls))
}

// ParseLineStyle reads the textual form used in scene descriptions.
func ParseLineStyle(s string) (LineStyle, error) {
	switch s {
	case "solid":
		return Solid, nil
	case "dashed":
		return Dashed, nil
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf("line style must be 'solid' or 'dashed', got %q", s)}
}

// Style holds the visual attributes shared by all drawables.
// It is a plain value: copy it freely, compare it with ==.
type Style struct {
	Color     string
	Thickness float64
	Line      LineStyle
}

// Theme presets for common roles. ThemeDefault is the base every named
// override is applied on top of.
var (
	ThemeDefault   = Style{Color: "black", Thickness: 2, Line: Solid}
	ThemeAxes      = Style{Color: "gray", Thickness: 1, Line: Dashed}
	ThemeHighlight = Style{Color: "red", Thickness: 2.5, Line: Solid}
	ThemeSubtle    = Style{Color: "lightgray", Thickness: 1, Line: Dashed}
)

// DashArray derives the stroke-dasharray value for the style. The
// mapping is stateless: solid is always "none", dashed always the fixed
// dash/gap pair.
func (s Style) DashArray() string {
	if s.Line == Dashed {
		return fmt.Sprintf("%g,%g", dashLength, dashGap)
	}
	return "none"
}

// Option configures a drawable at construction. The style is either
// fully supplied with WithStyle or assembled from named overrides over
// ThemeDefault; combining both forms is a configuration error.
type Option func(*styleConfig)

type styleConfig struct {
	full      *Style
	overrides Style
	set       uint8
	arrowSize *float64
}

const (
	setColor = 1 << iota
	setThickness
	setLine
)

// WithStyle supplies the complete style.
func WithStyle(s Style) Option {
	return func(c *styleConfig) { c.full = &s }
}

// WithColor overrides the stroke/fill color.
func WithColor(color string) Option {
	return func(c *styleConfig) {
		c.overrides.Color = color
		c.set |= setColor
	}
}

// WithThickness overrides the stroke thickness.
func WithThickness(t float64) Option {
	return func(c *styleConfig) {
		c.overrides.Thickness = t
		c.set |= setThickness
	}
}

// WithLine overrides the line style.
func WithLine(ls LineStyle) Option {
	return func(c *styleConfig) {
		c.overrides.Line = ls
		c.set |= setLine
	}
}

// WithArrowSize overrides the arrow tip size. Only vectors honor it.
func WithArrowSize(size float64) Option {
	return func(c *styleConfig) { c.arrowSize = &size }
}

func resolveStyle(base Style, opts []Option) (Style, styleConfig, error) {
	var c styleConfig
	for _, o := range opts {
		o(&c)
	}
	if c.full != nil && c.set != 0 {
		return Style{}, c, &ConfigurationError{Reason: "cannot combine a full style with named overrides"}
	}
	st := base
	if c.full != nil {
		st = *c.full
	}
	if c.set&setColor != 0 {
		st.Color = c.overrides.Color
	}
	if c.set&setThickness != 0 {
		st.Thickness = c.overrides.Thickness
	}
	if c.set&setLine != 0 {
		st.Line = c.overrides.Line
	}
	if st.Thickness <= 0 {
		return Style{}, c, &ConfigurationError{Reason: fmt.Sprintf("thickness must be positive, got %g", st.Thickness)}
	}
	return st, c, nil
}
