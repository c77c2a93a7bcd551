package chartdata

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// LineMode selects how a line series joins its points.
type LineMode string

const (
	LineLinear           LineMode = "linear"
	LineStepped          LineMode = "stepped"
	LineCubicBezier      LineMode = "cubic_bezier"
	LineHorizontalBezier LineMode = "horizontal_bezier"
)

// ValuePosition places pie value labels.
type ValuePosition string

const (
	InsideSlice  ValuePosition = "inside_slice"
	OutsideSlice ValuePosition = "outside_slice"
)

const (
	maxCandleBarSpace = 0.45
	maxPieSliceSpace  = 20.0
)

// Style carries the presentation attributes of a data set. It holds no
// behaviour; a renderer reads it back.
type Style struct {
	// Colors are used per entry, wrapping around.
	Colors []color.RGBA
	// ValueColors colour the value labels, wrapping around.
	ValueColors []color.RGBA
	// ValueFontSize is the label size in points.
	ValueFontSize float64
	// DrawValues enables value labels.
	DrawValues bool
	// DrawIcons enables entry icons.
	DrawIcons bool
	// Visible hides the whole data set when false.
	Visible bool

	HighlightEnabled   bool
	HighlightColor     color.RGBA
	HighlightLineWidth float64

	LineWidth    float64
	LineMode     LineMode
	DrawCircles  bool
	CircleRadius float64
	DrawFilled   bool
	FillAlpha    float64

	BarBorderWidth float64
	BarShadowColor color.RGBA
	HighlightAlpha float64
	// StackLabels name the segments of stacked bar entries.
	StackLabels []string

	// BarSpace is the gap left and right of a candle body, clamped to [0, 0.45].
	BarSpace         float64
	ShadowWidth      float64
	ShowCandleBar    bool
	IncreasingColor  color.RGBA
	DecreasingColor  color.RGBA
	IncreasingFilled bool
	DecreasingFilled bool

	// SliceSpace is the gap between pie slices in points, clamped to [0, 20].
	SliceSpace     float64
	SelectionShift float64
	XValuePosition ValuePosition
	YValuePosition ValuePosition

	NormalizeSize bool
}

// DefaultStyle returns the presentation defaults for a data set of the given kind.
func DefaultStyle(kind Kind) Style {
	s := Style{
		Colors:             []color.RGBA{{R: 140, G: 234, B: 255, A: 255}},
		ValueColors:        []color.RGBA{{A: 255}},
		ValueFontSize:      7,
		DrawValues:         true,
		Visible:            true,
		HighlightEnabled:   true,
		HighlightColor:     color.RGBA{R: 255, G: 187, B: 115, A: 255},
		HighlightLineWidth: 0.5,
		LineWidth:          1,
		LineMode:           LineLinear,
		DrawCircles:        true,
		CircleRadius:       8,
		FillAlpha:          0.33,
		BarShadowColor:     color.RGBA{R: 215, G: 215, B: 215, A: 255},
		HighlightAlpha:     120.0 / 255.0,
		BarSpace:           0.1,
		ShadowWidth:        1.5,
		ShowCandleBar:      true,
		IncreasingColor:    color.RGBA{G: 200, A: 255},
		DecreasingColor:    color.RGBA{R: 200, A: 255},
		DecreasingFilled:   true,
		SelectionShift:     18,
		XValuePosition:     InsideSlice,
		YValuePosition:     InsideSlice,
		NormalizeSize:      true,
	}
	if kind == KindBar {
		s.StackLabels = []string{}
	}
	return s
}

// normalize clamps the bounded attributes.
func (s *Style) normalize() {
	s.BarSpace = clamp(s.BarSpace, 0, maxCandleBarSpace)
	s.SliceSpace = clamp(s.SliceSpace, 0, maxPieSliceSpace)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// ColorAt returns the colour for entry index i, wrapping around the palette.
func (s *Style) ColorAt(i int) color.RGBA {
	if len(s.Colors) == 0 {
		return color.RGBA{}
	}
	return s.Colors[((i%len(s.Colors))+len(s.Colors))%len(s.Colors)]
}

// ValueColorAt returns the label colour for entry index i, wrapping around.
func (s *Style) ValueColorAt(i int) color.RGBA {
	if len(s.ValueColors) == 0 {
		return color.RGBA{}
	}
	return s.ValueColors[((i%len(s.ValueColors))+len(s.ValueColors))%len(s.ValueColors)]
}

// FormatColor renders c as #rrggbb, or #rrggbbaa when it is not opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
