package chartdata

import (
	"fmt"
	"strings"
)

// Kind identifies the chart family a data set belongs to.
// It selects the extrema rules and the entry capabilities a data set expects.
type Kind string

const (
	// KindLine is a line series.
	KindLine Kind = "line"
	// KindBar is a bar series. Entries may be stacked.
	KindBar Kind = "bar"
	// KindScatter is a scatter series.
	KindScatter Kind = "scatter"
	// KindCandle is an OHLC series.
	KindCandle Kind = "candle"
	// KindBubble is a bubble series where entries carry a size.
	KindBubble Kind = "bubble"
	// KindPie is a pie series. Entries are positional and only y is meaningful.
	KindPie Kind = "pie"
	// KindRadar is a radar series. Entries are positional.
	KindRadar Kind = "radar"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{KindLine, KindBar, KindScatter, KindCandle, KindBubble, KindPie, KindRadar}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// positional reports whether entries of this kind are addressed by index
// instead of by a meaningful x value.
func (k Kind) positional() bool {
	return k == KindPie || k == KindRadar
}

// AxisDependency tells which y axis a data set is plotted against.
type AxisDependency int

const (
	AxisLeft AxisDependency = iota
	AxisRight
)

func (a AxisDependency) String() string {
	if a == AxisRight {
		return "right"
	}
	return "left"
}

// ParseAxisDependency accepts "left" or "right". An empty string means left.
func ParseAxisDependency(s string) (AxisDependency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AxisLeft, nil
	case "right":
		return AxisRight, nil
	}
	return AxisLeft, fmt.Errorf("unknown axis dependency %q", s)
}

// Rounding decides which entry an x lookup resolves to when no entry has exactly that x.
type Rounding int

const (
	// RoundUp picks the entry with the next larger x.
	RoundUp Rounding = iota
	// RoundDown picks the entry with the next smaller x.
	RoundDown
	// RoundClosest picks the nearer neighbour. Equidistant neighbours resolve to the larger x.
	RoundClosest
)

func (r Rounding) String() string {
	switch r {
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	default:
		return "closest"
	}
}

// ParseRounding accepts "up", "down" or "closest".
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return RoundUp, nil
	case "down":
		return RoundDown, nil
	case "", "closest":
		return RoundClosest, nil
	}
	return RoundClosest, fmt.Errorf("unknown rounding %q", s)
}
