// Package filter reduces the number of entries of a line-like data set
// while keeping its visual shape.
package filter

import (
	"fmt"
	"math"

	"github.com/ukaji3/chartdata-go/pkg/chartdata"
)

// Type selects the reduction algorithm.
type Type int

const (
	// TypeNone keeps every entry.
	TypeNone Type = iota
	// TypeDouglasPeucker drops entries whose direction change stays below the tolerance.
	TypeDouglasPeucker
)

func (t Type) String() string {
	if t == TypeDouglasPeucker {
		return "douglas_peucker"
	}
	return "none"
}

// ParseType accepts "none" or "douglas_peucker".
func ParseType(s string) (Type, error) {
	switch s {
	case "", "none":
		return TypeNone, nil
	case "douglas_peucker", "rdp":
		return TypeDouglasPeucker, nil
	}
	return TypeNone, fmt.Errorf("unknown approximator type %q", s)
}

// Approximator reduces entries with the Ramer-Douglas-Peucker algorithm,
// measuring the deviation of a point as the angle between the chord and the
// line to that point.
type Approximator struct {
	Type Type
	// Tolerance is the angle in degrees a point must deviate by to be kept.
	// Zero or less disables filtering.
	Tolerance float64
	// DeltaRatio scales x before angles are measured.
	DeltaRatio float64
	// ScaleRatio scales y before angles are measured.
	ScaleRatio float64
}

// NewApproximator returns a Douglas-Peucker approximator with unit ratios.
func NewApproximator(tolerance float64) Approximator {
	return Approximator{
		Type:       TypeDouglasPeucker,
		Tolerance:  tolerance,
		DeltaRatio: 1,
		ScaleRatio: 1,
	}
}

// Filter returns the entries to keep, in order. The first and the last entry
// are always kept. The input is returned unchanged when filtering is disabled
// or there are fewer than three entries.
func (a Approximator) Filter(entries []*chartdata.Entry) []*chartdata.Entry {
	if a.Type == TypeNone || a.Tolerance <= 0 || len(entries) < 3 {
		return entries
	}

	keep := make([]bool, len(entries))
	keep[0] = true
	keep[len(entries)-1] = true
	a.reduce(entries, 0, len(entries)-1, keep)

	out := make([]*chartdata.Entry, 0, len(entries))
	for i, e := range entries {
		if keep[i] {
			out = append(out, e)
		}
	}
	return out
}

func (a Approximator) reduce(entries []*chartdata.Entry, start, end int, keep []bool) {
	if end <= start+1 {
		return
	}

	first, last := entries[start], entries[end]
	chord := a.angle(first, last)

	maxIdx, maxDist := 0, 0.0
	for i := start + 1; i < end; i++ {
		if d := math.Abs(chord - a.angle(first, entries[i])); d > maxDist {
			maxIdx, maxDist = i, d
		}
	}

	if maxDist > a.Tolerance {
		keep[maxIdx] = true
		a.reduce(entries, start, maxIdx, keep)
		a.reduce(entries, maxIdx, end, keep)
	}
}

// angle is the direction from p1 to p2 in degrees after applying the ratios.
func (a Approximator) angle(p1, p2 *chartdata.Entry) float64 {
	dx := (p2.X() - p1.X()) * a.DeltaRatio
	dy := (p2.Y() - p1.Y()) * a.ScaleRatio
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// ReduceDataSet returns a copy of set holding copies of the entries a keeps.
func ReduceDataSet(set *chartdata.DataSet, a Approximator) (*chartdata.DataSet, error) {
	out, err := set.Copy()
	if err != nil {
		return nil, err
	}
	out.SetEntries(a.Filter(out.Entries()))
	return out, nil
}
