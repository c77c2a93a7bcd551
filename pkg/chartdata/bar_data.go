package chartdata

// DefaultBarWidth is the bar width in x units used by NewBarData.
const DefaultBarWidth = 0.85

// BarData is chart data holding bar data sets.
type BarData struct {
	*ChartData
	// BarWidth is the width of one bar in x units.
	BarWidth float64
}

// NewBarData creates bar chart data with the default bar width.
func NewBarData(sets ...*DataSet) *BarData {
	return &BarData{ChartData: NewChartData(sets...), BarWidth: DefaultBarWidth}
}

// GroupWidth is the x span one group of bars occupies.
func (b *BarData) GroupWidth(groupSpace, barSpace float64) float64 {
	return float64(b.DataSetCount())*(b.BarWidth+barSpace) + groupSpace
}

// GroupBars places the i-th entries of every data set side by side,
// starting at fromX. Previous x values are overwritten. Each group is
// GroupWidth(groupSpace, barSpace) wide.
func (b *BarData) GroupBars(fromX, groupSpace, barSpace float64) error {
	if b.DataSetCount() < 2 {
		return ErrTooFewDataSets
	}

	groupSpaceHalf := groupSpace / 2
	barSpaceHalf := barSpace / 2
	barWidthHalf := b.BarWidth / 2
	interval := b.GroupWidth(groupSpace, barSpace)

	groups := b.MaxEntryCountSet().EntryCount()
	for i := 0; i < groups; i++ {
		start := fromX
		fromX += groupSpaceHalf

		for _, s := range b.dataSets {
			fromX += barSpaceHalf + barWidthHalf
			if i < s.EntryCount() {
				s.setX(i, fromX)
			}
			fromX += barWidthHalf + barSpaceHalf
		}

		fromX += groupSpaceHalf
		// correct rounding errors
		if diff := interval - (fromX - start); diff != 0 {
			fromX += diff
		}
	}
	return nil
}
