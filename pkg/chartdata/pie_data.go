package chartdata

// PieData is chart data holding a single pie data set.
type PieData struct {
	*ChartData
}

// NewPieData creates pie data around set, which may be nil.
func NewPieData(set *DataSet) *PieData {
	return &PieData{ChartData: NewChartData(set)}
}

// DataSet returns the pie data set, or nil.
func (p *PieData) DataSet() *DataSet {
	return p.DataSetByIndex(0)
}

// SetDataSet replaces the pie data set.
func (p *PieData) SetDataSet(set *DataSet) {
	p.SetDataSets([]*DataSet{set})
}

// AddDataSet replaces the pie data set since a pie shows one set only.
func (p *PieData) AddDataSet(set *DataSet) bool {
	if set == nil {
		return false
	}
	p.SetDataSet(set)
	return true
}

// DataSetByIndex only accepts index 0.
func (p *PieData) DataSetByIndex(i int) *DataSet {
	if i != 0 {
		return nil
	}
	return p.ChartData.DataSetByIndex(0)
}

// DataSetByLabel matches label against the pie data set only.
func (p *PieData) DataSetByLabel(label string, ignoreCase bool) *DataSet {
	if p.IndexOfDataSetByLabel(label, ignoreCase) != 0 {
		return nil
	}
	return p.DataSet()
}

// AddEntry adds e to the pie data set. Any setIndex other than 0 is rejected.
func (p *PieData) AddEntry(e *Entry, setIndex int) bool {
	s := p.DataSetByIndex(setIndex)
	if s == nil {
		return false
	}
	return s.AddEntry(e)
}

// RemoveEntry removes e from the pie data set. Any setIndex other than 0 is rejected.
func (p *PieData) RemoveEntry(e *Entry, setIndex int) bool {
	s := p.DataSetByIndex(setIndex)
	if s == nil {
		return false
	}
	return s.RemoveEntry(e)
}

// RemoveEntryByXValue removes the slice closest to x. Any setIndex other than 0 is rejected.
func (p *PieData) RemoveEntryByXValue(x float64, setIndex int) bool {
	s := p.DataSetByIndex(setIndex)
	if s == nil {
		return false
	}
	return s.RemoveEntryByXValue(x)
}

// EntryForHighlight resolves h by slice index, which pie highlights carry in
// X. h.DataSetIndex is ignored since there is only one set.
func (p *PieData) EntryForHighlight(h Highlight) *Entry {
	s := p.DataSet()
	if s == nil {
		return nil
	}
	return s.EntryForIndex(int(h.X))
}

// YValueSum is the total of all slice values.
func (p *PieData) YValueSum() float64 {
	s := p.DataSet()
	if s == nil {
		return 0
	}
	var sum float64
	for _, e := range s.All() {
		sum += e.y
	}
	return sum
}
