package types

import "time"

// ColumnKind declares how a table column is treated when the table is
// re-indexed onto new timestamps: numeric columns are linearly interpolated,
// categorical columns are forward-filled. The kind is declared by the reader
// that produced the column, never inferred from values at runtime.
type ColumnKind int

const (
	Numeric ColumnKind = iota
	Categorical
)

// Column is one named, typed value column of a Table.
type Column struct {
	Name string
	Kind ColumnKind
}

// Row is one time-indexed record. A column absent from both maps is a
// missing value; missing numeric values surface as NaN when read.
type Row struct {
	Timestamp   time.Time
	Numeric     map[string]float64
	Categorical map[string]string
}

// Table is an ordered sequence of time-indexed rows with a declared column
// set. Timestamps are canonical naive instants: source timezone offsets are
// stripped at parse time and the wall clock is materialized in time.UTC.
// Rows may be irregularly spaced and may contain duplicate timestamps until
// sorted and deduplicated.
type Table struct {
	Columns []Column
	Rows    []Row
}

// Column returns the declared column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Interval is a maximal contiguous run of equilibrated status readings,
// closed on both ends. Start equals End for a single isolated equilibrated
// point.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls within the interval, inclusive of both
// endpoints.
func (iv Interval) Contains(ts time.Time) bool {
	return !ts.Before(iv.Start) && !ts.After(iv.End)
}

// Measurement is one row of the image-analysis output: the metric values
// computed for a single region of interest of a single image. Values is
// keyed by msorm type (e.g. "r_msorm", "g_msorm").
type Measurement struct {
	Timestamp time.Time
	Image     string
	ROI       string
	Values    map[string]float64
}

// PivotedRow is one (timestamp, image) record after pivoting measurements
// on ROI. Values is keyed by "<ROI> <msorm>" column names; a requested
// ROI/msorm combination that was never measured is NaN.
type PivotedRow struct {
	Timestamp time.Time
	Image     string
	Values    map[string]float64
}

// CombinedRow is one row of the final dataset: a pivoted measurement joined
// with interpolated sensor values and tagged with its source experiment.
type CombinedRow struct {
	Image        string
	Experiment   string
	Timestamp    time.Time
	Measurements map[string]float64
	Sensor       map[string]float64
	Status       string
}

// Dataset is the final combined, equilibrated-only table, keyed by image.
// Immutable after construction; an empty Rows slice is a valid result
// meaning the rig never equilibrated while images were being taken.
type Dataset struct {
	Rows []CombinedRow
}
