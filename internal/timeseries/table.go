package timeseries

import (
	"sort"

	"github.com/osmolab/rigdata/pkg/types"
)

// Concat appends the rows of the given tables in call order. The column set
// of the result is the union of the inputs' columns in first-seen order.
// Row order and duplicate timestamps are preserved; callers normalize with
// SortByTimestamp and DedupeKeepFirst.
func Concat(tables ...*types.Table) *types.Table {
	out := &types.Table{}
	seen := make(map[string]bool)
	for _, t := range tables {
		for _, c := range t.Columns {
			if !seen[c.Name] {
				seen[c.Name] = true
				out.Columns = append(out.Columns, c)
			}
		}
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}

// SortByTimestamp sorts rows ascending by timestamp. The sort is stable:
// rows sharing a timestamp keep their original relative order, so the
// keep-first duplicate policy resolves in source call order.
func SortByTimestamp(t *types.Table) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Timestamp.Before(t.Rows[j].Timestamp)
	})
}

// DedupeKeepFirst drops rows whose timestamp equals an earlier row's.
// Later duplicates indicate overlapping file re-reads, so the first
// occurrence wins. Rows must already be sorted by timestamp.
func DedupeKeepFirst(t *types.Table) {
	if len(t.Rows) == 0 {
		return
	}
	out := t.Rows[:1]
	for _, row := range t.Rows[1:] {
		if row.Timestamp.Equal(out[len(out)-1].Timestamp) {
			continue
		}
		out = append(out, row)
	}
	t.Rows = out
}

// normalized returns a sorted, deduplicated shallow copy of t. The input
// table's row slice is left untouched.
func normalized(t *types.Table) *types.Table {
	cp := &types.Table{
		Columns: t.Columns,
		Rows:    append([]types.Row(nil), t.Rows...),
	}
	SortByTimestamp(cp)
	DedupeKeepFirst(cp)
	return cp
}
