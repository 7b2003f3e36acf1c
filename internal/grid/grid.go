package grid

import "strings"

// Kind identifies which dataset variant a grid holds. The kind determines
// how many header rows the grid carries and which transformations apply
// downstream.
type Kind string

const (
	KindStock       Kind = "stock"
	KindStockAbb    Kind = "stock_abb"
	KindStockSupcon Kind = "stock_supcon"
	KindEquipment   Kind = "equipment"
)

// ParseKind maps a wire-level type parameter to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.TrimSpace(s)) {
	case KindStock:
		return KindStock, true
	case KindStockAbb:
		return KindStockAbb, true
	case KindStockSupcon:
		return KindStockSupcon, true
	case KindEquipment:
		return KindEquipment, true
	}
	return "", false
}

// HeaderRowCount returns the number of header rows for this kind: the
// equipment matrix carries a four-row header, the stock lists a single one.
func (k Kind) HeaderRowCount() int {
	if k == KindEquipment {
		return 4
	}
	return 1
}

// IsStock reports whether the kind is one of the stock list variants.
func (k Kind) IsStock() bool {
	return k == KindStock || k == KindStockAbb || k == KindStockSupcon
}

// Grid is an ordered sequence of rows of string cells. The first
// HeaderRowCount rows are headers, the remainder are data rows. A Grid is
// a snapshot: stages derive new grids rather than mutating one in place.
type Grid struct {
	Kind Kind
	Rows [][]string
}

// New builds a grid from raw rows, padding ragged rows with empty cells so
// every row has the width of row 0. Missing trailing cells and empty cells
// are indistinguishable from then on.
func New(kind Kind, rows [][]string) Grid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	normalized := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= width {
			normalized[i] = row[:width]
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		normalized[i] = padded
	}
	return Grid{Kind: kind, Rows: normalized}
}

// Width returns the column count, taken from row 0.
func (g Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// Header returns the first header row, or nil for an empty grid.
func (g Grid) Header() []string {
	if len(g.Rows) == 0 {
		return nil
	}
	return g.Rows[0]
}

// HeaderRows returns the header rows. A grid shorter than its nominal
// header count yields whatever rows exist.
func (g Grid) HeaderRows() [][]string {
	n := g.Kind.HeaderRowCount()
	if n > len(g.Rows) {
		n = len(g.Rows)
	}
	return g.Rows[:n]
}

// DataRows returns the rows after the header block.
func (g Grid) DataRows() [][]string {
	n := g.Kind.HeaderRowCount()
	if n > len(g.Rows) {
		return nil
	}
	return g.Rows[n:]
}

// FindColumn locates a column in a header row by case-insensitive, trimmed
// label match. It returns -1 when the label is absent. Every stage that
// looks up a marker column goes through this helper so normalization stays
// consistent.
func FindColumn(headerRow []string, label string) int {
	want := strings.ToLower(strings.TrimSpace(label))
	for i, cell := range headerRow {
		if strings.ToLower(strings.TrimSpace(cell)) == want {
			return i
		}
	}
	return -1
}
