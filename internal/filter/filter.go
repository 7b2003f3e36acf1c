// Package filter derives facet option lists from a grid and narrows its
// data rows according to the current selections and search term.
package filter

import (
	"strings"

	"inventory_viewer/internal/grid"
)

// All is the neutral facet selection: the facet does not narrow rows.
const All = "All"

// State holds the user's current facet selections and free-text search.
// It is client-local, never persisted, and reset whenever the (area, kind)
// mount changes.
type State struct {
	Type    string
	Area    string
	Cabinet string
	Search  string
}

// NewState returns the default state: every facet at All, empty search.
func NewState() State {
	return State{Type: All, Area: All, Cabinet: All}
}

// SelectArea sets the area facet. Cabinet options depend on the selected
// area, so the cabinet selection falls back to All. The dependency is
// one-directional: selecting a cabinet never touches the area.
func (s *State) SelectArea(area string) {
	s.Area = area
	s.Cabinet = All
}

// Facets holds the option lists currently offered to the user. A nil list
// means the facet is disabled, either because the dataset kind does not
// carry it or because its marker column is absent.
type Facets struct {
	Types    []string
	Areas    []string
	Cabinets []string
}

// Derive computes the three facet option lists from a post-reorder grid.
// Each list starts with All followed by the distinct non-empty column
// values in first-seen order. Cabinet options exist only for equipment and
// only once an area is selected, restricted to rows in that area.
func Derive(g grid.Grid, st State) Facets {
	var f Facets
	header := g.Header()
	rows := g.DataRows()

	if col := grid.FindColumn(header, "type"); col >= 0 {
		f.Types = optionList(rows, col, -1, "")
	}

	if g.Kind != grid.KindEquipment {
		return f
	}

	areaCol := grid.FindColumn(header, "area")
	if areaCol >= 0 {
		f.Areas = optionList(rows, areaCol, -1, "")
	}

	if st.Area != All && areaCol >= 0 {
		if cabCol := grid.FindColumn(header, "cabinet"); cabCol >= 0 {
			f.Cabinets = optionList(rows, cabCol, areaCol, st.Area)
		}
	}

	return f
}

// optionList collects distinct non-empty values of column col across rows,
// in first-seen order, prefixed with All. When restrictCol is non-negative
// only rows whose restrictCol cell equals restrictVal contribute.
func optionList(rows [][]string, col, restrictCol int, restrictVal string) []string {
	options := []string{All}
	seen := make(map[string]bool)
	for _, row := range rows {
		if restrictCol >= 0 && cellAt(row, restrictCol) != restrictVal {
			continue
		}
		v := cellAt(row, col)
		if strings.TrimSpace(v) == "" || seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}
	return options
}

// Apply narrows the grid's data rows through the fixed pass order: type,
// area, cabinet, text search, then the equipment non-empty-row drop. Each
// pass is a pure narrowing; a disabled facet or All selection is a no-op.
func Apply(g grid.Grid, st State) [][]string {
	header := g.Header()
	rows := g.DataRows()

	rows = facetPass(rows, grid.FindColumn(header, "type"), st.Type)

	if g.Kind == grid.KindEquipment {
		rows = facetPass(rows, grid.FindColumn(header, "area"), st.Area)
		rows = facetPass(rows, grid.FindColumn(header, "cabinet"), st.Cabinet)
	}

	// For equipment the search term drives column visibility instead of
	// hiding rows; only the stock lists search row content.
	if st.Search != "" && g.Kind != grid.KindEquipment {
		rows = searchPass(rows, st.Search)
	}

	if g.Kind == grid.KindEquipment {
		rows = dropEmptyRows(rows)
	}

	return rows
}

func facetPass(rows [][]string, col int, selected string) [][]string {
	if col < 0 || selected == All || selected == "" {
		return rows
	}
	var kept [][]string
	for _, row := range rows {
		if cellAt(row, col) == selected {
			kept = append(kept, row)
		}
	}
	return kept
}

func searchPass(rows [][]string, term string) [][]string {
	needle := strings.ToLower(term)
	var kept [][]string
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}

// dropEmptyRows removes rows with no content in any cell. It runs last so
// a row is judged on its full cell content, not just the columns that end
// up visible.
func dropEmptyRows(rows [][]string) [][]string {
	var kept [][]string
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
