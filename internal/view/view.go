// Package view runs the full presentation pipeline: grid, reorder,
// filter, column visibility. Building a model is a pure recomputation
// triggered by a grid replacement, a facet change, or a new search term;
// it never fails on a well-formed grid and degrades to showing everything
// when marker columns are absent.
package view

import (
	"inventory_viewer/internal/columns"
	"inventory_viewer/internal/filter"
	"inventory_viewer/internal/grid"
)

// Model is one frame of the table: everything a renderer or exporter
// needs, derived and immutable.
type Model struct {
	Kind       grid.Kind
	HeaderRows [][]string
	BodyRows   [][]string
	// Columns holds the visible column indices in render order. It always
	// includes the canonical equipment columns; the area column stays in
	// the set even when suppressed from rendering, so exports keep it.
	Columns []int
	Facets  filter.Facets
	State   filter.State
	// HideArea marks the render-level suppression of the area column once
	// a single area is selected.
	HideArea bool
}

// Build composes the pipeline for one grid and filter state.
func Build(g grid.Grid, st filter.State) Model {
	g = grid.Reorder(g)

	m := Model{
		Kind:       g.Kind,
		HeaderRows: g.HeaderRows(),
		Facets:     filter.Derive(g, st),
		State:      st,
	}

	m.BodyRows = filter.Apply(g, st)

	if g.Kind == grid.KindEquipment {
		m.Columns = columns.Visible(g.Header(), m.BodyRows, st.Search)
		m.HideArea = st.Area != filter.All
	} else {
		m.Columns = make([]int, g.Width())
		for i := range m.Columns {
			m.Columns[i] = i
		}
	}

	return m
}

// RenderColumns returns the column indices to draw. It equals Columns
// except that the area column drops out while HideArea is set.
func (m Model) RenderColumns() []int {
	if !m.HideArea {
		return m.Columns
	}
	areaIdx := grid.FindColumn(m.header(), "area")
	if areaIdx < 0 {
		return m.Columns
	}
	kept := make([]int, 0, len(m.Columns))
	for _, c := range m.Columns {
		if c != areaIdx {
			kept = append(kept, c)
		}
	}
	return kept
}

func (m Model) header() []string {
	if len(m.HeaderRows) == 0 {
		return nil
	}
	return m.HeaderRows[0]
}

// Cell returns the cell at (row, col), tolerating short rows.
func Cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
