package view

import (
	"reflect"
	"testing"

	"inventory_viewer/internal/filter"
	"inventory_viewer/internal/grid"
)

func equipmentGrid() grid.Grid {
	// Cabinet deliberately out of place; Build must canonicalize first.
	return grid.New(grid.KindEquipment, [][]string{
		{"Area", "Description", "Slot1", "Slot2", "Cabinet"},
		{"", "", "", "", ""},
		{"", "", "", "", ""},
		{"", "", "", "", ""},
		{"North", "Valve", "0", "3", "C1"},
		{"South", "Pump", "2", "0", "C2"},
	})
}

func TestBuildCanonicalizesAndFilters(t *testing.T) {
	m := Build(equipmentGrid(), filter.NewState())

	wantHeader := []string{"Area", "Cabinet", "Description", "Slot1", "Slot2"}
	if !reflect.DeepEqual(m.HeaderRows[0], wantHeader) {
		t.Errorf("Header = %v, expected %v", m.HeaderRows[0], wantHeader)
	}
	if len(m.HeaderRows) != 4 {
		t.Errorf("Expected 4 header rows, got %d", len(m.HeaderRows))
	}
	if len(m.BodyRows) != 2 {
		t.Fatalf("Expected 2 body rows, got %d", len(m.BodyRows))
	}
	// Slot1 has 2>0 in one row, Slot2 has 3>0 in another: both visible.
	wantCols := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(m.Columns, wantCols) {
		t.Errorf("Columns = %v, expected %v", m.Columns, wantCols)
	}
}

func TestBuildStockShowsAllColumns(t *testing.T) {
	g := grid.New(grid.KindStock, [][]string{
		{"Type", "Name", "Qty"},
		{"Valve", "V-101", "0"},
	})

	m := Build(g, filter.NewState())
	if !reflect.DeepEqual(m.Columns, []int{0, 1, 2}) {
		t.Errorf("Stock grids render every column, got %v", m.Columns)
	}
	if m.HideArea {
		t.Error("HideArea must never be set for stock grids")
	}
}

func TestBuildSearchDrivesColumnsOnEquipment(t *testing.T) {
	st := filter.NewState()
	st.Search = "slot2"

	m := Build(equipmentGrid(), st)
	if len(m.BodyRows) != 2 {
		t.Errorf("Search must not hide equipment rows, got %d rows", len(m.BodyRows))
	}
	wantCols := []int{0, 1, 2, 4}
	if !reflect.DeepEqual(m.Columns, wantCols) {
		t.Errorf("Columns = %v, expected %v", m.Columns, wantCols)
	}
}

func TestRenderColumnsSuppressesAreaWhenSelected(t *testing.T) {
	st := filter.NewState()
	st.SelectArea("North")

	m := Build(equipmentGrid(), st)
	if !m.HideArea {
		t.Fatal("Expected HideArea with a selected area")
	}
	for _, c := range m.RenderColumns() {
		if c == 0 {
			t.Error("Area column must not be rendered while an area is selected")
		}
	}
	// The visibility set itself still carries the area column for export.
	if m.Columns[0] != 0 {
		t.Errorf("Columns must keep the area column, got %v", m.Columns)
	}
}

func TestBuildEmptyGrid(t *testing.T) {
	m := Build(grid.New(grid.KindEquipment, nil), filter.NewState())
	if len(m.HeaderRows) != 0 || len(m.BodyRows) != 0 || len(m.Columns) != 0 {
		t.Errorf("Empty grid must build an empty model, got %+v", m)
	}
}
