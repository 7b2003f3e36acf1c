package filter

import (
	"reflect"
	"testing"

	"inventory_viewer/internal/grid"
)

func stockGrid() grid.Grid {
	return grid.New(grid.KindStock, [][]string{
		{"Type", "Name", "Qty"},
		{"Valve", "V-101", "3"},
		{"Pump", "P-2", "1"},
		{"Valve", "V-102", "0"},
		{"", "unlabeled", "2"},
	})
}

func equipmentGrid() grid.Grid {
	return grid.New(grid.KindEquipment, [][]string{
		{"Area", "Cabinet", "Description", "Slot1", "Slot2"},
		{"", "", "", "", ""},
		{"", "", "", "", ""},
		{"", "", "", "", ""},
		{"North", "C1", "Valve", "0", "3"},
		{"North", "C2", "Gauge", "1", "0"},
		{"South", "C3", "Pump", "2", "0"},
		{"", "", "", "", ""},
	})
}

func TestDeriveTypeFacet(t *testing.T) {
	f := Derive(stockGrid(), NewState())

	want := []string{"All", "Valve", "Pump"}
	if !reflect.DeepEqual(f.Types, want) {
		t.Errorf("Type options = %v, expected %v", f.Types, want)
	}
	if f.Areas != nil || f.Cabinets != nil {
		t.Errorf("Stock grids must not offer area/cabinet facets, got %v / %v", f.Areas, f.Cabinets)
	}
}

func TestDeriveFacetsDisabledWithoutMarkerColumn(t *testing.T) {
	g := grid.New(grid.KindStock, [][]string{
		{"Name", "Qty"},
		{"V-101", "3"},
	})

	f := Derive(g, NewState())
	if f.Types != nil {
		t.Errorf("Expected type facet disabled, got %v", f.Types)
	}
}

func TestDeriveAreaFacet(t *testing.T) {
	f := Derive(equipmentGrid(), NewState())

	want := []string{"All", "North", "South"}
	if !reflect.DeepEqual(f.Areas, want) {
		t.Errorf("Area options = %v, expected %v", f.Areas, want)
	}
	if f.Cabinets != nil {
		t.Errorf("Cabinet facet must stay disabled until an area is selected, got %v", f.Cabinets)
	}
}

func TestDeriveCabinetFacetRestrictedToArea(t *testing.T) {
	st := NewState()
	st.SelectArea("North")

	f := Derive(equipmentGrid(), st)
	want := []string{"All", "C1", "C2"}
	if !reflect.DeepEqual(f.Cabinets, want) {
		t.Errorf("Cabinet options = %v, expected %v", f.Cabinets, want)
	}
}

func TestFacetOptionsStartWithAllAndDeduplicate(t *testing.T) {
	f := Derive(stockGrid(), NewState())
	if len(f.Types) == 0 || f.Types[0] != All {
		t.Fatalf("Options must start with All, got %v", f.Types)
	}
	seen := make(map[string]bool)
	for _, v := range f.Types {
		if seen[v] {
			t.Errorf("Duplicate option %q in %v", v, f.Types)
		}
		seen[v] = true
	}
}

func TestSelectAreaResetsCabinet(t *testing.T) {
	st := NewState()
	st.SelectArea("North")
	st.Cabinet = "C1"

	st.SelectArea("South")
	if st.Cabinet != All {
		t.Errorf("Expected cabinet reset to All after area change, got %q", st.Cabinet)
	}
}

func TestApplyTypeFilter(t *testing.T) {
	st := NewState()
	st.Type = "Valve"

	rows := Apply(stockGrid(), st)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 valve rows, got %d: %v", len(rows), rows)
	}
	for _, row := range rows {
		if row[0] != "Valve" {
			t.Errorf("Unexpected row %v", row)
		}
	}
}

func TestApplyAllIsNoop(t *testing.T) {
	rows := Apply(stockGrid(), NewState())
	if len(rows) != 4 {
		t.Errorf("Expected all 4 data rows with default state, got %d", len(rows))
	}
}

func TestApplyTextSearchOnStock(t *testing.T) {
	// Spec'd example: search "pump" keeps only the South/Pump row.
	g := grid.New(grid.KindStock, [][]string{
		{"Area", "Cabinet", "Desc", "Slot1", "Slot2"},
		{"North", "C1", "Valve", "0", "3"},
		{"South", "C2", "Pump", "2", "0"},
	})
	st := NewState()
	st.Search = "pump"

	rows := Apply(g, st)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 matching row, got %d: %v", len(rows), rows)
	}
	if rows[0][2] != "Pump" {
		t.Errorf("Expected the Pump row, got %v", rows[0])
	}
}

func TestApplySearchIsRowNoopOnEquipment(t *testing.T) {
	st := NewState()
	st.Search = "pump"

	rows := Apply(equipmentGrid(), st)
	// All three non-empty rows survive: on equipment the term drives
	// column visibility, not row filtering.
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows, got %d: %v", len(rows), rows)
	}
}

func TestApplyDropsEmptyEquipmentRows(t *testing.T) {
	rows := Apply(equipmentGrid(), NewState())
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if cell != "" {
				empty = false
				break
			}
		}
		if empty {
			t.Errorf("Blank row survived filtering: %v", row)
		}
	}
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows after dropping blanks, got %d", len(rows))
	}
}

func TestApplyAreaAndCabinetFilters(t *testing.T) {
	st := NewState()
	st.SelectArea("North")
	st.Cabinet = "C2"

	rows := Apply(equipmentGrid(), st)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d: %v", len(rows), rows)
	}
	if rows[0][1] != "C2" {
		t.Errorf("Expected cabinet C2 row, got %v", rows[0])
	}
}

func TestApplyMissingColumnsDegradesToNoop(t *testing.T) {
	g := grid.New(grid.KindEquipment, [][]string{
		{"X", "Y"},
		{"", ""},
		{"", ""},
		{"", ""},
		{"a", "b"},
	})
	st := NewState()
	st.Type = "Valve"
	st.SelectArea("North")

	rows := Apply(g, st)
	if len(rows) != 1 {
		t.Errorf("Expected filters to degrade to no-ops without marker columns, got %v", rows)
	}
}
