package grid

import "github.com/rs/zerolog/log"

// Reorder canonicalizes equipment column order so the cabinet column sits
// immediately after the area column in every row, header rows included.
// Downstream stages rely on the first three columns being area, cabinet,
// description. The grid is returned unchanged when it is not an equipment
// grid, when either marker column is missing, or when the two columns are
// already adjacent; reordering twice is therefore a no-op.
func Reorder(g Grid) Grid {
	if g.Kind != KindEquipment || len(g.Rows) == 0 {
		return g
	}

	areaIdx := FindColumn(g.Header(), "area")
	cabinetIdx := FindColumn(g.Header(), "cabinet")
	if areaIdx < 0 || cabinetIdx < 0 || cabinetIdx == areaIdx+1 {
		return g
	}

	log.Debug().
		Int("area_col", areaIdx).
		Int("cabinet_col", cabinetIdx).
		Msg("Reordering cabinet column next to area column")

	rows := make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		rows[i] = moveCellAfter(row, cabinetIdx, areaIdx)
	}
	return Grid{Kind: g.Kind, Rows: rows}
}

// moveCellAfter returns a copy of row with the cell at from reinserted
// immediately after the cell at anchor, all other order preserved.
func moveCellAfter(row []string, from, anchor int) []string {
	cell := row[from]
	out := make([]string, 0, len(row))
	out = append(out, row[:from]...)
	out = append(out, row[from+1:]...)

	pos := anchor
	if from < anchor {
		// removing the cell shifted the anchor left by one
		pos = anchor - 1
	}

	out = append(out, "")
	copy(out[pos+2:], out[pos+1:])
	out[pos+1] = cell
	return out
}
