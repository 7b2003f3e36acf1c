// Package export writes the current table view to an xlsx workbook. The
// export honors the visibility set, including the area column that the
// on-screen renderer may suppress.
package export

import (
	"fmt"
	"io"

	"inventory_viewer/internal/view"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Export"

// Workbook renders a view model into a single-sheet workbook.
func Workbook(m view.Model) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	rowNum := 1
	for _, row := range m.HeaderRows {
		if err := writeRow(f, rowNum, row, m.Columns); err != nil {
			return nil, err
		}
		rowNum++
	}
	for _, row := range m.BodyRows {
		if err := writeRow(f, rowNum, row, m.Columns); err != nil {
			return nil, err
		}
		rowNum++
	}

	log.Debug().
		Int("header_rows", len(m.HeaderRows)).
		Int("body_rows", len(m.BodyRows)).
		Int("columns", len(m.Columns)).
		Msg("Built export workbook")

	return f, nil
}

// Write streams the workbook for a view model to w.
func Write(w io.Writer, m view.Model) error {
	f, err := Workbook(m)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, row []string, cols []int) error {
	cells := make([]interface{}, len(cols))
	for i, c := range cols {
		cells[i] = view.Cell(row, c)
	}
	ref, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell reference: %w", err)
	}
	if err := f.SetSheetRow(sheetName, ref, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
