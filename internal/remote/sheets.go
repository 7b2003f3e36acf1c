package remote

import (
	"context"
	"fmt"

	"inventory_viewer/internal/grid"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads grids straight from the backing Google spreadsheet,
// one tab per (area, kind) pair named "<area>_<kind>". It serves the same
// Source contract as Client for deployments that skip the web endpoint.
type SheetsSource struct {
	service       *sheets.Service
	spreadsheetID string
}

func NewSheetsSource(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsSource, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsSource{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (s *SheetsSource) Fetch(ctx context.Context, area string, kind grid.Kind) (grid.Grid, error) {
	readRange := fmt.Sprintf("%s_%s!A1:ZZ1000", area, kind)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return grid.Grid{}, &TransportError{Err: fmt.Errorf("failed to read range %s: %w", readRange, err)}
	}

	if len(resp.Values) == 0 {
		return grid.Grid{}, &FormatError{Reason: fmt.Sprintf("range %s holds no rows", readRange)}
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v != nil {
				cells[j] = fmt.Sprintf("%v", v)
			}
		}
		rows[i] = cells
	}

	log.Debug().
		Str("range", readRange).
		Int("rows", len(rows)).
		Msg("Fetched grid from spreadsheet")

	return grid.New(kind, rows), nil
}
