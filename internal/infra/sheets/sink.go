// Package sheets implements the record sink on top of a Google Sheets
// spreadsheet, appending one row per completed application.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sink appends rows to a single spreadsheet range.
type Sink struct {
	service       *sheets.Service
	spreadsheetID string
	appendRange   string
}

// NewSink authorizes against the Sheets API with a service account key
// file and returns a sink bound to the given spreadsheet.
func NewSink(ctx context.Context, credentialsFile, spreadsheetID, appendRange string) (*Sink, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Sink{
		service:       service,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}, nil
}

// AppendRow appends one row after the last non-empty row of the range.
func (s *Sink) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.appendRange, &sheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append values: %w", err)
	}

	return nil
}
