package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget/internal/core"
	ports "budget/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Config holds the fixed spreadsheet target and service-account
// credentials. Credentials fall back to Application Default Credentials
// when neither JSON nor a file path is set.
type Config struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsJSON string
	CredentialsFile string
}

// Client wraps the Sheets API for the two operations the server needs:
// a column-major batch read and a column-major single-row append.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// Ensure interface conformance
var (
	_ ports.ColumnReader  = (*Client)(nil)
	_ ports.EntryAppender = (*Client)(nil)
)

// New creates a Sheets client from the given configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if strings.TrimSpace(cfg.SheetName) == "" {
		return nil, errors.New("missing sheet name")
	}

	opts := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsScope)}
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, goption.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, goption.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// ReadColumns performs one batch read over the given column ranges with
// MajorDimension COLUMNS. Cell values are stringified at the edge and
// otherwise passed through untouched.
func (c *Client) ReadColumns(ctx context.Context, ranges []string) ([][]string, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}

	qualified := make([]string, len(ranges))
	for i, r := range ranges {
		qualified[i] = c.qualify(r)
	}

	resp, err := c.svc.Spreadsheets.Values.BatchGet(c.spreadsheetID).
		MajorDimension("COLUMNS").
		Ranges(qualified...).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: batch get %v: %v", core.ErrRemoteUnavailable, qualified, err)
	}

	out := make([][]string, len(ranges))
	for i, vr := range resp.ValueRanges {
		if i >= len(out) || vr == nil || len(vr.Values) == 0 {
			continue
		}
		col := vr.Values[0]
		cells := make([]string, len(col))
		for j, v := range col {
			cells[j] = fmt.Sprint(v)
		}
		out[i] = cells
	}
	return out, nil
}

// Append writes the entry as a column-major single-row append against
// the configured sheet. Values go out verbatim with USER_ENTERED input.
func (c *Client) Append(ctx context.Context, e core.BudgetEntry) (ports.AppendResult, error) {
	if c.svc == nil {
		return ports.AppendResult{}, errors.New("sheets service not initialized")
	}

	cols := e.Columns()
	values := make([][]any, len(cols))
	for i, v := range cols {
		values[i] = []any{v}
	}
	vr := &gsheet.ValueRange{MajorDimension: "COLUMNS", Values: values}

	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return ports.AppendResult{}, fmt.Errorf("%w: append to %s: %v", core.ErrRemoteUnavailable, c.sheetName, err)
	}

	out := ports.AppendResult{SpreadsheetID: resp.SpreadsheetId}
	if resp.Updates != nil {
		out.UpdatedRange = resp.Updates.UpdatedRange
		out.UpdatedRows = resp.Updates.UpdatedRows
		out.UpdatedCells = resp.Updates.UpdatedCells
	}
	return out, nil
}

// qualify prefixes a bare column range with the sheet name
// ("G:G" -> "Budget!G:G"). Already-qualified ranges pass through.
func (c *Client) qualify(r string) string {
	if strings.Contains(r, "!") {
		return r
	}
	return c.sheetName + "!" + r
}
