// Package google reads expense rows from and appends settlement rows to a
// Google Sheets spreadsheet, using service-account credentials.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/settle"
	"github.com/etnz/settle/spreadsheet"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client is a spreadsheet backend over one Google spreadsheet.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheet         string // expense sheet name, e.g. "Expenses"
}

// Ensure interface conformance.
var (
	_ spreadsheet.Reader = (*Client)(nil)
	_ spreadsheet.Writer = (*Client)(nil)
)

// New creates a Sheets client for the given spreadsheet and sheet name.
// Credentials come from the environment: GOOGLE_SERVICE_ACCOUNT_JSON (inline
// JSON), GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
func New(ctx context.Context, spreadsheetID, sheet string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	if sheet == "" {
		sheet = "Expenses"
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentials []byte
	switch {
	case inline != "":
		credentials = []byte(inline)
	case file != "":
		var err error
		credentials, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentials),
		goption.WithScopes(gsheet.SpreadsheetsScope),
	)
}

// ReadExpenses implements spreadsheet.Reader: the expense table is expected
// in columns A:D of the configured sheet, header row first.
func (c *Client) ReadExpenses(ctx context.Context) ([]spreadsheet.Row, error) {
	rng := fmt.Sprintf("%s!A:D", c.sheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("cannot read range %q: %w", rng, err)
	}
	cells := make([][]string, 0, len(resp.Values))
	for _, line := range resp.Values {
		row := make([]string, len(line))
		for i, v := range line {
			row[i] = fmt.Sprint(v)
		}
		cells = append(cells, row)
	}
	return spreadsheet.RowsFromCells(cells)
}

// WriteSettlements implements spreadsheet.Writer: settlements are appended
// to a "Settlements" sheet of the same spreadsheet, header first.
func (c *Client) WriteSettlements(ctx context.Context, report *settle.Report) error {
	values := [][]any{toAny(spreadsheet.SettlementColumns)}
	for _, t := range report.Transfers {
		values = append(values, []any{string(t.From), string(t.To), t.Amount.Float64()})
	}
	values = append(values, []any{}, toAny(spreadsheet.BalanceColumns))
	for _, s := range report.Summaries {
		values = append(values, []any{string(s.Person), s.Net.Float64(), s.Owed.Float64(), s.Owes.Float64()})
	}

	vr := &gsheet.ValueRange{Values: values}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, "Settlements!A:D", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("cannot append settlements: %w", err)
	}
	return nil
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
