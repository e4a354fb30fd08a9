// Package spreadsheet connects the settlement engine to tabular data: it
// reads raw expense rows from xlsx, csv or Google Sheets sources and writes
// settlement results back. The engine itself never sees a spreadsheet, only
// validated expenses.
package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/settle"
	"github.com/shopspring/decimal"
)

// Column headers every expense source must carry, in canonical order.
// Matching is case-insensitive and ignores surrounding blanks.
const (
	ColDescription = "Description"
	ColPaidBy      = "Paid By"
	ColAmount      = "Amount"
	ColSharedWith  = "Shared With"
)

// AllMarker in a Shared With cell means the whole roster shares the expense.
// An empty cell means the same.
const AllMarker = "all"

// Row is one raw expense row, untyped, as found in the source.
// Index is the 1-based row number for error reporting.
type Row struct {
	Index       int
	Description string
	PaidBy      string
	Amount      string
	SharedWith  string
}

// Reader supplies raw expense rows from a tabular source.
type Reader interface {
	ReadExpenses(ctx context.Context) ([]Row, error)
}

// Writer receives settlement results for persistence: the ordered transfer
// list first, then the per-person summaries.
type Writer interface {
	WriteSettlements(ctx context.Context, report *settle.Report) error
}

// SettlementColumns is the header of the settlements output, one row per
// transfer in netting order.
var SettlementColumns = []string{"From", "To", "Amount"}

// BalanceColumns is the header of the per-person balances output.
var BalanceColumns = []string{"Person", "Net", "Gets Back", "Pays"}

// headerIndex validates a header row and maps each required column to its
// position. Extra columns are ignored.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, cell := range header {
		index[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	at := make(map[string]int, 4)
	var missing []string
	for _, col := range []string{ColDescription, ColPaidBy, ColAmount, ColSharedWith} {
		i, ok := index[strings.ToLower(col)]
		if !ok {
			missing = append(missing, col)
			continue
		}
		at[col] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return at, nil
}

// cell returns the trimmed cell at column i, or "" when the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// blank reports whether every required cell of the row is empty.
func blank(row Row) bool {
	return row.Description == "" && row.PaidBy == "" && row.Amount == "" && row.SharedWith == ""
}

// RowsFromCells converts raw cell rows (header included) into Rows,
// validating the header and skipping fully blank lines.
func RowsFromCells(cells [][]string) ([]Row, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty sheet: no header row")
	}
	at, err := headerIndex(cells[0])
	if err != nil {
		return nil, err
	}
	var rows []Row
	for i, line := range cells[1:] {
		row := Row{
			Index:       i + 2, // 1-based, after the header
			Description: cell(line, at[ColDescription]),
			PaidBy:      cell(line, at[ColPaidBy]),
			Amount:      cell(line, at[ColAmount]),
			SharedWith:  cell(line, at[ColSharedWith]),
		}
		if blank(row) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Expenses validates raw rows against the roster and converts them into
// expenses. Validation is all-or-nothing per row, and all-or-nothing for the
// batch: the first malformed row fails the whole conversion with an
// InvalidExpenseError carrying the row index.
func Expenses(rows []Row, roster *settle.Roster, currency string) ([]settle.Expense, error) {
	expenses := make([]settle.Expense, 0, len(rows))
	for i, row := range rows {
		value, err := decimal.NewFromString(strings.TrimPrefix(row.Amount, "$"))
		if err != nil {
			return nil, &settle.InvalidExpenseError{Record: i, Description: row.Description,
				Reason: fmt.Sprintf("row %d: bad amount %q", row.Index, row.Amount)}
		}
		e, err := settle.NewExpense(roster, row.Description, row.PaidBy, settle.A(value, currency), sharers(row.SharedWith, roster))
		if err != nil {
			if inv, ok := err.(*settle.InvalidExpenseError); ok {
				inv.Record = i
			}
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// sharers expands a Shared With cell into names: empty or the all-marker
// means the whole roster, otherwise a comma-separated list.
func sharers(cell string, roster *settle.Roster) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, AllMarker) {
		return roster.Names()
	}
	var names []string
	for _, name := range strings.Split(cell, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
