package spreadsheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/etnz/settle"
)

// CSV reads expenses from and writes settlements to a comma-separated file.
// Unlike the xlsx backend the output is a single table: the transfer list,
// then a blank line, then the balances.
type CSV struct {
	path string
}

// NewCSV creates a csv backend for the given file path.
func NewCSV(path string) *CSV { return &CSV{path: path} }

// ReadExpenses implements Reader.
func (c *CSV) ReadExpenses(_ context.Context) ([]Row, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", c.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may omit trailing cells
	cells, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", c.path, err)
	}
	rows, err := RowsFromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", c.path, err)
	}
	return rows, nil
}

// WriteSettlements implements Writer.
func (c *CSV) WriteSettlements(_ context.Context, report *settle.Report) error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", c.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{SettlementColumns}
	for _, t := range report.Transfers {
		records = append(records, []string{string(t.From), string(t.To), t.Amount.FixedString()})
	}
	records = append(records, []string{}, BalanceColumns)
	for _, s := range report.Summaries {
		records = append(records, []string{
			string(s.Person), s.Net.FixedString(), s.Owed.FixedString(), s.Owes.FixedString(),
		})
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write %q: %w", c.path, err)
	}
	w.Flush()
	return w.Error()
}
