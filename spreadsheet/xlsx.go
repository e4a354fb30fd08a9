package spreadsheet

import (
	"context"
	"fmt"

	"github.com/etnz/settle"
	"github.com/xuri/excelize/v2"
)

// XLSX reads expenses from and writes settlements to an Excel workbook.
type XLSX struct {
	path  string
	sheet string // expense sheet name; "" means the first sheet
}

// NewXLSX creates an xlsx backend for the given file path.
func NewXLSX(path string) *XLSX { return &XLSX{path: path} }

// WithSheet selects a specific expense sheet instead of the first one.
func (x *XLSX) WithSheet(name string) *XLSX {
	x.sheet = name
	return x
}

// ReadExpenses implements Reader.
func (x *XLSX) ReadExpenses(_ context.Context) ([]Row, error) {
	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %q: %w", x.path, err)
	}
	defer f.Close()

	sheet := x.sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook %q has no sheets", x.path)
		}
		sheet = list[0]
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", sheet, x.path, err)
	}
	rows, err := RowsFromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("sheet %q of %q: %w", sheet, x.path, err)
	}
	return rows, nil
}

// Sheet names of the settlement workbook.
const (
	SettlementsSheet = "Settlements"
	BalancesSheet    = "Balances"
)

// WriteSettlements implements Writer: a two-sheet workbook with the ordered
// transfer list and the per-person balances.
func (x *XLSX) WriteSettlements(_ context.Context, report *settle.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SettlementsSheet); err != nil {
		return fmt.Errorf("cannot prepare workbook: %w", err)
	}
	if err := setRow(f, SettlementsSheet, 1, toAny(SettlementColumns)); err != nil {
		return err
	}
	for i, t := range report.Transfers {
		row := []any{string(t.From), string(t.To), t.Amount.Float64()}
		if err := setRow(f, SettlementsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(BalancesSheet); err != nil {
		return fmt.Errorf("cannot prepare workbook: %w", err)
	}
	if err := setRow(f, BalancesSheet, 1, toAny(BalanceColumns)); err != nil {
		return err
	}
	for i, s := range report.Summaries {
		row := []any{string(s.Person), s.Net.Float64(), s.Owed.Float64(), s.Owes.Float64()}
		if err := setRow(f, BalancesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("cannot save workbook %q: %w", x.path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
		return fmt.Errorf("cannot write row %d of %q: %w", row, sheet, err)
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
