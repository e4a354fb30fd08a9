package spreadsheet

import (
	"context"

	"github.com/etnz/settle"
)

// Memory is an in-memory sheet implementing both ports, for tests and for
// wiring dry runs. Cells holds the raw expense table, header included;
// Settlements and Balances capture what was written.
type Memory struct {
	Cells       [][]string
	Settlements [][]string
	Balances    [][]string
}

// ReadExpenses implements Reader.
func (m *Memory) ReadExpenses(_ context.Context) ([]Row, error) {
	return RowsFromCells(m.Cells)
}

// WriteSettlements implements Writer.
func (m *Memory) WriteSettlements(_ context.Context, report *settle.Report) error {
	m.Settlements = [][]string{SettlementColumns}
	for _, t := range report.Transfers {
		m.Settlements = append(m.Settlements, []string{string(t.From), string(t.To), t.Amount.FixedString()})
	}
	m.Balances = [][]string{BalanceColumns}
	for _, s := range report.Summaries {
		m.Balances = append(m.Balances, []string{
			string(s.Person), s.Net.FixedString(), s.Owed.FixedString(), s.Owes.FixedString(),
		})
	}
	return nil
}
