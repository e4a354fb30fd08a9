package settle

import (
	"fmt"
	"strings"
	"time"
)

// Expense is one shared purchase: who paid, how much, and who consumed it.
//
// Expenses are immutable value records, validated at construction. The payer
// need not be in the shared set (a payer may not consume their own
// purchase), but commonly is.
type Expense struct {
	Description string
	PaidBy      Person
	Amount      Amount
	SharedWith  []Person // non-empty, in roster order
	Date        string   // optional, YYYY-MM-DD
	Memo        string   // optional rationale
}

// NewExpense validates raw fields against the roster and builds an Expense.
//
// All structural constraints are checked here, before any balance is
// touched: non-empty description, payer in roster, positive minor-exact
// amount, non-empty shared set of roster members. The shared set is
// deduplicated and reordered to roster order so that splitting is
// deterministic.
func NewExpense(roster *Roster, description, paidBy string, amount Amount, sharedWith []string) (Expense, error) {
	fail := func(format string, args ...any) (Expense, error) {
		return Expense{}, &InvalidExpenseError{
			Record:      -1,
			Description: strings.TrimSpace(description),
			Reason:      fmt.Sprintf(format, args...),
		}
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return fail("empty description")
	}

	payer, ok := roster.Lookup(paidBy)
	if !ok {
		return fail("payer %q is not in the roster", strings.TrimSpace(paidBy))
	}

	if !amount.IsPositive() {
		return fail("amount %s is not positive", amount)
	}
	if !amount.IsMinorExact() {
		return fail("amount %s has sub-unit digits", amount)
	}

	if len(sharedWith) == 0 {
		return fail("empty shared set")
	}
	seen := make(map[Person]bool, len(sharedWith))
	shared := make([]Person, 0, len(sharedWith))
	for _, name := range sharedWith {
		p, ok := roster.Lookup(name)
		if !ok {
			return fail("shared with %q who is not in the roster", strings.TrimSpace(name))
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		shared = append(shared, p)
	}
	roster.sortByIndex(shared)

	return Expense{
		Description: description,
		PaidBy:      payer,
		Amount:      amount,
		SharedWith:  shared,
	}, nil
}

// WithDate returns a copy of the expense carrying the given date.
func (e Expense) WithDate(date string) (Expense, error) {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return Expense{}, &InvalidExpenseError{Record: -1, Description: e.Description,
				Reason: fmt.Sprintf("bad date %q: want YYYY-MM-DD", date)}
		}
	}
	e.Date = date
	return e, nil
}

// WithMemo returns a copy of the expense carrying the given memo.
func (e Expense) WithMemo(memo string) Expense {
	e.Memo = memo
	return e
}

// Share returns the portion of the expense owed by each member of the
// shared set, aligned with SharedWith. Parts sum exactly to Amount;
// leftover minor units go to the first-declared sharers.
func (e Expense) Share() ([]Amount, error) {
	if len(e.SharedWith) == 0 {
		return nil, &InvalidExpenseError{Record: -1, Description: e.Description, Reason: "empty shared set"}
	}
	return e.Amount.Split(len(e.SharedWith))
}
