package settle

import "fmt"

// InvalidExpenseError reports a malformed expense record: empty shared set,
// non-positive amount, or a reference to somebody outside the roster.
// The record is rejected whole; no balance is touched by a bad record.
type InvalidExpenseError struct {
	Record      int    // zero-based record index in the source, or -1 when unknown
	Description string // the offending expense description, may be empty
	Reason      string
}

func (e *InvalidExpenseError) Error() string {
	where := ""
	if e.Record >= 0 {
		where = fmt.Sprintf("record %d", e.Record)
	}
	if e.Description != "" {
		if where != "" {
			where += " "
		}
		where += fmt.Sprintf("%q", e.Description)
	}
	if where == "" {
		return fmt.Sprintf("invalid expense: %s", e.Reason)
	}
	return fmt.Sprintf("invalid expense %s: %s", where, e.Reason)
}

// BalanceIntegrityError reports that the sum of all computed balances
// deviates from zero beyond one minor unit. It signals an aggregation bug,
// not bad input.
type BalanceIntegrityError struct {
	Residual Amount
}

func (e *BalanceIntegrityError) Error() string {
	return fmt.Sprintf("balance integrity violated: balances sum to %s, want 0", e.Residual)
}

// UnbalancedInputError reports that the netting phase received balances
// whose total debts and credits do not match. It should be unreachable when
// the integrity check passed; it is a defensive guard.
type UnbalancedInputError struct {
	Debts   Amount
	Credits Amount
}

func (e *UnbalancedInputError) Error() string {
	return fmt.Sprintf("unbalanced input: total debts %s != total credits %s", e.Debts, e.Credits)
}
