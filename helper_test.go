package settle

import "testing"

// EUR is a helper for tests to create euro amounts from consts.
func EUR(v float64) Amount { return A(v, "EUR") }

// crew creates the standard four-person test roster.
func crew(t *testing.T) *Roster {
	t.Helper()
	r, err := NewRoster("Alice", "Bob", "Charlie", "David")
	if err != nil {
		t.Fatalf("NewRoster() failed: %v", err)
	}
	return r
}

// expense builds a validated expense or fails the test.
func expense(t *testing.T, r *Roster, desc, paidBy string, amount float64, sharedWith ...string) Expense {
	t.Helper()
	e, err := NewExpense(r, desc, paidBy, EUR(amount), sharedWith)
	if err != nil {
		t.Fatalf("NewExpense(%q) failed: %v", desc, err)
	}
	return e
}

// balancesOf builds a Balances value directly, bypassing aggregation.
// Used to feed the netting phase with hand-crafted (possibly broken) input.
func balancesOf(t *testing.T, r *Roster, net map[Person]float64) Balances {
	t.Helper()
	b := Balances{roster: r, currency: "EUR", net: make(map[Person]Amount)}
	for p, v := range net {
		if r.Index(p) < 0 {
			t.Fatalf("balancesOf: %q not in roster", p)
		}
		b.net[p] = EUR(v)
	}
	return b
}
