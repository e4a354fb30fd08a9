package settle

import (
	"errors"
	"testing"
)

func TestNewExpense_Valid(t *testing.T) {
	r := crew(t)
	e := expense(t, r, "Pizza", "alice", 40, "David", "BOB", "Alice", "bob")

	if e.PaidBy != "Alice" {
		t.Errorf("PaidBy = %q, want %q", e.PaidBy, "Alice")
	}
	// the shared set is deduplicated and reordered to roster order
	want := []Person{"Alice", "Bob", "David"}
	if len(e.SharedWith) != len(want) {
		t.Fatalf("SharedWith = %v, want %v", e.SharedWith, want)
	}
	for i, p := range want {
		if e.SharedWith[i] != p {
			t.Errorf("SharedWith[%d] = %q, want %q", i, e.SharedWith[i], p)
		}
	}
}

func TestNewExpense_Invalid(t *testing.T) {
	r := crew(t)

	testCases := []struct {
		name       string
		desc       string
		paidBy     string
		amount     Amount
		sharedWith []string
	}{
		{name: "empty description", desc: "  ", paidBy: "Alice", amount: EUR(10), sharedWith: []string{"Bob"}},
		{name: "unknown payer", desc: "Gas", paidBy: "Eve", amount: EUR(10), sharedWith: []string{"Bob"}},
		{name: "zero amount", desc: "Gas", paidBy: "Alice", amount: EUR(0), sharedWith: []string{"Bob"}},
		{name: "negative amount", desc: "Gas", paidBy: "Alice", amount: EUR(-5), sharedWith: []string{"Bob"}},
		{name: "sub-cent amount", desc: "Gas", paidBy: "Alice", amount: EUR(9.999), sharedWith: []string{"Bob"}},
		{name: "empty shared set", desc: "Gas", paidBy: "Alice", amount: EUR(10), sharedWith: nil},
		{name: "unknown sharer", desc: "Gas", paidBy: "Alice", amount: EUR(10), sharedWith: []string{"Bob", "Eve"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewExpense(r, tc.desc, tc.paidBy, tc.amount, tc.sharedWith)
			var inv *InvalidExpenseError
			if !errors.As(err, &inv) {
				t.Fatalf("NewExpense() error = %v, want *InvalidExpenseError", err)
			}
		})
	}
}

func TestExpense_WithDate(t *testing.T) {
	r := crew(t)
	e := expense(t, r, "Gas", "Bob", 60, "Bob", "Alice")

	if _, err := e.WithDate("2026-08-24"); err != nil {
		t.Errorf("WithDate(valid) returned %v", err)
	}
	if _, err := e.WithDate("24/08/2026"); err == nil {
		t.Error("WithDate(invalid) expected an error, got nil")
	}
	if _, err := e.WithDate(""); err != nil {
		t.Errorf("WithDate(empty) returned %v, want nil", err)
	}
}

func TestExpense_Share(t *testing.T) {
	r := crew(t)
	e := expense(t, r, "Dinner", "Alice", 10, "Alice", "Bob", "Charlie")

	shares, err := e.Share()
	if err != nil {
		t.Fatalf("Share() failed: %v", err)
	}
	// the leftover cent goes to the first-declared sharer
	want := []float64{3.34, 3.33, 3.33}
	for i, s := range shares {
		if !s.Equal(EUR(want[i])) {
			t.Errorf("share[%d] = %s, want %s", i, s, EUR(want[i]))
		}
	}
}
