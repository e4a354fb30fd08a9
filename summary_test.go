package settle

import "testing"

func TestSummarize(t *testing.T) {
	r := crew(t)
	balances := balancesOf(t, r, map[Person]float64{
		"Alice": 30, "Bob": -10, "Charlie": -10, "David": -10,
	})
	transfers, err := NetSettlements(balances)
	if err != nil {
		t.Fatalf("NetSettlements() failed: %v", err)
	}

	summaries := Summarize(balances, transfers)
	if len(summaries) != r.Len() {
		t.Fatalf("got %d summaries, want %d", len(summaries), r.Len())
	}

	// summaries follow roster order
	wants := []struct {
		person Person
		net    float64
		owed   float64
		owes   float64
	}{
		{person: "Alice", net: 30, owed: 30, owes: 0},
		{person: "Bob", net: -10, owed: 0, owes: 10},
		{person: "Charlie", net: -10, owed: 0, owes: 10},
		{person: "David", net: -10, owed: 0, owes: 10},
	}
	for i, want := range wants {
		got := summaries[i]
		if got.Person != want.person {
			t.Errorf("summary[%d].Person = %q, want %q", i, got.Person, want.person)
		}
		if !got.Net.Equal(EUR(want.net)) {
			t.Errorf("summary[%d].Net = %s, want %s", i, got.Net, EUR(want.net))
		}
		if !got.Owed.Equal(EUR(want.owed)) {
			t.Errorf("summary[%d].Owed = %s, want %s", i, got.Owed, EUR(want.owed))
		}
		if !got.Owes.Equal(EUR(want.owes)) {
			t.Errorf("summary[%d].Owes = %s, want %s", i, got.Owes, EUR(want.owes))
		}
	}
}

func TestProcess(t *testing.T) {
	book := NewBook()
	if err := book.Roster().Add("Alice", "Bob", "Charlie", "David"); err != nil {
		t.Fatalf("roster: %v", err)
	}
	book.SetCurrency("EUR")

	e, err := NewExpense(book.Roster(), "Pizza", "Alice", EUR(40), []string{"Alice", "Bob", "Charlie", "David"})
	if err != nil {
		t.Fatalf("NewExpense() failed: %v", err)
	}
	book.Append(e)

	report, err := Process(book)
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if got := report.Balances.Of("Alice"); !got.Equal(EUR(30)) {
		t.Errorf("Alice balance = %s, want %s", got, EUR(30))
	}
	if len(report.Transfers) != 3 {
		t.Errorf("got %d transfers, want 3", len(report.Transfers))
	}
	for _, tr := range report.Transfers {
		if tr.To != "Alice" || !tr.Amount.Equal(EUR(10)) {
			t.Errorf("transfer %s -> %s %s, want 10.00 to Alice", tr.From, tr.To, tr.Amount)
		}
	}
	if len(report.Summaries) != 4 {
		t.Errorf("got %d summaries, want 4", len(report.Summaries))
	}
}
