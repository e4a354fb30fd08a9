package settle

// PersonSummary is the per-person view of a settlement: the net balance,
// the total of incoming transfers (what the person gets back) and the total
// of outgoing transfers (what the person pays).
type PersonSummary struct {
	Person Person
	Net    Amount // positive: is owed money, negative: owes money
	Owed   Amount // sum of incoming transfers
	Owes   Amount // sum of outgoing transfers
}

// Summarize derives the per-person report from balances and transfers.
// It is purely derived data: no new computation happens here.
func Summarize(balances Balances, transfers []Transfer) []PersonSummary {
	zero := A(0, balances.Currency())
	incoming := make(map[Person]Amount)
	outgoing := make(map[Person]Amount)
	for _, t := range transfers {
		if a, ok := incoming[t.To]; ok {
			incoming[t.To] = a.Add(t.Amount)
		} else {
			incoming[t.To] = t.Amount
		}
		if a, ok := outgoing[t.From]; ok {
			outgoing[t.From] = a.Add(t.Amount)
		} else {
			outgoing[t.From] = t.Amount
		}
	}

	summaries := make([]PersonSummary, 0, balances.Roster().Len())
	for _, p := range balances.People() {
		owed, owes := zero, zero
		if a, ok := incoming[p]; ok {
			owed = a
		}
		if a, ok := outgoing[p]; ok {
			owes = a
		}
		summaries = append(summaries, PersonSummary{
			Person: p,
			Net:    balances.Of(p),
			Owed:   owed,
			Owes:   owes,
		})
	}
	return summaries
}

// Report bundles the full output of a settlement run: the balances, the
// settling transfers in netting order, and the per-person summaries.
type Report struct {
	Roster    *Roster
	Currency  string
	Balances  Balances
	Transfers []Transfer
	Summaries []PersonSummary
}

// Process runs the whole pipeline over a book:
// expenses -> balances -> transfers -> summaries.
func Process(book *Book) (*Report, error) {
	balances, err := book.Balances()
	if err != nil {
		return nil, err
	}
	transfers, err := NetSettlements(balances)
	if err != nil {
		return nil, err
	}
	return &Report{
		Roster:    book.Roster(),
		Currency:  book.Currency(),
		Balances:  balances,
		Transfers: transfers,
		Summaries: Summarize(balances, transfers),
	}, nil
}
