package settle

// Balances maps every roster member to their net balance: total paid minus
// total owed. Positive means the person is owed money, negative that they
// owe. The sum over the whole roster is exactly zero.
type Balances struct {
	roster   *Roster
	currency string
	net      map[Person]Amount
}

// Of returns the net balance of p. Unknown people have a zero balance.
func (b Balances) Of(p Person) Amount {
	if a, ok := b.net[p]; ok {
		return a
	}
	return A(0, b.currency)
}

// People returns the roster members in declaration order.
func (b Balances) People() []Person { return b.roster.People() }

// Roster returns the roster the balances were computed for.
func (b Balances) Roster() *Roster { return b.roster }

// Currency returns the currency of all balances.
func (b Balances) Currency() string { return b.currency }

// Sum returns the sum of all balances. It is zero for any Balances produced
// by ComputeBalances; anything else indicates an aggregation bug.
func (b Balances) Sum() Amount {
	total := A(0, b.currency)
	for _, p := range b.roster.People() {
		total = total.Add(b.Of(p))
	}
	return total
}

// apply shifts p's balance by delta.
func (b Balances) apply(p Person, delta Amount) {
	b.net[p] = b.Of(p).Add(delta)
}

// ComputeBalances aggregates expenses into per-person net balances.
//
// For each expense the payer is credited the full amount and every member of
// the shared set is debited their share. Shares are exact in minor units
// (see Amount.Split), so balances always sum to exactly zero; the residual
// is still verified and a BalanceIntegrityError returned should it ever
// deviate by more than one minor unit.
//
// Validation of each record is all-or-nothing: a malformed record fails with
// InvalidExpenseError before any of its mutations are applied.
func ComputeBalances(roster *Roster, currency string, expenses []Expense) (Balances, error) {
	balances := Balances{roster: roster, currency: currency, net: make(map[Person]Amount, roster.Len())}

	for i, e := range expenses {
		if roster.Index(e.PaidBy) < 0 {
			return Balances{}, &InvalidExpenseError{Record: i, Description: e.Description,
				Reason: "payer " + string(e.PaidBy) + " is not in the roster"}
		}
		shares, err := e.Share()
		if err != nil {
			return Balances{}, at(err, i)
		}

		balances.apply(e.PaidBy, e.Amount)
		for j, p := range e.SharedWith {
			if roster.Index(p) < 0 {
				return Balances{}, &InvalidExpenseError{Record: i, Description: e.Description,
					Reason: "shared with " + string(p) + " who is not in the roster"}
			}
			balances.apply(p, shares[j].Neg())
		}
	}

	if err := balances.Check(); err != nil {
		return Balances{}, err
	}
	return balances, nil
}

// Check verifies the zero-sum invariant: the residual must be within one
// minor unit of zero. Anything beyond is a BalanceIntegrityError.
func (b Balances) Check() error {
	if residual := b.Sum(); residual.Abs().GreaterThan(residual.MinorUnit()) {
		return &BalanceIntegrityError{Residual: residual}
	}
	return nil
}

// Balances computes the net balances of the whole book.
func (b *Book) Balances() (Balances, error) {
	return ComputeBalances(b.Roster(), b.Currency(), b.Expenses())
}
