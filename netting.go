package settle

// Transfer is one directed payment instruction: From (the debtor) pays To
// (the creditor) the given positive amount.
type Transfer struct {
	From   Person
	To     Person
	Amount Amount
}

// party is one side of the netting loop: a person and what remains of their
// debt or credit, always kept positive.
type party struct {
	person    Person
	remaining Amount
}

// NetSettlements resolves balances into an ordered list of transfers that
// drives every balance to exactly zero when applied.
//
// The matching is greedy: at each step the debtor with the largest absolute
// debt pays the creditor with the largest credit, min(debt, credit). Ties
// are broken by roster order, first-declared wins, so the output is fully
// deterministic. This does not guarantee the theoretical minimum number of
// payments (that is a minimum-cardinality transshipment problem) but it
// terminates in at most n-1 transfers for n participants with a non-zero
// balance, and never emits a self-transfer or a zero transfer.
//
// When total debts and credits disagree beyond one minor unit the input
// cannot be settled and NetSettlements fails with UnbalancedInputError.
func NetSettlements(balances Balances) ([]Transfer, error) {
	zero := A(0, balances.Currency())

	var debtors, creditors []party
	totalDebt, totalCredit := zero, zero
	for _, p := range balances.People() {
		switch net := balances.Of(p); {
		case net.IsNegative():
			debtors = append(debtors, party{person: p, remaining: net.Neg()})
			totalDebt = totalDebt.Add(net.Neg())
		case net.IsPositive():
			creditors = append(creditors, party{person: p, remaining: net})
			totalCredit = totalCredit.Add(net)
		}
	}

	if totalDebt.Sub(totalCredit).Abs().GreaterThan(zero.MinorUnit()) {
		return nil, &UnbalancedInputError{Debts: totalDebt, Credits: totalCredit}
	}

	var transfers []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		d := largest(debtors)
		c := largest(creditors)

		amount := debtors[d].remaining.Min(creditors[c].remaining)
		transfers = append(transfers, Transfer{
			From:   debtors[d].person,
			To:     creditors[c].person,
			Amount: amount,
		})

		debtors[d].remaining = debtors[d].remaining.Sub(amount)
		creditors[c].remaining = creditors[c].remaining.Sub(amount)
		debtors = drop(debtors, d)
		creditors = drop(creditors, c)
	}
	return transfers, nil
}

// largest returns the index of the party with the largest remaining amount.
// Parties appear in roster order, so on a tie the first-declared wins.
func largest(parties []party) int {
	best := 0
	for i := 1; i < len(parties); i++ {
		if parties[i].remaining.GreaterThan(parties[best].remaining) {
			best = i
		}
	}
	return best
}

// drop removes parties[i] when its remaining amount reached zero,
// preserving roster order.
func drop(parties []party, i int) []party {
	if !parties[i].remaining.IsZero() {
		return parties
	}
	return append(parties[:i], parties[i+1:]...)
}

// ApplyTransfers returns a copy of the balances after every transfer is
// applied: the sender's balance increases, the receiver's decreases. For
// transfers produced by NetSettlements every resulting balance is exactly
// zero.
func ApplyTransfers(balances Balances, transfers []Transfer) Balances {
	after := Balances{roster: balances.roster, currency: balances.currency, net: make(map[Person]Amount, len(balances.net))}
	for p, a := range balances.net {
		after.net[p] = a
	}
	for _, t := range transfers {
		after.apply(t.From, t.Amount)
		after.apply(t.To, t.Amount.Neg())
	}
	return after
}
