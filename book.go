package settle

import (
	"slices"
	"strings"
)

// DefaultCurrency is used when a book does not declare one.
const DefaultCurrency = "EUR"

// Book holds the roster and the expenses of one settlement run.
//
// A Book keeps expenses in recording order; Fmt canonicalizes it for
// re-encoding. It carries no balances: those are recomputed from scratch on
// every run.
type Book struct {
	roster   *Roster
	currency string
	expenses []Expense
}

// NewBook creates an empty book with an empty roster.
func NewBook() *Book {
	r, _ := NewRoster()
	return &Book{roster: r}
}

// Roster returns the book's participant roster.
func (b *Book) Roster() *Roster { return b.roster }

// Currency returns the book's currency code, defaulting to DefaultCurrency.
func (b *Book) Currency() string {
	if b.currency == "" {
		return DefaultCurrency
	}
	return b.currency
}

// SetCurrency declares the book's currency. The first declaration wins;
// conflicting later declarations are ignored (the book has a single
// currency by construction).
func (b *Book) SetCurrency(cur string) {
	cur = strings.ToUpper(strings.TrimSpace(cur))
	if b.currency == "" {
		b.currency = cur
	}
}

// Append records a validated expense.
func (b *Book) Append(e Expense) { b.expenses = append(b.expenses, e) }

// Expenses returns the recorded expenses in recording order.
func (b *Book) Expenses() []Expense { return slices.Clone(b.expenses) }

// Len returns the number of recorded expenses.
func (b *Book) Len() int { return len(b.expenses) }

// Total returns the sum of all expense amounts.
func (b *Book) Total() Amount {
	total := A(0, b.Currency())
	for _, e := range b.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// PaidBy returns the number of expenses and the total amount paid by p.
func (b *Book) PaidBy(p Person) (count int, total Amount) {
	total = A(0, b.Currency())
	for _, e := range b.expenses {
		if e.PaidBy == p {
			count++
			total = total.Add(e.Amount)
		}
	}
	return count, total
}

// Fmt returns a canonical copy of the book: expenses stably sorted by date
// (undated records first, recording order preserved within a date).
func (b *Book) Fmt() *Book {
	nb := &Book{roster: b.roster, currency: b.currency, expenses: slices.Clone(b.expenses)}
	slices.SortStableFunc(nb.expenses, func(x, y Expense) int {
		return strings.Compare(x.Date, y.Date)
	})
	return nb
}
