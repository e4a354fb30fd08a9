package settle

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType is a typed string identifying book record commands.
type RecordType string

// Record types used in the book file.
const (
	CmdRoster  RecordType = "roster"
	CmdExpense RecordType = "expense"
)

// rosterRec is the wire form of a roster declaration line.
type rosterRec struct {
	Command  RecordType `json:"command"`
	Names    []string   `json:"names"`
	Currency string     `json:"currency,omitempty"`
}

func (r rosterRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdRoster)
	w.Append("names", r.Names)
	w.Optional("currency", r.Currency)
	return w.MarshalJSON()
}

// expenseRec is the wire form of an expense line.
type expenseRec struct {
	Command     RecordType      `json:"command"`
	Description string          `json:"description"`
	PaidBy      string          `json:"paidBy"`
	Amount      decimal.Decimal `json:"amount"`
	SharedWith  []string        `json:"sharedWith"`
	Date        string          `json:"date,omitempty"`
	Memo        string          `json:"memo,omitempty"`
}

func (r expenseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdExpense)
	w.Append("description", r.Description)
	w.Append("paidBy", r.PaidBy)
	w.Append("amount", r.Amount)
	w.Append("sharedWith", r.SharedWith)
	w.Optional("date", r.Date)
	w.Optional("memo", r.Memo)
	return w.MarshalJSON()
}

// DecodeBook decodes a book from a stream of JSONL data: one JSON object per
// line, identified by its "command" property. Roster lines must precede the
// expenses that reference their participants.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	record := -1 // index of the current expense record
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Command RecordType `json:"command"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", line, string(raw), err)
		}

		switch identifier.Command {
		case CmdRoster:
			var rec rosterRec
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("line %d: bad roster record: %w", line, err)
			}
			if err := book.Roster().Add(rec.Names...); err != nil {
				return nil, fmt.Errorf("line %d: bad roster record: %w", line, err)
			}
			if rec.Currency != "" {
				book.SetCurrency(rec.Currency)
			}

		case CmdExpense:
			record++
			var rec expenseRec
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, fmt.Errorf("line %d: bad expense record: %w", line, err)
			}
			e, err := NewExpense(book.Roster(), rec.Description, rec.PaidBy, A(rec.Amount, book.Currency()), rec.SharedWith)
			if err != nil {
				return nil, at(err, record)
			}
			if e, err = e.WithDate(rec.Date); err != nil {
				return nil, at(err, record)
			}
			book.Append(e.WithMemo(rec.Memo))

		default:
			return nil, fmt.Errorf("line %d: unknown command %q", line, identifier.Command)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading book: %w", err)
	}
	return book, nil
}

// at stamps an InvalidExpenseError with the record index it came from.
func at(err error, record int) error {
	if inv, ok := err.(*InvalidExpenseError); ok {
		inv.Record = record
	}
	return err
}

// EncodeBook writes the whole book to 'w' in canonical JSONL form: one
// roster line, then one line per expense.
func EncodeBook(w io.Writer, b *Book) error {
	if b.Roster().Len() > 0 {
		if err := encodeLine(w, rosterRec{Names: b.Roster().Names(), Currency: b.Currency()}); err != nil {
			return err
		}
	}
	for _, e := range b.Expenses() {
		if err := EncodeExpense(w, e); err != nil {
			return err
		}
	}
	return nil
}

// EncodeRoster appends a single roster declaration line to 'w'.
func EncodeRoster(w io.Writer, names []string, currency string) error {
	return encodeLine(w, rosterRec{Names: names, Currency: currency})
}

// EncodeExpense appends a single expense line to 'w'.
func EncodeExpense(w io.Writer, e Expense) error {
	shared := make([]string, len(e.SharedWith))
	for i, p := range e.SharedWith {
		shared[i] = string(p)
	}
	rec := expenseRec{
		Description: e.Description,
		PaidBy:      string(e.PaidBy),
		Amount:      e.Amount.value,
		SharedWith:  shared,
		Date:        e.Date,
		Memo:        e.Memo,
	}
	return encodeLine(w, rec)
}

func encodeLine(w io.Writer, rec json.Marshaler) error {
	data, err := rec.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal book record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write book record: %w", err)
	}
	return nil
}
