// Package renderer builds markdown reports from settlement results.
// It only formats: every number it prints was computed by the settle
// package, never here.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/settle"
	md "github.com/nao1215/markdown"
)

// SettlementMarkdown renders the full settlement report: who pays whom, in
// netting order, followed by the per-person summary.
func SettlementMarkdown(r *settle.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Settlement")

	if len(r.Transfers) == 0 {
		doc.PlainText("Everyone is even, no payments needed.")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("%d payments settle all debts.", len(r.Transfers)))

	rows := make([][]string, 0, len(r.Transfers))
	for _, t := range r.Transfers {
		rows = append(rows, []string{string(t.From), string(t.To), t.Amount.String()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"From", "To", "Amount"},
		Rows:      rows,
	})

	doc.H2("Balances")
	doc.Table(summaryTable(r.Summaries))

	return doc.String()
}

// BalancesMarkdown renders the net balance of every participant.
func BalancesMarkdown(b settle.Balances) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balances")

	rows := make([][]string, 0, len(b.People()))
	for _, p := range b.People() {
		rows = append(rows, []string{string(p), b.Of(p).SignedString()})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Person", "Net"},
		Rows:      rows,
	})

	return doc.String()
}

// SummaryMarkdown renders the per-person settlement summary.
func SummaryMarkdown(summaries []settle.PersonSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	doc.Table(summaryTable(summaries))

	return doc.String()
}

func summaryTable(summaries []settle.PersonSummary) md.TableSet {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			string(s.Person),
			s.Net.SignedString(),
			s.Owed.String(),
			s.Owes.String(),
		})
	}
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Person", "Net", "Gets Back", "Pays"},
		Rows:      rows,
	}
}

// ExpensesMarkdown renders the book's expense list with a closing total.
func ExpensesMarkdown(book *settle.Book) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")

	rows := make([][]string, 0, book.Len())
	for _, e := range book.Expenses() {
		names := make([]string, len(e.SharedWith))
		for i, p := range e.SharedWith {
			names[i] = string(p)
		}
		rows = append(rows, []string{
			e.Date,
			e.Description,
			string(e.PaidBy),
			e.Amount.String(),
			strings.Join(names, ", "),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Description", "Paid By", "Amount", "Shared With"},
		Rows:      rows,
	})
	doc.PlainText(fmt.Sprintf("%d expenses, %s total.", book.Len(), book.Total()))

	return doc.String()
}
