// Package cmd implements the CLI application to settle shared expenses.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/etnz/settle"
	"github.com/etnz/settle/spreadsheet"
	"github.com/etnz/settle/spreadsheet/google"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rosterCmd{}, "book")
	c.Register(&addCmd{}, "book")
	c.Register(&importCmd{}, "book")
	c.Register(&fmtCmd{}, "book")

	c.Register(&settleCmd{}, "reports")
	c.Register(&balancesCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "settle.jsonl", "Path to the expense book file (JSONL format)")
var defaultCurrency = flag.String("currency", settle.DefaultCurrency, "Currency for new expense books")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// DecodeBook reads the app book file.
func DecodeBook() (*settle.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("book %q does not exist, create one with 'scs roster <name>...'", *bookFile)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book %q: %w", *bookFile, err)
	}
	defer f.Close()

	book, err := settle.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("invalid book %q: %w", *bookFile, err)
	}
	return book, nil
}

// EncodeExpenses appends expenses to the app book file.
func EncodeExpenses(expenses ...settle.Expense) subcommands.ExitStatus {
	f, err := os.OpenFile(*bookFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, e := range expenses {
		if err := settle.EncodeExpense(f, e); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to book file %q: %v\n", *bookFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d expense(s) to %s\n", len(expenses), *bookFile)
	return subcommands.ExitSuccess
}

// openReader resolves a spreadsheet locator into its reading backend.
// Locators are either file paths (.xlsx, .csv) or gsheet://<id>/<sheet> URLs.
func openReader(ctx context.Context, locator string) (spreadsheet.Reader, error) {
	switch {
	case strings.HasPrefix(locator, "gsheet://"):
		id, sheet, err := parseGsheet(locator)
		if err != nil {
			return nil, err
		}
		return google.New(ctx, id, sheet)
	case strings.HasSuffix(locator, ".csv"):
		return spreadsheet.NewCSV(locator), nil
	case strings.HasSuffix(locator, ".xlsx"):
		return spreadsheet.NewXLSX(locator), nil
	}
	return nil, fmt.Errorf("unsupported spreadsheet locator %q (want .xlsx, .csv or gsheet://)", locator)
}

// openWriter resolves a spreadsheet locator into its writing backend.
func openWriter(ctx context.Context, locator string) (spreadsheet.Writer, error) {
	switch {
	case strings.HasPrefix(locator, "gsheet://"):
		id, sheet, err := parseGsheet(locator)
		if err != nil {
			return nil, err
		}
		return google.New(ctx, id, sheet)
	case strings.HasSuffix(locator, ".csv"):
		return spreadsheet.NewCSV(locator), nil
	case strings.HasSuffix(locator, ".xlsx"):
		return spreadsheet.NewXLSX(locator), nil
	}
	return nil, fmt.Errorf("unsupported spreadsheet locator %q (want .xlsx, .csv or gsheet://)", locator)
}

func parseGsheet(locator string) (id, sheet string, err error) {
	u, err := url.Parse(locator)
	if err != nil {
		return "", "", fmt.Errorf("invalid gsheet locator %q: %w", locator, err)
	}
	id = u.Host
	sheet = strings.TrimPrefix(u.Path, "/")
	if id == "" {
		return "", "", fmt.Errorf("invalid gsheet locator %q: missing spreadsheet id", locator)
	}
	return id, sheet, nil
}
