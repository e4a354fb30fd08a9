package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run executes a subcommand in-process with its own flag set.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %s flags: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

// tempBook points the global -book flag at a fresh temp file.
func tempBook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settle.jsonl")
	old := *bookFile
	*bookFile = path
	t.Cleanup(func() { *bookFile = old })
	return path
}

func TestRosterAddSettleWorkflow(t *testing.T) {
	path := tempBook(t)

	if status := run(t, &rosterCmd{}, "Alice", "Bob", "Charlie"); status != subcommands.ExitSuccess {
		t.Fatalf("roster exited with %v", status)
	}
	if status := run(t, &addCmd{}, "-d", "Pizza", "-p", "Alice", "-a", "40", "-date", "2026-08-20"); status != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", status)
	}
	if status := run(t, &addCmd{}, "-d", "Gas", "-p", "Bob", "-a", "60", "-s", "Bob, Alice"); status != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", status)
	}

	book, err := DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() failed: %v", err)
	}
	if book.Len() != 2 {
		t.Fatalf("book has %d expenses, want 2", book.Len())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, `{"command":"roster"`) {
		t.Errorf("book does not start with the roster record:\n%s", content)
	}
	if !strings.Contains(content, `"description":"Gas"`) {
		t.Errorf("book is missing the Gas expense:\n%s", content)
	}
}

func TestRosterRefusesExistingBook(t *testing.T) {
	tempBook(t)

	if status := run(t, &rosterCmd{}, "Alice", "Bob"); status != subcommands.ExitSuccess {
		t.Fatalf("roster exited with %v", status)
	}
	if status := run(t, &rosterCmd{}, "Eve"); status == subcommands.ExitSuccess {
		t.Error("roster overwrote an existing book")
	}
}

func TestRosterRequiresNames(t *testing.T) {
	tempBook(t)
	if status := run(t, &rosterCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("roster without names exited with %v, want usage error", status)
	}
}

func TestAddRejectsUnknownPayer(t *testing.T) {
	tempBook(t)
	if status := run(t, &rosterCmd{}, "Alice", "Bob"); status != subcommands.ExitSuccess {
		t.Fatalf("roster exited with %v", status)
	}
	if status := run(t, &addCmd{}, "-d", "Pizza", "-p", "Eve", "-a", "40"); status == subcommands.ExitSuccess {
		t.Error("add accepted an unknown payer")
	}
}

func TestImportFromCSV(t *testing.T) {
	tempBook(t)
	if status := run(t, &rosterCmd{}, "Alice", "Bob", "Charlie"); status != subcommands.ExitSuccess {
		t.Fatalf("roster exited with %v", status)
	}

	csvPath := filepath.Join(t.TempDir(), "expenses.csv")
	data := "Description,Paid By,Amount,Shared With\nPizza,Alice,40,All\nGas,Bob,60,\"Bob, Alice\"\n"
	if err := os.WriteFile(csvPath, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// dry run leaves the book untouched
	if status := run(t, &importCmd{}, "-n", csvPath); status != subcommands.ExitSuccess {
		t.Fatalf("import -n exited with %v", status)
	}
	book, err := DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() failed: %v", err)
	}
	if book.Len() != 0 {
		t.Fatalf("dry run imported %d expenses", book.Len())
	}

	if status := run(t, &importCmd{}, csvPath); status != subcommands.ExitSuccess {
		t.Fatalf("import exited with %v", status)
	}
	book, err = DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() failed: %v", err)
	}
	if book.Len() != 2 {
		t.Errorf("book has %d expenses, want 2", book.Len())
	}
}

func TestFmtSortsBookByDate(t *testing.T) {
	path := tempBook(t)
	if status := run(t, &rosterCmd{}, "Alice", "Bob"); status != subcommands.ExitSuccess {
		t.Fatalf("roster exited with %v", status)
	}
	if status := run(t, &addCmd{}, "-d", "Late", "-p", "Alice", "-a", "10", "-date", "2026-08-22"); status != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", status)
	}
	if status := run(t, &addCmd{}, "-d", "Early", "-p", "Bob", "-a", "10", "-date", "2026-08-20"); status != subcommands.ExitSuccess {
		t.Fatalf("add exited with %v", status)
	}

	if status := run(t, &fmtCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("fmt exited with %v", status)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	content := string(data)
	if strings.Index(content, "Early") > strings.Index(content, "Late") {
		t.Errorf("fmt did not sort expenses by date:\n%s", content)
	}
}

func TestTxSlice(t *testing.T) {
	tempBook(t)
	if status := run(t, &rosterCmd{}, "Alice", "Bob"); status != subcommands.ExitSuccess {
		t.Fatalf("roster exited with %v", status)
	}
	for _, d := range []string{"One", "Two", "Three"} {
		if status := run(t, &addCmd{}, "-d", d, "-p", "Alice", "-a", "10"); status != subcommands.ExitSuccess {
			t.Fatalf("add exited with %v", status)
		}
	}
	book, err := DecodeBook()
	if err != nil {
		t.Fatalf("DecodeBook() failed: %v", err)
	}

	head, err := slice(book, 2, 0)
	if err != nil {
		t.Fatalf("slice(head) failed: %v", err)
	}
	if head.Len() != 2 || head.Expenses()[0].Description != "One" {
		t.Errorf("head window = %d expenses, first %q", head.Len(), head.Expenses()[0].Description)
	}

	tail, err := slice(book, 0, 1)
	if err != nil {
		t.Fatalf("slice(tail) failed: %v", err)
	}
	if tail.Len() != 1 || tail.Expenses()[0].Description != "Three" {
		t.Errorf("tail window = %d expenses, first %q", tail.Len(), tail.Expenses()[0].Description)
	}

	if _, err := slice(book, 1, 1); err == nil {
		t.Error("expected an error for head and tail together")
	}
}

func TestOpenReaderLocators(t *testing.T) {
	testCases := []struct {
		locator string
		wantErr bool
	}{
		{locator: "expenses.xlsx"},
		{locator: "expenses.csv"},
		{locator: "expenses.txt", wantErr: true},
		{locator: "gsheet:///missing-id", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.locator, func(t *testing.T) {
			_, err := openReader(context.Background(), tc.locator)
			if gotErr := err != nil; gotErr != tc.wantErr {
				t.Errorf("openReader(%q) error = %v, wantErr %v", tc.locator, err, tc.wantErr)
			}
		})
	}
}

func TestParseGsheet(t *testing.T) {
	id, sheet, err := parseGsheet("gsheet://1BxiMVs0XRA5/Expenses")
	if err != nil {
		t.Fatalf("parseGsheet() failed: %v", err)
	}
	if id != "1BxiMVs0XRA5" || sheet != "Expenses" {
		t.Errorf("parseGsheet() = %q, %q", id, sheet)
	}

	if _, _, err := parseGsheet("gsheet:///noid"); err == nil {
		t.Error("expected an error for a locator without a spreadsheet id")
	}
}
