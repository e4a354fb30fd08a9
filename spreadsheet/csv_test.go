package spreadsheet

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCSV_ReadExpenses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	data := "Description,Paid By,Amount,Shared With\nPizza,Alice,40,All\nGas,Bob,60,\"Bob, Alice\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	rows, err := NewCSV(path).ReadExpenses(context.Background())
	if err != nil {
		t.Fatalf("ReadExpenses() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].SharedWith != "Bob, Alice" {
		t.Errorf("SharedWith = %q, want %q", rows[1].SharedWith, "Bob, Alice")
	}
}

func TestCSV_WriteSettlements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settlements.csv")
	report := testReport(t)

	if err := NewCSV(path).WriteSettlements(context.Background(), report); err != nil {
		t.Fatalf("WriteSettlements() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "From,To,Amount") {
		t.Errorf("missing settlement header in:\n%s", out)
	}
	if !strings.Contains(out, "Alice,Bob,30.00") {
		t.Errorf("missing transfer row in:\n%s", out)
	}
	if !strings.Contains(out, "Person,Net,Gets Back,Pays") {
		t.Errorf("missing balance header in:\n%s", out)
	}
	if !strings.Contains(out, "Charlie,0.00,0.00,0.00") {
		t.Errorf("missing even participant row in:\n%s", out)
	}
}
