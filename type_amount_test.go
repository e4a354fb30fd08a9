package settle

import "testing"

func TestAmount_Split_ExactParts(t *testing.T) {
	testCases := []struct {
		name      string
		amount    float64
		parts     int
		wantParts []float64
	}{
		{name: "even split", amount: 40, parts: 4, wantParts: []float64{10, 10, 10, 10}},
		{name: "one cent left over", amount: 10, parts: 3, wantParts: []float64{3.34, 3.33, 3.33}},
		{name: "two cents left over", amount: 0.05, parts: 3, wantParts: []float64{0.02, 0.02, 0.01}},
		{name: "single part", amount: 12.34, parts: 1, wantParts: []float64{12.34}},
		{name: "more parts than cents", amount: 0.02, parts: 3, wantParts: []float64{0.01, 0.01, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parts, err := EUR(tc.amount).Split(tc.parts)
			if err != nil {
				t.Fatalf("Split(%d) returned unexpected error: %v", tc.parts, err)
			}
			if len(parts) != tc.parts {
				t.Fatalf("Split(%d) returned %d parts", tc.parts, len(parts))
			}
			sum := EUR(0)
			for i, p := range parts {
				if !p.Equal(EUR(tc.wantParts[i])) {
					t.Errorf("part[%d] = %s, want %s", i, p, EUR(tc.wantParts[i]))
				}
				sum = sum.Add(p)
			}
			if !sum.Equal(EUR(tc.amount)) {
				t.Errorf("parts sum to %s, want %s", sum, EUR(tc.amount))
			}
		})
	}
}

func TestAmount_Split_Errors(t *testing.T) {
	if _, err := EUR(10).Split(0); err == nil {
		t.Error("Split(0) expected an error, got nil")
	}
	if _, err := EUR(10).Split(-2); err == nil {
		t.Error("Split(-2) expected an error, got nil")
	}
	if _, err := EUR(10.005).Split(2); err == nil {
		t.Error("Split of a sub-cent amount expected an error, got nil")
	}
}

func TestAmount_IsMinorExact(t *testing.T) {
	if !EUR(12.34).IsMinorExact() {
		t.Error("12.34 EUR should be exact in cents")
	}
	if EUR(12.345).IsMinorExact() {
		t.Error("12.345 EUR should not be exact in cents")
	}
	// JPY has no minor digits.
	if A(100, "JPY").IsMinorExact() != true {
		t.Error("100 JPY should be exact")
	}
	if A(100.5, "JPY").IsMinorExact() {
		t.Error("100.5 JPY should not be exact")
	}
}

func TestAmount_SignedString(t *testing.T) {
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
	if got := EUR(1).SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString() = %q, want leading '+'", got)
	}
}

func TestAmount_MinMinorUnit(t *testing.T) {
	if got := EUR(3).Min(EUR(2)); !got.Equal(EUR(2)) {
		t.Errorf("Min = %s, want %s", got, EUR(2))
	}
	if got := EUR(0).MinorUnit(); !got.Equal(EUR(0.01)) {
		t.Errorf("MinorUnit = %s, want %s", got, EUR(0.01))
	}
}
