package muenztracker

import (
	"strings"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := EUR(1850.50)
	b := EUR(149.50)

	if !a.Add(b).Equal(EUR(2000)) {
		t.Errorf("Add = %v", a.Add(b))
	}
	if !a.Sub(a).IsZero() {
		t.Errorf("Sub of itself = %v", a.Sub(a))
	}
	if !EUR(1).IsPositive() || !EUR(-1).IsNegative() {
		t.Error("sign predicates are wrong")
	}
	if got := EUR(2150.55).AsFloat(); got != 2150.55 {
		t.Errorf("AsFloat = %v", got)
	}
}

func TestMoneyString(t *testing.T) {
	got := EUR(2150.55).String()
	if !strings.Contains(got, "2,150.55") {
		t.Errorf("String = %q, want the amount with cents", got)
	}
	if !strings.Contains(got, "€") {
		t.Errorf("String = %q, want the currency symbol", got)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
	if got := EUR(12.34).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("positive = %q, want + prefix", got)
	}
	if got := EUR(-12.34).SignedString(); !strings.Contains(got, "-") {
		t.Errorf("negative = %q, want a minus sign", got)
	}
}
