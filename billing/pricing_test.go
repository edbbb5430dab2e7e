package billing_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"sushitrack-backend/billing"
	"sushitrack-backend/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(price string, qty int) billing.LineItem {
	return billing.LineItem{
		Product:  models.Product{ID: 1, Name: "maki box", SalePrice: dec(price)},
		Quantity: qty,
	}
}

func TestBilledUnitPrice(t *testing.T) {
	cases := []struct {
		base   string
		margin string
		want   string
	}{
		{"10.00", "20.00", "8.00"},
		{"10.00", "0", "10.00"},
		{"0", "35.00", "0.00"},
		{"9.99", "12.5", "8.74"},  // 8.74125 rounds down
		{"1.25", "50", "0.63"},    // 0.625 rounds half away from zero
		{"10.00", "99.99", "0.00"},
	}
	for _, tc := range cases {
		got, err := billing.BilledUnitPrice(dec(tc.base), dec(tc.margin))
		if err != nil {
			t.Fatalf("BilledUnitPrice(%s, %s) error: %v", tc.base, tc.margin, err)
		}
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("BilledUnitPrice(%s, %s) = %s, want %s", tc.base, tc.margin, got, tc.want)
		}
	}
}

func TestBilledUnitPriceRejectsBadInput(t *testing.T) {
	cases := []struct {
		base   string
		margin string
	}{
		{"-1.00", "20.00"},
		{"10.00", "-5.00"},
		{"10.00", "100"},
		{"10.00", "150.00"},
	}
	for _, tc := range cases {
		if _, err := billing.BilledUnitPrice(dec(tc.base), dec(tc.margin)); !errors.Is(err, billing.ErrInvalidInput) {
			t.Fatalf("BilledUnitPrice(%s, %s) expected ErrInvalidInput, got %v", tc.base, tc.margin, err)
		}
	}
}

// The billed price never exceeds the public sale price, and matches it only at
// margin zero.
func TestBilledUnitPriceNeverExceedsBase(t *testing.T) {
	prices := []string{"0.01", "1.25", "7.30", "10.00", "99.99"}
	for _, p := range prices {
		base := dec(p)
		for m := 0; m < 100; m++ {
			margin := decimal.NewFromInt(int64(m))
			got, err := billing.BilledUnitPrice(base, margin)
			if err != nil {
				t.Fatalf("BilledUnitPrice(%s, %d) error: %v", p, m, err)
			}
			if got.GreaterThan(base) {
				t.Fatalf("BilledUnitPrice(%s, %d) = %s exceeds base", p, m, got)
			}
			if m == 0 && !got.Equal(base.Round(2)) {
				t.Fatalf("BilledUnitPrice(%s, 0) = %s, want base", p, got)
			}
			if m > 0 && !base.IsZero() && got.GreaterThanOrEqual(base) {
				t.Fatalf("BilledUnitPrice(%s, %d) = %s, want strictly below base", p, m, got)
			}
		}
	}
}

func TestSubtotal(t *testing.T) {
	lines := []billing.LineItem{line("10.00", 5), line("2.50", 3)}
	got, err := billing.Subtotal(lines, dec("20.00"))
	if err != nil {
		t.Fatalf("Subtotal error: %v", err)
	}
	// 8.00*5 + 2.00*3
	if !got.Equal(dec("46.00")) {
		t.Fatalf("Subtotal = %s, want 46.00", got)
	}
}

func TestSubtotalZeroQuantityIsLegal(t *testing.T) {
	got, err := billing.Subtotal([]billing.LineItem{line("10.00", 0)}, dec("20.00"))
	if err != nil {
		t.Fatalf("Subtotal error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("Subtotal with zero quantity = %s, want 0", got)
	}
}

func TestSubtotalRejectsNegativeQuantity(t *testing.T) {
	_, err := billing.Subtotal([]billing.LineItem{line("10.00", -1)}, dec("20.00"))
	if !errors.Is(err, billing.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Splitting a quantity across lines must not change the subtotal: the unit
// price is rounded once and the sum is rounded once at the end, so the
// aggregation is linear in quantity.
func TestSubtotalLinearInQuantity(t *testing.T) {
	margin := dec("12.5")
	for _, qtys := range [][2]int{{1, 1}, {3, 4}, {0, 9}, {17, 25}} {
		merged, err := billing.Subtotal([]billing.LineItem{line("9.99", qtys[0] + qtys[1])}, margin)
		if err != nil {
			t.Fatalf("Subtotal error: %v", err)
		}
		split, err := billing.Subtotal([]billing.LineItem{line("9.99", qtys[0]), line("9.99", qtys[1])}, margin)
		if err != nil {
			t.Fatalf("Subtotal error: %v", err)
		}
		if !merged.Equal(split) {
			t.Fatalf("Subtotal(%d+%d) = %s but split = %s", qtys[0], qtys[1], merged, split)
		}
	}
}
