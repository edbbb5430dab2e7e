package billing_test

import (
	"testing"

	"sushitrack-backend/billing"
	"sushitrack-backend/models"
)

func TestQuantityTotals(t *testing.T) {
	maki := models.Product{ID: 1, Name: "maki box"}
	nigiri := models.Product{ID: 2, Name: "nigiri box"}
	lines := []billing.LineItem{
		{Product: maki, Quantity: 3},
		{Product: nigiri, Quantity: 5},
		{Product: maki, Quantity: 4},
		{Product: nigiri, Quantity: 0},
	}

	got := billing.QuantityTotals(lines)
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got["maki box"] != 7 || got["nigiri box"] != 5 {
		t.Fatalf("unexpected totals: %v", got)
	}
}

func TestQuantityTotalsEmpty(t *testing.T) {
	if got := billing.QuantityTotals(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}
