package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// BilledUnitPrice derives the price actually billed to a store from a
// product's public sale price: base * (1 - margin/100), rounded to 2 places
// half-away-from-zero.
func BilledUnitPrice(baseSalePrice, marginPercent decimal.Decimal) (decimal.Decimal, error) {
	if baseSalePrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative sale price %s", ErrInvalidInput, baseSalePrice)
	}
	if marginPercent.IsNegative() || marginPercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, fmt.Errorf("%w: margin %s%% outside [0, 100)", ErrInvalidInput, marginPercent)
	}
	factor := one.Sub(marginPercent.Div(hundred))
	return baseSalePrice.Mul(factor).Round(2), nil
}

// Subtotal prices a line-item set at the given store margin. Each unit price
// is rounded once before multiplication; the cross-line sum stays in exact
// decimal arithmetic and is rounded a single time at the end, so splitting a
// quantity across lines never changes the result.
func Subtotal(lines []LineItem, marginPercent decimal.Decimal) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, ln := range lines {
		if ln.Quantity < 0 {
			return decimal.Zero, fmt.Errorf("%w: negative quantity %d for product %q",
				ErrInvalidInput, ln.Quantity, ln.Product.Name)
		}
		unit, err := BilledUnitPrice(ln.Product.SalePrice, marginPercent)
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(unit.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return sum.Round(2), nil
}
