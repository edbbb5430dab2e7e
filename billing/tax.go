package billing

import "github.com/shopspring/decimal"

// DefaultTaxRate is the default VAT applied to invoices (6%). The effective
// rate is configuration, not a constant: it always travels as an explicit
// argument so the engine can be run against other tax regimes.
var DefaultTaxRate = decimal.RequireFromString("0.06")

// Totals are the three monetary results of a billing run.
type Totals struct {
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Gross decimal.Decimal
}

// ComputeTotals nets recoveries against deliveries and applies the tax rate.
// Rounding happens in two stages only: each subtotal was rounded already, and
// the tax is rounded here; individual lines are never rounded cumulatively.
// A recovery-heavy window yields a negative net (a credit note); that is the
// caller's policy decision, not an engine error.
func ComputeTotals(deliverySubtotal, recoverySubtotal, taxRate decimal.Decimal) Totals {
	net := deliverySubtotal.Sub(recoverySubtotal)
	tax := net.Mul(taxRate).Round(2)
	return Totals{Net: net, Tax: tax, Gross: net.Add(tax)}
}
