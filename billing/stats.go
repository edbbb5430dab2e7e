package billing

// QuantityTotals sums line quantities per product name. It is the read-only
// sibling of invoice aggregation: same line-item source, no pricing.
func QuantityTotals(lines []LineItem) map[string]int {
	totals := make(map[string]int, len(lines))
	for _, ln := range lines {
		totals[ln.Product.Name] += ln.Quantity
	}
	return totals
}
