package billing

import (
	"fmt"
	"time"

	"sushitrack-backend/models"
)

// Kind selects which side of the ledger a range query reads.
type Kind string

const (
	KindDelivery Kind = "delivery"
	KindRecovery Kind = "recovery"
)

// DateRange is a calendar-date window, inclusive on both ends. Time-of-day
// components are ignored.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate reports ErrInvalidRange when the window is inverted. An empty
// result set for a valid window is not an error.
func (r DateRange) Validate() error {
	if DateOnly(r.Start).After(DateOnly(r.End)) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
	return nil
}

// Contains reports whether the calendar date of t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(DateOnly(r.Start)) && !d.After(DateOnly(r.End))
}

// DateOnly truncates t to a UTC calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LineItem is one delivered or recovered product position, joined to its
// product record. Every item returned by a Ledger has a resolvable product.
type LineItem struct {
	Product  models.Product
	Quantity int
}

// Ledger is the persistence contract the engine computes against: a point
// lookup, a range-filtered read of line items, and one insert. Implementations
// decide transactionality; the engine just keeps the insert last.
type Ledger interface {
	StoreByID(id uint) (*models.Store, error)
	LinesInRange(storeID uint, kind Kind, rng DateRange) ([]LineItem, error)
	SaveInvoice(inv *models.Invoice) error
}
