package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"sushitrack-backend/models"
)

// Engine assembles invoices: it aggregates delivery and recovery lines over
// two independent date windows, prices them at the store margin, nets and
// taxes, and persists exactly one Invoice row as its single side effect.
type Engine struct {
	Ledger  Ledger
	TaxRate decimal.Decimal
}

func NewEngine(ledger Ledger, taxRate decimal.Decimal) *Engine {
	return &Engine{Ledger: ledger, TaxRate: taxRate}
}

// CreateInvoiceInput carries one billing run. The two ranges are independent
// on purpose: deliveries and recoveries may be billed on different schedules.
type CreateInvoiceInput struct {
	StoreID       uint
	InvoiceNumber string
	IssueDate     time.Time
	DeliveryRange DateRange
	RecoveryRange DateRange
}

// CreateInvoice runs one billing run. All validation and computation happen
// before the write; the insert is the last step so a failure never leaves a
// partial invoice. The operation is not idempotent: calling it twice with the
// same input creates two rows with identical totals. Replay protection
// belongs to the caller (invoice-number uniqueness or an Idempotency-Key).
func (e *Engine) CreateInvoice(in CreateInvoiceInput) (*models.Invoice, error) {
	if strings.TrimSpace(in.InvoiceNumber) == "" {
		return nil, fmt.Errorf("%w: empty invoice number", ErrInvalidInput)
	}
	if err := in.DeliveryRange.Validate(); err != nil {
		return nil, err
	}
	if err := in.RecoveryRange.Validate(); err != nil {
		return nil, err
	}

	store, err := e.Ledger.StoreByID(in.StoreID)
	if err != nil {
		return nil, err
	}

	issue := DateOnly(in.IssueDate)
	due := issue.AddDate(0, 0, store.PaymentTermDays)

	deliveries, err := e.Ledger.LinesInRange(in.StoreID, KindDelivery, in.DeliveryRange)
	if err != nil {
		return nil, err
	}
	recoveries, err := e.Ledger.LinesInRange(in.StoreID, KindRecovery, in.RecoveryRange)
	if err != nil {
		return nil, err
	}

	deliverySub, err := Subtotal(deliveries, store.MarginPercent)
	if err != nil {
		return nil, err
	}
	recoverySub, err := Subtotal(recoveries, store.MarginPercent)
	if err != nil {
		return nil, err
	}
	totals := ComputeTotals(deliverySub, recoverySub, e.TaxRate)

	inv := &models.Invoice{
		StoreID:       store.ID,
		InvoiceNumber: strings.TrimSpace(in.InvoiceNumber),
		IssueDate:     datatypes.Date(issue),
		DueDate:       datatypes.Date(due),
		TotalNet:      totals.Net,
		TotalTax:      totals.Tax,
		TotalGross:    totals.Gross,
	}
	if err := e.Ledger.SaveInvoice(inv); err != nil {
		return nil, err
	}
	inv.Store = *store
	return inv, nil
}
