package billing

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sushitrack-backend/models"
)

// GormLedger implements Ledger over a gorm handle. Hand it a per-request
// transaction so one billing run's aggregation reads and its single invoice
// write share a transaction.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger { return &GormLedger{db: db} }

func (l *GormLedger) StoreByID(id uint) (*models.Store, error) {
	var store models.Store
	if err := l.db.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: store %d", ErrNotFound, id)
		}
		return nil, &PersistenceError{Op: "store lookup", Err: err}
	}
	return &store, nil
}

func (l *GormLedger) LinesInRange(storeID uint, kind Kind, rng DateRange) ([]LineItem, error) {
	return l.linesInRange(&storeID, kind, rng)
}

// AllLinesInRange is the store-agnostic variant backing the stats read path.
func (l *GormLedger) AllLinesInRange(kind Kind, rng DateRange) ([]LineItem, error) {
	return l.linesInRange(nil, kind, rng)
}

func (l *GormLedger) linesInRange(storeID *uint, kind Kind, rng DateRange) ([]LineItem, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	start, end := DateOnly(rng.Start), DateOnly(rng.End)

	switch kind {
	case KindDelivery:
		q := l.db.Preload("Lines").Preload("Lines.Product").
			Where("delivery_date BETWEEN ? AND ?", start, end)
		if storeID != nil {
			q = q.Where("store_id = ?", *storeID)
		}
		var deliveries []models.Delivery
		if err := q.Order("delivery_date, id").Find(&deliveries).Error; err != nil {
			return nil, &PersistenceError{Op: "delivery range query", Err: err}
		}
		items := []LineItem{}
		for _, d := range deliveries {
			for _, ln := range d.Lines {
				if ln.Product.ID == 0 {
					return nil, fmt.Errorf("%w: delivery line %d references missing product %d",
						ErrIntegrityViolation, ln.ID, ln.ProductID)
				}
				items = append(items, LineItem{Product: ln.Product, Quantity: ln.Quantity})
			}
		}
		return items, nil

	case KindRecovery:
		q := l.db.Preload("Lines").Preload("Lines.Product").
			Where("recovery_date BETWEEN ? AND ?", start, end)
		if storeID != nil {
			q = q.Where("store_id = ?", *storeID)
		}
		var recoveries []models.Recovery
		if err := q.Order("recovery_date, id").Find(&recoveries).Error; err != nil {
			return nil, &PersistenceError{Op: "recovery range query", Err: err}
		}
		items := []LineItem{}
		for _, r := range recoveries {
			for _, ln := range r.Lines {
				if ln.Product.ID == 0 {
					return nil, fmt.Errorf("%w: recovery line %d references missing product %d",
						ErrIntegrityViolation, ln.ID, ln.ProductID)
				}
				items = append(items, LineItem{Product: ln.Product, Quantity: ln.Quantity})
			}
		}
		return items, nil

	default:
		return nil, fmt.Errorf("%w: unknown ledger kind %q", ErrInvalidInput, kind)
	}
}

func (l *GormLedger) SaveInvoice(inv *models.Invoice) error {
	if err := l.db.Create(inv).Error; err != nil {
		return &PersistenceError{Op: "invoice insert", Err: err}
	}
	return nil
}
