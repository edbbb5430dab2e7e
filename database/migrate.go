package database

import (
	"fmt"

	"gorm.io/gorm"

	"sushitrack-backend/models"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column types (DECIMAL(10,2), DECIMAL(5,2) for the margin)
// - Foreign keys from lines to products (RESTRICT so a referenced product
//   cannot disappear under a billing run)
// - Basic CHECK constraints (non-negative quantities and prices, margin bounds)
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Store{},
			&models.Product{},
			&models.Delivery{},
			&models.DeliveryLine{},
			&models.Recovery{},
			&models.RecoveryLine{},
			&models.Invoice{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// Money columns pinned to fixed-point types (idempotent ALTERs).
		alters := []string{
			`ALTER TABLE stores         MODIFY margin_percent DECIMAL(5,2)  NOT NULL DEFAULT 0`,
			`ALTER TABLE products       MODIFY sale_price     DECIMAL(10,2) NOT NULL`,
			`ALTER TABLE products       MODIFY purchase_cost  DECIMAL(10,2) NULL`,
			`ALTER TABLE invoices       MODIFY total_net      DECIMAL(10,2)`,
			`ALTER TABLE invoices       MODIFY total_tax      DECIMAL(10,2)`,
			`ALTER TABLE invoices       MODIFY total_gross    DECIMAL(10,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// CHECK constraints, added once. MySQL 8 enforces them.
		checks := []struct {
			table      string
			model      any
			constraint string
			expr       string
		}{
			{"stores", &models.Store{}, "chk_stores_margin_bounds", "margin_percent >= 0 AND margin_percent < 100"},
			{"stores", &models.Store{}, "chk_stores_payment_term_nonneg", "payment_term_days >= 0"},
			{"products", &models.Product{}, "chk_products_sale_price_nonneg", "sale_price >= 0"},
			{"delivery_lines", &models.DeliveryLine{}, "chk_delivery_lines_quantity_nonneg", "quantity >= 0"},
			{"recovery_lines", &models.RecoveryLine{}, "chk_recovery_lines_quantity_nonneg", "quantity >= 0"},
		}
		for _, c := range checks {
			if tx.Migrator().HasConstraint(c.model, c.constraint) {
				continue
			}
			stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)", c.table, c.constraint, c.expr)
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed on: %s - %w", stmt, err)
			}
		}

		return nil
	})
}
