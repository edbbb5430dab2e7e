package database

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestDB returns the gorm handle for this request. Mutating requests run
// inside a per-request transaction opened by middlewares.RequestTx (stored in
// c.Locals("tx")); read-only requests fall back to the shared pool. Keeping a
// billing run's reads and its single invoice write on one transaction means a
// crash mid-run leaves no partial state.
func RequestDB(c *fiber.Ctx) *gorm.DB {
	if v := c.Locals("tx"); v != nil {
		if tx, ok := v.(*gorm.DB); ok && tx != nil {
			return tx
		}
	}
	return DB
}
