package controllers

import (
	"github.com/gofiber/fiber/v2"

	"sushitrack-backend/billing"
	"sushitrack-backend/database"
	"sushitrack-backend/utils"
)

// GetStats returns per-product delivered and recovered quantities over one
// window, across all stores. Read-only sibling of the billing aggregation.
func GetStats(c *fiber.Ctx) error {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	rng := billing.DateRange{Start: start, End: end}

	ledger := billing.NewGormLedger(database.RequestDB(c))
	deliveries, err := ledger.AllLinesInRange(billing.KindDelivery, rng)
	if err != nil {
		return err
	}
	recoveries, err := ledger.AllLinesInRange(billing.KindRecovery, rng)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"deliveries_by_product": billing.QuantityTotals(deliveries),
		"recoveries_by_product": billing.QuantityTotals(recoveries),
	})
}
