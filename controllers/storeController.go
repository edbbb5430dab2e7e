package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sushitrack-backend/database"
	"sushitrack-backend/middlewares"
	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

type StoreInput struct {
	Name              string `json:"name" validate:"required"`
	Address           string `json:"address"`
	NotificationEmail string `json:"notification_email" validate:"omitempty,email"`
	MarginPercent     string `json:"margin_percent" validate:"required"`
	PaymentTermDays   int    `json:"payment_term_days" validate:"gte=0"`
}

// parseMargin parses and bounds-checks a store margin. Margins live in
// [0, 100): at 100 the billed price would be zero for every product.
func parseMargin(s string) (decimal.Decimal, error) {
	margin, err := utils.ParseAmount(s)
	if err != nil {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if margin.IsNegative() || margin.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return decimal.Zero, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("margin %s%% outside [0, 100)", margin))
	}
	return margin, nil
}

func CreateStore(c *fiber.Ctx) error {
	var input StoreInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	margin, err := parseMargin(input.MarginPercent)
	if err != nil {
		return err
	}

	store := models.Store{
		Name:              input.Name,
		Address:           input.Address,
		NotificationEmail: input.NotificationEmail,
		MarginPercent:     margin,
		PaymentTermDays:   input.PaymentTermDays,
	}
	if err := database.RequestDB(c).Create(&store).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create store")
	}
	return c.JSON(store)
}

func GetStores(c *fiber.Ctx) error {
	var stores []models.Store
	if err := database.RequestDB(c).Order("name").Find(&stores).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load stores")
	}
	return c.JSON(stores)
}

type StorePatch struct {
	Name              *string `json:"name"`
	Address           *string `json:"address"`
	NotificationEmail *string `json:"notification_email" validate:"omitempty,email"`
	MarginPercent     *string `json:"margin_percent"`
	PaymentTermDays   *int    `json:"payment_term_days" validate:"omitempty,gte=0"`
}

// UpdateStore patches store master data. A margin change affects future
// billing runs only; persisted invoices keep their totals.
func UpdateStore(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}

	var patch StorePatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&patch)

	updates := utils.UpdatesFromPtrDTO(&patch, map[string]string{"margin_percent": "-"})
	if patch.MarginPercent != nil {
		margin, err := parseMargin(*patch.MarginPercent)
		if err != nil {
			return err
		}
		updates["margin_percent"] = margin
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	db := database.RequestDB(c)
	var store models.Store
	if err := db.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "store not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not load store")
	}
	if err := db.Model(&store).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update store")
	}
	return c.JSON(store)
}
