package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sushitrack-backend/database"
	"sushitrack-backend/middlewares"
	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

// LineInput is one product position of a delivery or recovery. Zero quantity
// is legal (an item listed but not handed over).
type LineInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"gte=0"`
}

// parseLines decodes the multipart "lines" field, a JSON array of LineInput.
func parseLines(raw string) ([]LineInput, error) {
	if raw == "" {
		return nil, nil
	}
	var lines []LineInput
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid lines payload")
	}
	for i := range lines {
		if err := middlewares.ValidateStruct(&lines[i]); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// CreateDelivery records a drop-off: multipart form with store_id,
// delivery_date, handler fields, a JSON lines field and an optional photo.
func CreateDelivery(c *fiber.Ctx) error {
	storeID, err := strconv.Atoi(c.FormValue("store_id"))
	if err != nil || storeID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}
	date, err := utils.ParseDate(c.FormValue("delivery_date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	lines, err := parseLines(c.FormValue("lines"))
	if err != nil {
		return err
	}

	db := database.RequestDB(c)
	var store models.Store
	if err := db.First(&store, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "store not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not load store")
	}

	photo, err := savePhoto(c)
	if err != nil {
		return err
	}

	delivery := models.Delivery{
		StoreID:         store.ID,
		DeliveryDate:    datatypes.Date(date),
		HandlerSupplier: c.FormValue("handler_supplier"),
		HandlerStore:    c.FormValue("handler_store"),
		Signature:       c.FormValue("signature"),
		Photo:           photo,
	}
	for _, ln := range lines {
		delivery.Lines = append(delivery.Lines, models.DeliveryLine{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
		})
	}

	if err := db.Create(&delivery).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create delivery")
	}
	return c.JSON(fiber.Map{"message": "delivery recorded", "delivery": delivery})
}
