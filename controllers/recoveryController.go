package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sushitrack-backend/database"
	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

// CreateRecovery records a pickup of unsold product. Same multipart shape as
// CreateDelivery with recovery_date instead of delivery_date.
func CreateRecovery(c *fiber.Ctx) error {
	storeID, err := strconv.Atoi(c.FormValue("store_id"))
	if err != nil || storeID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}
	date, err := utils.ParseDate(c.FormValue("recovery_date"))
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

	recovery := models.Recovery{
		StoreID:         store.ID,
		RecoveryDate:    datatypes.Date(date),
		HandlerSupplier: c.FormValue("handler_supplier"),
		HandlerStore:    c.FormValue("handler_store"),
		Signature:       c.FormValue("signature"),
		Photo:           photo,
	}
	for _, ln := range lines {
		recovery.Lines = append(recovery.Lines, models.RecoveryLine{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
		})
	}

	if err := db.Create(&recovery).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create recovery")
	}
	return c.JSON(fiber.Map{"message": "recovery recorded", "recovery": recovery})
}
