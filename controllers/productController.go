package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sushitrack-backend/database"
	"sushitrack-backend/middlewares"
	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

type ProductInput struct {
	Name         string `json:"name" validate:"required"`
	SalePrice    string `json:"sale_price" validate:"required"`
	PurchaseCost string `json:"purchase_cost"`
}

func CreateProduct(c *fiber.Ctx) error {
	var input ProductInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	salePrice, err := utils.ParseAmount(input.SalePrice)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if salePrice.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "sale price must not be negative")
	}

	product := models.Product{
		Name:      input.Name,
		SalePrice: salePrice,
	}
	if input.PurchaseCost != "" {
		cost, err := utils.ParseAmount(input.PurchaseCost)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		product.PurchaseCost = &cost
	}

	if err := database.RequestDB(c).Create(&product).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create product")
	}
	return c.JSON(product)
}

func GetProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := database.RequestDB(c).Order("name").Find(&products).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(products)
}

type ProductPatch struct {
	Name         *string `json:"name"`
	SalePrice    *string `json:"sale_price"`
	PurchaseCost *string `json:"purchase_cost"`
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var patch ProductPatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&patch)

	updates := utils.UpdatesFromPtrDTO(&patch, map[string]string{
		"sale_price":    "-",
		"purchase_cost": "-",
	})
	if patch.SalePrice != nil {
		price, err := utils.ParseAmount(*patch.SalePrice)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if price.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "sale price must not be negative")
		}
		updates["sale_price"] = price
	}
	if patch.PurchaseCost != nil {
		if *patch.PurchaseCost == "" {
			// empty string clears the optional cost
			updates["purchase_cost"] = nil
		} else {
			cost, err := utils.ParseAmount(*patch.PurchaseCost)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			updates["purchase_cost"] = cost
		}
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	db := database.RequestDB(c)
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "could not load product")
	}
	if err := db.Model(&product).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update product")
	}
	return c.JSON(product)
}
