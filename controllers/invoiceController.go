package controllers

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sushitrack-backend/billing"
	"sushitrack-backend/database"
	"sushitrack-backend/documents"
	"sushitrack-backend/mailer"
	"sushitrack-backend/middlewares"
	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

// InvoiceRunInput is one billing run as submitted over HTTP. The delivery and
// recovery windows are independent; they may differ in length or not overlap.
type InvoiceRunInput struct {
	StoreID       uint   `json:"store_id" validate:"required"`
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	IssueDate     string `json:"issue_date" validate:"required"`
	DeliveryStart string `json:"delivery_start" validate:"required"`
	DeliveryEnd   string `json:"delivery_end" validate:"required"`
	RecoveryStart string `json:"recovery_start" validate:"required"`
	RecoveryEnd   string `json:"recovery_end" validate:"required"`
}

var (
	taxOnce sync.Once
	taxRate decimal.Decimal
)

// configuredTaxRate reads TAX_RATE once. Default is the 6% food VAT.
func configuredTaxRate() decimal.Decimal {
	taxOnce.Do(func() {
		taxRate = billing.DefaultTaxRate
		if v := strings.TrimSpace(os.Getenv("TAX_RATE")); v != "" {
			r, err := decimal.NewFromString(v)
			if err != nil || r.IsNegative() {
				logrus.WithField("TAX_RATE", v).Warn("ignoring invalid tax rate, using default")
				return
			}
			taxRate = r
		}
	})
	return taxRate
}

// CreateInvoice runs one billing run inside the request transaction. Two
// identical requests create two invoices: send an Idempotency-Key to guard
// against double billing.
func CreateInvoice(c *fiber.Ctx) error {
	var input InvoiceRunInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	issue, err := utils.ParseDate(input.IssueDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	deliveryRange, err := parseRange(input.DeliveryStart, input.DeliveryEnd)
	if err != nil {
		return err
	}
	recoveryRange, err := parseRange(input.RecoveryStart, input.RecoveryEnd)
	if err != nil {
		return err
	}

	engine := billing.NewEngine(billing.NewGormLedger(database.RequestDB(c)), configuredTaxRate())
	inv, err := engine.CreateInvoice(billing.CreateInvoiceInput{
		StoreID:       input.StoreID,
		InvoiceNumber: input.InvoiceNumber,
		IssueDate:     issue,
		DeliveryRange: deliveryRange,
		RecoveryRange: recoveryRange,
	})
	if err != nil {
		return err // central handler maps the billing taxonomy
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

func parseRange(start, end string) (billing.DateRange, error) {
	s, err := utils.ParseDate(start)
	if err != nil {
		return billing.DateRange{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	e, err := utils.ParseDate(end)
	if err != nil {
		return billing.DateRange{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return billing.DateRange{Start: s, End: e}, nil
}

func GetInvoices(c *fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), 50)
	q := database.RequestDB(c).Preload("Store").Order("id DESC").Limit(limit)
	if storeID := utils.ParseIntDefault(c.Query("store_id"), 0); storeID > 0 {
		q = q.Where("store_id = ?", storeID)
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load invoices")
	}
	return c.JSON(invoices)
}

func GetInvoice(c *fiber.Ctx) error {
	inv, err := loadInvoice(c)
	if err != nil {
		return err
	}
	return c.JSON(inv)
}

// InvoicePDF streams the persisted invoice as a PDF document.
func InvoicePDF(c *fiber.Ctx) error {
	inv, err := loadInvoice(c)
	if err != nil {
		return err
	}
	pdf, err := documents.RenderInvoicePDF(inv)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render invoice")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s.pdf", inv.InvoiceNumber))
	return c.Send(pdf)
}

type EmailInvoiceInput struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// EmailInvoice renders the invoice PDF and mails it. The destination falls
// back to the store's notification address when the body carries none.
func EmailInvoice(c *fiber.Ctx) error {
	inv, err := loadInvoice(c)
	if err != nil {
		return err
	}

	var input EmailInvoiceInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	to := strings.TrimSpace(input.Email)
	if to == "" {
		to = strings.TrimSpace(inv.Store.NotificationEmail)
	}
	if to == "" {
		return fiber.NewError(fiber.StatusBadRequest, "no destination email address")
	}

	pdf, err := documents.RenderInvoicePDF(inv)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render invoice")
	}
	if err := mailer.SendInvoice(to, inv, pdf); err != nil {
		logrus.WithError(err).WithField("invoice", inv.InvoiceNumber).Error("invoice email failed")
		return fiber.NewError(fiber.StatusBadGateway, "could not send invoice email")
	}
	return c.JSON(fiber.Map{"message": "invoice sent", "to": to})
}

func loadInvoice(c *fiber.Ctx) (*models.Invoice, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}
	var inv models.Invoice
	if err := database.RequestDB(c).Preload("Store").First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "invoice not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "could not load invoice")
	}
	return &inv, nil
}
