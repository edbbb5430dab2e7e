package documents

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

// RenderInvoicePDF lays out a persisted invoice as an A4 document. The engine
// only produces totals and metadata; everything visual lives here. Expects
// inv.Store to be preloaded.
func RenderInvoicePDF(inv *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "FACTURE / INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	writeLine(pdf, fmt.Sprintf("Invoice no: %s", inv.InvoiceNumber))
	writeLine(pdf, fmt.Sprintf("Issue date: %s", utils.FormatDate(time.Time(inv.IssueDate))))
	writeLine(pdf, fmt.Sprintf("Due date: %s", utils.FormatDate(time.Time(inv.DueDate))))
	writeLine(pdf, fmt.Sprintf("Store: %s", inv.Store.Name))
	if inv.Store.Address != "" {
		writeLine(pdf, inv.Store.Address)
	}
	writeLine(pdf, fmt.Sprintf("Margin: %s%%", inv.Store.MarginPercent.StringFixed(2)))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	writeLine(pdf, "Totals")
	pdf.SetFont("Helvetica", "", 12)
	writeLine(pdf, fmt.Sprintf("Net (deliveries - recoveries): %s EUR", utils.FormatAmount(inv.TotalNet)))
	writeLine(pdf, fmt.Sprintf("VAT: %s EUR", utils.FormatAmount(inv.TotalTax)))
	writeLine(pdf, fmt.Sprintf("Total due: %s EUR", utils.FormatAmount(inv.TotalGross)))
	pdf.Ln(6)

	writeLine(pdf, "Payment details:")
	writeLine(pdf, fmt.Sprintf("IBAN: %s", envOr("INVOICE_IBAN", "BE00 0000 0000 0000")))
	writeLine(pdf, fmt.Sprintf("Please mention reference: %s", inv.InvoiceNumber))
	pdf.Ln(8)

	pdf.CellFormat(0, 8, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
