package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"time"

	"sushitrack-backend/models"
	"sushitrack-backend/utils"
)

// SendInvoice mails the rendered invoice PDF as an attachment.
// SMTP settings come from MAIL_HOST, MAIL_PORT, MAIL_USER, MAIL_PASS and
// MAIL_FROM; auth is skipped when MAIL_USER is unset (local relay).
func SendInvoice(to string, inv *models.Invoice, pdf []byte) error {
	host := envOr("MAIL_HOST", "localhost")
	port := envOr("MAIL_PORT", "587")
	user := os.Getenv("MAIL_USER")
	pass := os.Getenv("MAIL_PASS")
	from := envOr("MAIL_FROM", "noreply@sosushi.be")

	subject := fmt.Sprintf("Your invoice %s", inv.InvoiceNumber)
	body := fmt.Sprintf("Please find attached invoice %s, due %s. Amount due: %s EUR.",
		inv.InvoiceNumber,
		utils.FormatDate(time.Time(inv.DueDate)),
		utils.FormatAmount(inv.TotalGross),
	)
	filename := fmt.Sprintf("%s.pdf", inv.InvoiceNumber)
	msg := buildMessage(from, to, subject, body, filename, pdf)

	addr := host + ":" + port
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("send invoice mail: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/mixed MIME message with one text part
// and one base64-encoded PDF attachment.
func buildMessage(from, to, subject, body, filename string, attachment []byte) []byte {
	const boundary = "sushitrack-invoice-boundary"

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/pdf\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", filename)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// wrap base64 at 76 chars per RFC 2045
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
