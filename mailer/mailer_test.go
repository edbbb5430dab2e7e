package mailer

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	pdf := bytes.Repeat([]byte("%PDF fake content "), 20)
	msg := string(buildMessage("noreply@sosushi.be", "store@example.com",
		"Your invoice 2025-SSK-043", "body text", "2025-SSK-043.pdf", pdf))

	for _, want := range []string{
		"From: noreply@sosushi.be",
		"To: store@example.com",
		"Subject: Your invoice 2025-SSK-043",
		"Content-Type: multipart/mixed",
		"Content-Type: application/pdf",
		`filename="2025-SSK-043.pdf"`,
		"body text",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q", want)
		}
	}

	// base64 lines must stay within RFC 2045 length
	inAttachment := false
	for _, line := range strings.Split(msg, "\r\n") {
		if strings.Contains(line, "base64") {
			inAttachment = true
			continue
		}
		if inAttachment && len(line) > 78 {
			t.Fatalf("overlong base64 line: %d chars", len(line))
		}
	}
}
