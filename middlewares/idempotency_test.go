package middlewares_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sushitrack-backend/database"
	"sushitrack-backend/middlewares"
)

var keyColumns = []string{
	"id", "key", "request_hash", "method", "path",
	"response_status", "response_body", "created_at", "completed_at",
}

// newMockDB points database.DB at a sqlmock-backed connection for the test.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherAny))
	require.NoError(t, err)
	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = prev
		conn.Close()
	})
	return mock
}

func newApp(handlerRuns *int) *fiber.App {
	app := fiber.New()
	app.Use(middlewares.Idempotency())
	app.Post("/api/invoices", func(c *fiber.Ctx) error {
		*handlerRuns++
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"fresh": true})
	})
	return app
}

func requestHash(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{'\n'})
	h.Write([]byte(path))
	h.Write([]byte{'\n'})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func TestIdempotencyFirstRequestRunsHandlerAndStoresResponse(t *testing.T) {
	mock := newMockDB(t)
	runs := 0
	app := newApp(&runs)

	// Phase 1: lookup misses, pending record inserted
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(keyColumns))
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	// Phase 2: completed response written back
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := []byte(`{"store_id":1}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/invoices", bytes.NewReader(body))
	req.Header.Set("Idempotency-Key", "run-1")
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"fresh":true}`, string(got))
	require.Equal(t, 1, runs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyReplayReturnsStoredResponseWithoutHandler(t *testing.T) {
	mock := newMockDB(t)
	runs := 0
	app := newApp(&runs)

	body := []byte(`{"store_id":1,"invoice_number":"F-2025-001"}`)
	stored := []byte(`{"id":42,"total_gross":"33.92"}`)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(keyColumns).AddRow(
			1, "run-1", requestHash("POST", "/api/invoices", body), "POST", "/api/invoices",
			fiber.StatusCreated, stored, now, now,
		))
	mock.ExpectCommit()

	req := httptest.NewRequest(fiber.MethodPost, "/api/invoices", bytes.NewReader(body))
	req.Header.Set("Idempotency-Key", "run-1")
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, string(stored), string(got))

	// The replay must not re-run the billing handler or overwrite the record.
	require.Equal(t, 0, runs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencyKeyReuseWithDifferentBodyConflicts(t *testing.T) {
	mock := newMockDB(t)
	runs := 0
	app := newApp(&runs)

	original := []byte(`{"store_id":1}`)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnRows(
		sqlmock.NewRows(keyColumns).AddRow(
			1, "run-1", requestHash("POST", "/api/invoices", original), "POST", "/api/invoices",
			fiber.StatusCreated, []byte(`{}`), now, now,
		))
	mock.ExpectRollback()

	req := httptest.NewRequest(fiber.MethodPost, "/api/invoices", bytes.NewReader([]byte(`{"store_id":2}`)))
	req.Header.Set("Idempotency-Key", "run-1")
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	require.Equal(t, 0, runs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotencySkipsRequestsWithoutKey(t *testing.T) {
	_ = newMockDB(t) // no expectations: the DB must not be touched
	runs := 0
	app := newApp(&runs)

	req := httptest.NewRequest(fiber.MethodPost, "/api/invoices", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, 1, runs)
}
