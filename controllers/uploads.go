package controllers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir resolves where delivery/recovery photos are stored.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// savePhoto stores an optional multipart "photo" file under a UUID filename
// and returns the stored path, or "" when the request carries no photo.
func savePhoto(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return "", nil
	}
	dst := filepath.Join(UploadDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, dst); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "could not store photo")
	}
	return dst, nil
}
