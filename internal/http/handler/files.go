package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"docindex/internal/service"
)

type uploadURLRequest struct {
	FileName string `json:"fileName"`
}

// CreateUploadURL issues a presigned PUT target for a new blob.
//
// @Summary Create an upload URL
// @Tags files
// @Accept json
// @Produce json
// @Param request body uploadURLRequest false "Original file name"
// @Success 200 {object} service.UploadHandle
// @Failure 503 {object} errorPayload
// @Router /files/upload-url [post]
func CreateUploadURL(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req uploadURLRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
			}
		}
		h, err := files.CreateUploadURL(c.UserContext(), req.FileName)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(h)
	}
}

// GetFileURL resolves a storage ID to a presigned download URL.
// Storage IDs contain slashes, so clients send them path-escaped.
//
// @Summary Resolve a download URL
// @Tags files
// @Produce json
// @Param storageId path string true "Path-escaped storage ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /files/{storageId}/url [get]
func GetFileURL(files service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := url.PathUnescape(c.Params("storageId"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid storage id")
		}
		u, err := files.ResolveDownloadURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if u == "" {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		return c.JSON(fiber.Map{"url": u})
	}
}
