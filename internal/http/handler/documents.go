package handler

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"docindex/internal/model"
	"docindex/internal/search"
	"docindex/internal/service"
)

// CreateDocument indexes a document whose text was extracted by the client.
//
// @Summary Create a document
// @Tags documents
// @Accept json
// @Produce json
// @Param document body model.NewDocument true "Document"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /documents [post]
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NewDocument
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON document")
		}
		doc, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// UploadDocument stores the multipart "file" field in object storage and indexes it.
// Metadata comes from the remaining form fields; title and fileType default to the file name.
//
// @Summary Upload and index a file
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Param title formData string false "Title"
// @Param content formData string false "Extracted text"
// @Param fileType formData string false "File type"
// @Param uploadedBy formData string true "Uploader"
// @Param project formData string false "Project"
// @Param team formData string false "Team"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /documents/upload [post]
func UploadDocument(svc service.DocumentService, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if maxBytes > 0 && fh.Size > maxBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the upload limit")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		in := model.NewDocument{
			Title:      c.FormValue("title", fh.Filename),
			Content:    c.FormValue("content"),
			FileType:   c.FormValue("fileType", fileTypeOf(fh.Filename)),
			FileName:   fh.Filename,
			FileSize:   fh.Size,
			UploadedBy: c.FormValue("uploadedBy"),
			Project:    optionalForm(c, "project"),
			Team:       optionalForm(c, "team"),
		}

		doc, err := svc.Upload(c.UserContext(), f, in, ct)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// SearchDocuments ranks documents against q, or lists them newest first when q is empty.
//
// @Summary Search documents
// @Tags documents
// @Produce json
// @Param q query string false "Search text"
// @Param category query string false "Category filter"
// @Param team query string false "Team filter"
// @Param project query string false "Project filter"
// @Param fileType query string false "File type filter"
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {array} model.Document
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /documents/search [get]
func SearchDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := parseLimit(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		q := search.Query{
			Text: c.Query("q"),
			Filters: search.Filters{
				Category: c.Query("category"),
				Team:     c.Query("team"),
				Project:  c.Query("project"),
				FileType: c.Query("fileType"),
			},
			Limit: limit,
		}
		docs, err := svc.Search(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(docs))
	}
}

// ListRecentDocuments returns the most recently uploaded documents.
//
// @Summary Recent documents
// @Tags documents
// @Produce json
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {array} model.Document
// @Failure 400 {object} errorPayload
// @Router /documents/recent [get]
func ListRecentDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := parseLimit(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		docs, err := svc.ListRecent(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(nonNil(docs))
	}
}

// GetDocument returns one document.
//
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} model.Document
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if doc == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		}
		return c.JSON(doc)
	}
}

// UpdateDocument applies a partial update.
//
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param patch body model.DocumentPatch true "Fields to change"
// @Success 200 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [patch]
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch model.DocumentPatch
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		doc, err := svc.Update(c.UserContext(), c.Params("id"), patch)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document and its blob. Unknown IDs also yield 204.
//
// @Summary Delete a document
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 503 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListFacet serves one of the distinct-value facets (categories, teams, projects).
//
// @Summary List facet values
// @Tags facets
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
// @Router /teams [get]
// @Router /projects [get]
func ListFacet(list func(*fiber.Ctx) ([]string, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, err := list(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		if values == nil {
			values = []string{}
		}
		return c.JSON(values)
	}
}

// ListCategories serves GET /categories.
func ListCategories(svc service.DocumentService) fiber.Handler {
	return ListFacet(func(c *fiber.Ctx) ([]string, error) { return svc.ListCategories(c.UserContext()) })
}

// ListTeams serves GET /teams.
func ListTeams(svc service.DocumentService) fiber.Handler {
	return ListFacet(func(c *fiber.Ctx) ([]string, error) { return svc.ListTeams(c.UserContext()) })
}

// ListProjects serves GET /projects.
func ListProjects(svc service.DocumentService) fiber.Handler {
	return ListFacet(func(c *fiber.Ctx) ([]string, error) { return svc.ListProjects(c.UserContext()) })
}

// parseLimit reads ?limit=; an absent limit is 0, which the service treats as its default.
func parseLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func optionalForm(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}

func fileTypeOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

func nonNil(docs []model.Document) []model.Document {
	if docs == nil {
		return []model.Document{}
	}
	return docs
}
