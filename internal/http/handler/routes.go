package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docindex/internal/service"
)

// Options tunes RegisterRoutes.
type Options struct {
	// MaxUploadBytes caps multipart uploads. 0 disables the handler check;
	// the app-wide Fiber body limit still applies.
	MaxUploadBytes int64
	// Gatherer, when set, is exposed on GET /metrics.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP to service calls; all rules live in the service layer.
func RegisterRoutes(app *fiber.App, p Pinger, docSvc service.DocumentService, fileSvc service.FileService, opts Options) {
	app.Get("/health", HealthCheck(p))
	app.Get("/healthz", LivenessProbe())

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	docs := app.Group("/documents")
	docs.Post("/", CreateDocument(docSvc))
	docs.Post("/upload", UploadDocument(docSvc, opts.MaxUploadBytes))
	// Fixed paths must be registered before /:id.
	docs.Get("/search", SearchDocuments(docSvc))
	docs.Get("/recent", ListRecentDocuments(docSvc))
	docs.Get("/:id", GetDocument(docSvc))
	docs.Patch("/:id", UpdateDocument(docSvc))
	docs.Delete("/:id", DeleteDocument(docSvc))

	app.Get("/categories", ListCategories(docSvc))
	app.Get("/teams", ListTeams(docSvc))
	app.Get("/projects", ListProjects(docSvc))

	files := app.Group("/files")
	files.Post("/upload-url", CreateUploadURL(fileSvc))
	files.Get("/:storageId/url", GetFileURL(fileSvc))
}
