package catalog

import (
	"image-rotator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/sync", h.HandleSync)
	group.Get("/folders", h.HandleFolders)
}

// HandleSync reconciles the catalog against the remote library.
// @Summary Sync Catalog
// @Description Diff the remote image library against the catalog and apply additions/removals.
// @Tags catalog
// @Produce json
// @Success 200 {object} Plan "Applied plan"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	plan, err := h.service.Sync(c.Context())
	if err != nil {
		l.Error("Catalog sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "catalog sync failed",
		})
	}

	return c.JSON(plan)
}

// HandleFolders lists catalog folders with image counts.
// @Summary List Folders
// @Description List all catalog folders with their current image counts.
// @Tags catalog
// @Produce json
// @Success 200 {array} FolderSummary "Folders"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/folders [get]
func (h *Handler) HandleFolders(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	folders, err := h.service.Folders(c.Context())
	if err != nil {
		l.Error("Folder listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(folders)
}
