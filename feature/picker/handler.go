package picker

import (
	"image-rotator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for daily picks.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the picker routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/picks")
	group.Post("/rotate", h.HandleRotate)
	group.Get("/:folder", h.HandleTodaysPicks)
}

// HandleRotate runs the daily selection across all folders.
// @Summary Rotate Daily Picks
// @Description Clear yesterday's picks and select up to 3 images per folder.
// @Tags picks
// @Produce json
// @Success 200 {object} map[string]string "Rotation result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /picks/rotate [post]
func (h *Handler) HandleRotate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	if err := h.service.PickDaily(c.Context()); err != nil {
		l.Error("Daily selection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "daily selection failed",
		})
	}

	return c.JSON(fiber.Map{"status": "rotated"})
}

// HandleTodaysPicks returns today's picks for a folder, padded to 3 entries.
// @Summary Get Today's Picks
// @Description Get today's picked images for a folder. Always returns 3 entries; empty URLs mark unfilled slots.
// @Tags picks
// @Produce json
// @Param folder path string true "Folder name"
// @Success 200 {object} map[string]any "Today's picks"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /picks/{folder} [get]
func (h *Handler) HandleTodaysPicks(c *fiber.Ctx) error {
	folder := c.Params("folder")
	l := logger.WithRayID(h.logger, c)

	picks, err := h.service.TodaysPicksByFolder(c.Context(), folder)
	if err != nil {
		l.Error("Pick lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"folder": folder,
		"images": picks,
	})
}
