package report

import (
	"strconv"

	"image-rotator/core/logger"
	"image-rotator/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for delivery reports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/monthly", h.HandleMonthly)
	group.Post("/export", h.HandleExport)
}

// period reads month/year query params, defaulting to the current period.
func (h *Handler) period(c *fiber.Ctx) (string, int, error) {
	month, year := utils.CurrentPeriod()
	if m := c.Query("month"); m != "" {
		month = m
	}
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			return "", 0, fiber.NewError(fiber.StatusBadRequest, "year must be a number")
		}
		year = parsed
	}
	return month, year, nil
}

// HandleMonthly returns the ranked monthly delivery report.
// @Summary Monthly Report
// @Description Rank the period's confirmed deliveries by count, most delivered first.
// @Tags report
// @Produce json
// @Param month query string false "Month name (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {array} Row "Report rows"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/monthly [get]
func (h *Handler) HandleMonthly(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	month, year, err := h.period(c)
	if err != nil {
		return err
	}

	rows, err := h.service.MonthlyReport(c.Context(), month, year)
	if err != nil {
		l.Error("Monthly report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "monthly report failed",
		})
	}

	return c.JSON(rows)
}

// HandleExport builds the period's report and uploads it to the report sink.
// @Summary Export Report
// @Description Build the period's report and upload it as CSV to object storage.
// @Tags report
// @Produce json
// @Param month query string false "Month name (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} map[string]string "Exported report name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /report/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	month, year, err := h.period(c)
	if err != nil {
		return err
	}

	name, err := h.service.Export(c.Context(), month, year)
	if err != nil {
		l.Error("Report export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "report export failed",
		})
	}

	return c.JSON(fiber.Map{"report": name})
}
