package delivery

import (
	"errors"

	"image-rotator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for deliveries.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the delivery routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/delivery")
	group.Post("/send", h.HandleSend)
	group.Post("/callback", h.HandleCallback)
}

// sendRequest is the payload for HandleSend.
type sendRequest struct {
	To     string `json:"to"`
	Folder string `json:"folder"`
}

// HandleSend sends a folder's current pick to a phone number.
// @Summary Send Daily Image
// @Description Send one of today's picked images for a folder via MMS.
// @Tags delivery
// @Accept json
// @Produce json
// @Param request body sendRequest true "Recipient and folder"
// @Success 200 {object} map[string]string "Provider message id"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /delivery/send [post]
func (h *Handler) HandleSend(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req sendRequest
	if err := c.BodyParser(&req); err != nil || req.To == "" || req.Folder == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "\"to\" and \"folder\" are required fields",
		})
	}

	entry, err := h.service.SendDaily(c.Context(), req.To, req.Folder)
	if err != nil {
		if errors.Is(err, ErrNoPick) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Send failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to send image",
		})
	}

	return c.JSON(fiber.Map{"message_id": *entry.MessageID})
}

// HandleCallback receives provider delivery-status callbacks.
// @Summary Delivery Status Callback
// @Description Provider webhook reporting message delivery progress (form-encoded).
// @Tags delivery
// @Accept x-www-form-urlencoded
// @Produce json
// @Param MessageSid formData string true "Provider message id"
// @Param MessageStatus formData string true "Delivery status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /delivery/callback [post]
func (h *Handler) HandleCallback(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	messageID := c.FormValue("MessageSid")
	status := c.FormValue("MessageStatus")
	if messageID == "" || status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "MessageSid and MessageStatus are required",
		})
	}

	if err := h.service.RecordStatus(c.Context(), messageID, status); err != nil {
		l.Error("Status callback failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record delivery status",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
