package handlers

import (
	"errors"
	"net/http"

	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/metrics"
	"hackathon-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives identity provider deliveries
type WebhookHandler struct {
	identityService service.IdentityServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(identityService service.IdentityServiceInterface) *WebhookHandler {
	return &WebhookHandler{
		identityService: identityService,
	}
}

// HandleWebhook handles POST /webhook
// @Summary Receive identity provider events
// @Description Verifies the Svix signature and mirrors user.created, user.updated and user.deleted into the user table
// @Tags webhook
// @Accept json
// @Produce json
// @Param svix-id header string true "Delivery id"
// @Param svix-timestamp header string true "Delivery timestamp"
// @Param svix-signature header string true "Delivery signature"
// @Success 200 {object} service.WebhookResponse "Event processed or ignored"
// @Failure 400 {object} ErrorResponse "Missing headers or invalid signature"
// @Failure 500 {object} ErrorResponse "Error processing event"
// @Router /webhook [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	response, err := h.identityService.HandleWebhook(c.Request.Context(), payload, c.Request.Header)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMissingWebhookHeaders):
			metrics.ObserveWebhook("", metrics.OutcomeRejected)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrMissingWebhookHeaders.Message})
		case apperrors.IsValidation(err):
			metrics.ObserveWebhook("", metrics.OutcomeRejected)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case apperrors.IsAuthentication(err):
			metrics.ObserveWebhook("", metrics.OutcomeRejected)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrInvalidSignature.Error()})
		default:
			metrics.ObserveWebhook("", metrics.OutcomeFailed)
			logger.FromGinContext(c).Errorf("Error processing webhook: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error processing event"})
		}
		return
	}

	outcome := metrics.OutcomeProcessed
	if response.Message == service.WebhookMessageIgnored {
		outcome = metrics.OutcomeIgnored
	}
	metrics.ObserveWebhook(response.Type, outcome)

	c.JSON(http.StatusOK, response)
}
