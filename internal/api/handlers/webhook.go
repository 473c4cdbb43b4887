package handlers

import (
	"encoding/json"
	"errors"

	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/api/dto/v1/booking"
	"github.com/dawitk/portfolio-relay/internal/api/middleware"
	"github.com/dawitk/portfolio-relay/internal/logging"
	"github.com/dawitk/portfolio-relay/internal/service"
	"github.com/dawitk/portfolio-relay/internal/signature"
	"github.com/dawitk/portfolio-relay/internal/utils"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the hex HMAC-SHA256 signature over the raw body.
const SignatureHeader = "X-Cal-Signature-256"

type WebhookHandler struct {
	telegramService *service.TelegramService
	secret          string
	logger          *logging.Logger
}

// NewWebhookHandler creates the Cal.com webhook handler. An empty secret
// disables signature verification (open mode) - a deliberate operator
// choice, not a fallback.
func NewWebhookHandler(telegramService *service.TelegramService, secret string) *WebhookHandler {
	return &WebhookHandler{
		telegramService: telegramService,
		secret:          secret,
		logger:          logging.GetGlobalLogger(),
	}
}

// HandleCalcom processes Cal.com booking events and relays them to Telegram.
func (h *WebhookHandler) HandleCalcom(c *gin.Context) {
	rawBody := middleware.RawBody(c)

	if h.secret != "" {
		sig := c.GetHeader(SignatureHeader)
		if sig == "" {
			utils.HandleRequestError(c, common.ErrMissingSignature, nil)
			return
		}

		// Verification runs on the raw bytes captured before parsing; a
		// re-serialized body would not match the signature.
		if err := signature.Verify(h.secret, rawBody, sig); err != nil {
			if errors.Is(err, signature.ErrInvalidFormat) {
				utils.HandleRequestError(c, common.ErrInvalidSigFormat, err)
				return
			}
			utils.HandleRequestError(c, common.ErrInvalidSignature, err)
			return
		}
	}

	var event booking.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		utils.HandleRequestError(c, common.ErrMalformedJSON, err)
		return
	}

	// Unsupported kinds (payment triggers included) are acknowledged and
	// discarded unprocessed.
	if !event.TriggerEvent.Supported() {
		h.logger.Debug("Ignoring unsupported webhook event: %s", event.TriggerEvent)
		utils.HandleIgnored(c)
		return
	}

	if event.Payload == nil {
		utils.HandleRequestError(c, common.ErrMissingPayload, nil)
		return
	}

	if !h.telegramService.Configured() {
		utils.HandleRequestError(c, common.ErrServerMisconfigured, nil)
		return
	}

	text := service.FormatBookingMessage(event.TriggerEvent, event.Payload)
	if err := h.telegramService.Send(c.Request.Context(), text); err != nil {
		utils.HandleRequestError(c, common.ErrRelayFailed, err)
		return
	}

	utils.HandleSuccess(c)
}
