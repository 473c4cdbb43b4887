package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dawitk/portfolio-relay/internal/api/dto/common"
	"github.com/dawitk/portfolio-relay/internal/api/dto/v1/contact"
	"github.com/dawitk/portfolio-relay/internal/api/middleware"
	"github.com/dawitk/portfolio-relay/internal/api/validation"
	"github.com/dawitk/portfolio-relay/internal/logging"
	"github.com/dawitk/portfolio-relay/internal/sanitize"
	"github.com/dawitk/portfolio-relay/internal/service"
	"github.com/dawitk/portfolio-relay/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// maxMessageLinks is the link-spam ceiling for contact messages.
const maxMessageLinks = 2

type ContactHandler struct {
	telegramService *service.TelegramService
	validate        *validator.Validate
	logger          *logging.Logger
}

func NewContactHandler(telegramService *service.TelegramService) *ContactHandler {
	return &ContactHandler{
		telegramService: telegramService,
		validate:        validation.New(),
		logger:          logging.GetGlobalLogger(),
	}
}

// Submit relays a validated contact form submission to Telegram. The
// transport gates (content type, rate limit, body ceiling) have already run
// as route middleware.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := json.Unmarshal(middleware.RawBody(c), &req); err != nil {
		utils.HandleRequestError(c, common.ErrMalformedJSON, err)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		utils.HandleRequestError(c, common.NewValidationError(validation.FirstError(err)), err)
		return
	}

	// Honeypot: hidden field filled in by a bot. Respond with success so the
	// submitter can't tell it was detected, and never relay.
	if req.Website != "" {
		h.logger.Info("Honeypot triggered, dropping submission from %s", utils.ClientKey(c))
		utils.HandleSuccess(c)
		return
	}

	name := strings.TrimSpace(sanitize.Text(req.Name))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	message := strings.TrimSpace(sanitize.Text(req.Message))

	if sanitize.LinkCount(message) > maxMessageLinks {
		utils.HandleRequestError(c, common.ErrTooManyLinks, nil)
		return
	}

	if !h.telegramService.Configured() {
		utils.HandleRequestError(c, common.ErrServerMisconfigured, nil)
		return
	}

	text := service.FormatContactMessage(name, email, message, utils.ClientKey(c), time.Now())
	if err := h.telegramService.Send(c.Request.Context(), text); err != nil {
		utils.HandleRequestError(c, common.ErrRelayFailed, err)
		return
	}

	utils.HandleSuccess(c)
}
