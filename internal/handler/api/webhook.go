package api

import (
	"encoding/json"
	"io"
	"net/http"

	reqdto "sportshub/internal/handler/dto/request"
	resdto "sportshub/internal/handler/dto/response"
	"sportshub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxWebhookBody = 64 << 10

type WebhookHandler struct {
	cmds commands.PaymentCommands
}

func NewWebhookHandler(cmds commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment webhook
// @Description Provider callback reporting a payment status. Redelivered events are acknowledged without effect.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared secret"
// @Param request body reqdto.PaymentWebhookRequest true "Payment event"
// @Success 200 {object} resdto.PaymentEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /webhooks/payments [post]
func (h *WebhookHandler) Payments(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		abortWithBindError(c, err)
		return
	}
	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.ApplyPaymentEvent(c.Request.Context(), req.ToInput(raw))
	if err != nil {
		abortWithDomainError(c, err, "Payment event rejected")
		return
	}
	resp, err := resdto.FromPaymentEvent(result)
	if err != nil {
		abortWithDomainError(c, err, "Failed to render payment event")
		return
	}
	c.JSON(http.StatusOK, resp)
}
