package api

import (
	"net/http"

	resdto "sportshub/internal/handler/dto/response"
	"sportshub/internal/handler/middleware"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChargeHandler struct {
	cmds commands.PaymentCommands
	q    queries.ChargeQueries
}

func NewChargeHandler(cmds commands.PaymentCommands, q queries.ChargeQueries) *ChargeHandler {
	return &ChargeHandler{cmds: cmds, q: q}
}

// @Summary Get charge
// @Description Get a charge with its installments and payment attempts
// @Tags charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charge ID"
// @Success 200 {object} resdto.ChargeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /charges/{id} [get]
func (h *ChargeHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err, "Get charge failed")
		return
	}
	resp, err := resdto.FromChargeView(view)
	if err != nil {
		abortWithDomainError(c, err, "Failed to render charge")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Checkout charge
// @Description Open a payment attempt for the next unpaid installment
// @Tags charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charge ID"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /charges/{id}/checkout [post]
func (h *ChargeHandler) Checkout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payment, err := h.cmds.Checkout(c.Request.Context(), id, actor)
	if err != nil {
		abortWithDomainError(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(payment))
}
