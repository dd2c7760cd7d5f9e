package api

import (
	"net/http"

	reqdto "sportshub/internal/handler/dto/request"
	resdto "sportshub/internal/handler/dto/response"
	"sportshub/internal/handler/middleware"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary Subscribe to plan
// @Description Start a pending subscription and bill its first cycle
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubscribeRequest true "Subscribe request"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	result, err := h.cmds.Subscribe(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		abortWithDomainError(c, err, "Subscribe failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubscriptionResult(result))
}

// @Summary Cancel subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.CancelSubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.CancelSubscription(c.Request.Context(), id, actor)
	if err != nil {
		abortWithDomainError(c, err, "Cancel subscription failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelSubscription(result))
}

// @Summary Current subscription
// @Description The caller's active or pending subscription with its event history
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CurrentSubscriptionResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/current [get]
func (h *SubscriptionHandler) Current(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	view, err := h.q.Current(c.Request.Context(), actor.ID)
	if err != nil {
		abortWithDomainError(c, err, "Get subscription failed")
		return
	}
	resp, err := resdto.FromSubscriptionView(view)
	if err != nil {
		abortWithDomainError(c, err, "Failed to render subscription")
		return
	}
	c.JSON(http.StatusOK, resp)
}
