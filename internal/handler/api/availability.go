package api

import (
	"net/http"

	reqdto "sportshub/internal/handler/dto/request"
	resdto "sportshub/internal/handler/dto/response"
	"sportshub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Check availability
// @Description Check whether a resource is free for a window and quote its price. A taken slot is reported, not rejected.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /availability [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	quote, err := h.q.Check(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Availability check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(quote))
}
