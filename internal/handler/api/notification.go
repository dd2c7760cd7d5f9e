package api

import (
	"net/http"

	resdto "sportshub/internal/handler/dto/response"
	"sportshub/internal/handler/middleware"
	"sportshub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary List notifications
// @Description The caller's latest notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} object{notifications=[]resdto.NotificationResponse}
// @Failure 401 {object} httperr.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	items, err := h.q.List(c.Request.Context(), actor.ID, queryLimit(c))
	if err != nil {
		abortWithDomainError(c, err, "List notifications failed")
		return
	}
	resp, err := resdto.FromNotificationList(items)
	if err != nil {
		abortWithDomainError(c, err, "Failed to render notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": resp})
}
