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

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a court or a personal session. A class_occurrence resource enrolls the caller instead.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		abortWithDomainError(c, err, "Create reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary Get reservation
// @Description Get a reservation with its charge
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithDomainError(c, err, "Get reservation failed")
		return
	}
	resp, err := resdto.FromReservationDetail(detail)
	if err != nil {
		abortWithDomainError(c, err, "Failed to render reservation")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my reservations
// @Description List the caller's reservations, newest first, with keyset pagination
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), actor.ID, cursor, queryLimit(c))
	if err != nil {
		abortWithDomainError(c, err, "List reservations failed")
		return
	}
	resp, err := resdto.FromReservationList(items, next)
	if err != nil {
		abortWithDomainError(c, err, "Failed to render reservations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel reservation
// @Description Cancel a reservation. A pending charge is cancelled with it; paid charges are left for refund handling.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.CancelReservation(c.Request.Context(), id, actor)
	if err != nil {
		abortWithDomainError(c, err, "Cancel reservation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelReservation(result))
}

// @Summary Change reservation status
// @Description Admin-only status transition (confirmed, completed, no_show, cancelled)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionReservationRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/status [post]
func (h *ReservationHandler) Transition(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	res, err := h.cmds.TransitionReservation(c.Request.Context(), id, req.Status, actor)
	if err != nil {
		abortWithDomainError(c, err, "Status change failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Enroll in class
// @Description Enroll the caller in a class occurrence
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class occurrence ID"
// @Param request body reqdto.EnrollRequest false "Enrollment notes"
// @Success 201 {object} resdto.ReservationResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /classes/occurrences/{id}/enrollments [post]
func (h *ReservationHandler) Enroll(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.EnrollRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithBindError(c, err)
			return
		}
	}
	result, err := h.cmds.Enroll(c.Request.Context(), req.ToInput(id), actor)
	if err != nil {
		abortWithDomainError(c, err, "Enrollment failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}
