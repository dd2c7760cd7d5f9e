package api

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"sportshub/internal/handler/httperr"
	"sportshub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type ErrorDetail struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type errorMapping struct {
	target error
	status int
	kind   string
}

// Order matters only for errors carrying more than one mark.
var errorMappings = []errorMapping{
	{errs.ErrInvalidWindow, http.StatusBadRequest, "invalid_window"},
	{errs.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{errs.ErrInvalidInstallments, http.StatusBadRequest, "invalid_installments"},
	{errs.ErrValidation, http.StatusBadRequest, "validation"},
	{errs.ErrInvalidResource, http.StatusUnprocessableEntity, "invalid_resource"},
	{errs.ErrResourceInactive, http.StatusUnprocessableEntity, "resource_inactive"},
	{errs.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_transition"},
	{errs.ErrOverpayment, http.StatusUnprocessableEntity, "overpayment"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "slot_unavailable"},
	{errs.ErrAlreadyCancelled, http.StatusConflict, "already_cancelled"},
	{errs.ErrClassFull, http.StatusConflict, "class_full"},
	{errs.ErrAlreadyEnrolled, http.StatusConflict, "already_enrolled"},
	{errs.ErrSubscriptionExists, http.StatusConflict, "subscription_exists"},
	{errs.ErrNotFound, http.StatusNotFound, "not_found"},
	{errs.ErrForbidden, http.StatusForbidden, "forbidden"},
}

func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			return m.status, m.kind
		}
	}
	return http.StatusInternalServerError, "internal"
}

// abortWithDomainError maps a use-case error onto the response. Internal
// failures keep their cause out of the body.
func abortWithDomainError(c *gin.Context, err error, msg string) {
	status, kind := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), msg, "error", err)
		httperr.AbortWithError(c, status, err, "Internal server error", ErrorDetail{Kind: kind})
		return
	}
	reason := errs.Reason(err)
	if reason == "" {
		reason = err.Error()
	}
	httperr.AbortWithError(c, status, err, msg, ErrorDetail{Kind: kind, Reason: reason})
}

// abortWithBindError reports malformed bodies and params as 400 with the
// offending fields when the validator names them.
func abortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", ErrorDetail{Kind: "validation", Reason: err.Error()})
}

// validation errors name fields by their json key
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

var errUnauthenticated = errs.New("request is not authenticated")

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
