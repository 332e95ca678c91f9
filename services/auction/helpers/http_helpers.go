package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-client/internal/auctionerrors"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps client-layer errors to an HTTP status and the
// message shown to the operator.
func MapErrorToHTTP(err error) (int, string) {
	message := auctionerrors.DisplayMessage(err)

	var validationErr *auctionerrors.ValidationError
	var apiErr *auctionerrors.APIError
	var networkErr *auctionerrors.NetworkError
	var malformedErr *auctionerrors.MalformedResponseError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, message
	case errors.Is(err, auctionerrors.ErrInvalidAdminCredentials),
		errors.Is(err, auctionerrors.ErrNotAuthenticated),
		errors.Is(err, auctionerrors.ErrNoSession),
		errors.Is(err, auctionerrors.ErrCorruptSession):
		return http.StatusUnauthorized, message
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, message
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode, message
		}
		return http.StatusBadGateway, message
	case errors.As(err, &networkErr), errors.As(err, &malformedErr):
		return http.StatusBadGateway, message
	case errors.Is(err, auctionerrors.ErrCreateAuctionFailed),
		errors.Is(err, auctionerrors.ErrBidFailed),
		errors.Is(err, auctionerrors.ErrCancelFailed),
		errors.Is(err, auctionerrors.ErrRefreshFailed),
		errors.Is(err, auctionerrors.ErrNotificationsFailed):
		return http.StatusBadGateway, message
	default:
		return http.StatusInternalServerError, message
	}
}

// FieldErrors returns the per-field messages of a validation error, if any.
func FieldErrors(err error) map[string]string {
	var validationErr *auctionerrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}

// HandleServiceError writes the mapped error response and logs it.
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, err, message, FieldErrors(err))

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["status"] = status
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
		return
	}
	utils.Warn(handlerName+": request rejected", ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
