package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/imagegen"
)

// mapDomainErrorToHTTP converts domain errors to a status and error code.
// Unknown errors map to 500.
func mapDomainErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND"
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND"
	case errors.Is(err, imagegen.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND"

	case errors.Is(err, repo.ErrSessionExists):
		return http.StatusConflict, "SESSION_EXISTS"
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	case errors.Is(err, imagegen.ErrGenerationInFlight):
		return http.StatusConflict, "GENERATION_IN_FLIGHT"

	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrEmptyProductID):
		return http.StatusBadRequest, "EMPTY_PRODUCT_ID"
	case errors.Is(err, domain.ErrEmptySessionID):
		return http.StatusBadRequest, "EMPTY_SESSION_ID"
	case errors.Is(err, domain.ErrUnknownShippingOption):
		return http.StatusBadRequest, "UNKNOWN_SHIPPING_OPTION"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "INVALID_AMOUNT"
	case errors.Is(err, imagegen.ErrEmptyPrompt):
		return http.StatusBadRequest, "EMPTY_PROMPT"
	case errors.Is(err, imagegen.ErrUnknownStyle):
		return http.StatusBadRequest, "UNKNOWN_STYLE"

	// ErrMissingAPIKey wraps ErrExternalService, so it is checked first.
	case errors.Is(err, imagegen.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, "AI_NOT_CONFIGURED"
	case errors.Is(err, imagegen.ErrGeneratorClosed):
		return http.StatusServiceUnavailable, "AI_UNAVAILABLE"
	case errors.Is(err, imagegen.ErrExternalService):
		return http.StatusBadGateway, "AI_SERVICE_ERROR"

	case errors.Is(err, domain.ErrNoTiersConfigured):
		return http.StatusInternalServerError, "NO_TIERS_CONFIGURED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// handleError writes the mapped error reply. Internal errors are logged and
// their message is not exposed.
func (h *Handler) handleError(c echo.Context, err error) error {
	status, code := mapDomainErrorToHTTP(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		h.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		if status == http.StatusInternalServerError {
			return failure(c, status, code, "internal server error")
		}
	}
	return failure(c, status, code, err.Error())
}

// errorHandler replaces echo's default so router errors (404, 405, body
// limit) use the same envelope.
func errorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(httpErr.Code)
			}
			_ = failure(c, httpErr.Code, "HTTP_ERROR", msg)
			return
		}

		logger.Error("unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		_ = failure(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
