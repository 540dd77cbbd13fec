package http

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/imagegen"
)

func TestMapDomainErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{errors.Wrap(domain.ErrSessionNotFound, "s-1"), http.StatusNotFound, "SESSION_NOT_FOUND"},
		{domain.ErrEmptyCart, http.StatusConflict, "EMPTY_CART"},
		{domain.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_QUANTITY"},
		{imagegen.ErrGenerationInFlight, http.StatusConflict, "GENERATION_IN_FLIGHT"},
		{imagegen.ErrMissingAPIKey, http.StatusServiceUnavailable, "AI_NOT_CONFIGURED"},
		{errors.Wrap(imagegen.ErrExternalService, "status 500"), http.StatusBadGateway, "AI_SERVICE_ERROR"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code := mapDomainErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}
