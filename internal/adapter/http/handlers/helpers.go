package handlers

import (
	"errors"
	"net/http"
	"strings"

	"facturacion_movil/internal/usecase/interfaces"
	"facturacion_movil/pkg"

	"github.com/gin-gonic/gin"
)

// boolQuery reads a query flag the way mobile clients send it.
func boolQuery(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// mapUpstreamError translates the shared fetch-error taxonomy. Handlers
// check their own sentinels first and fall back to this.
func mapUpstreamError(err error) *pkg.AppError {
	switch {
	case interfaces.IsNetworkFailure(err):
		return pkg.NewDomainError("UPSTREAM_UNREACHABLE", "Invoicing service unreachable and no cached data available", err, http.StatusServiceUnavailable)
	case interfaces.IsServerError(err):
		return pkg.NewDomainError("UPSTREAM_ERROR", "Invoicing service failed", err, http.StatusBadGateway)
	case interfaces.IsNotFound(err):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInvalidResponseShape):
		return pkg.NewDomainError("UPSTREAM_INVALID_RESPONSE", "Invoicing service returned an unexpected payload", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
