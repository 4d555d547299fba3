package handlers

import (
	"errors"
	"log"
	"net/http"

	request "facturacion_movil/internal/adapter/http/dto/request"
	response "facturacion_movil/internal/adapter/http/dto/response"
	"facturacion_movil/internal/usecase"
	"facturacion_movil/pkg"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes sign-in / company-switch and sign-out.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Update replaces the active session. The response cache is purged as a
// side effect; cached data belongs to the previous identity.
func (h *SessionHandler) Update(c *gin.Context) {
	var payload request.SessionUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Token and companyId are required", http.StatusBadRequest))
		return
	}

	if err := h.usecase.Update(c.Request.Context(), payload.ResolveToken(), payload.ResolveCompanyID()); err != nil {
		log.Printf("[session][handler] update failed err=%v", err)
		writeAppError(c, mapSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSession(h.usecase.Current()))
}

// Clear signs out: wipes the persisted session and all cached responses.
func (h *SessionHandler) Clear(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		log.Printf("[session][handler] clear failed err=%v", err)
		writeAppError(c, mapSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSession(h.usecase.Current()))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionToken):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_TOKEN", "Token is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionCompany):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_COMPANY", "Company id is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
