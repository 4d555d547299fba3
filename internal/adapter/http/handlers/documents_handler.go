package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "facturacion_movil/internal/adapter/http/dto/request"
	response "facturacion_movil/internal/adapter/http/dto/response"
	"facturacion_movil/internal/usecase"
	"facturacion_movil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)

// DocumentsHandler serves recent sales, single-document resolution, PDF
// links and the invoice/ticket submission endpoints.

type DocumentsHandler struct {
	usecase usecase.ISalesUseCase
}

func NewDocumentsHandler(uc usecase.ISalesUseCase) *DocumentsHandler {
	return &DocumentsHandler{usecase: uc}
}

// ListRecentSales returns the company's last issued documents.
func (h *DocumentsHandler) ListRecentSales(c *gin.Context) {
	refresh := boolQuery(c, "refresh")

	res, err := h.usecase.ListRecentSales(c.Request.Context(), refresh)
	if err != nil {
		log.Printf("[documents][handler] list sales failed err=%v", err)
		writeAppError(c, mapDocumentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSalesResult(res))
}

// GetByFolio returns full document detail for a folio.
func (h *DocumentsHandler) GetByFolio(c *gin.Context) {
	folio := c.Param("folio")

	res, err := h.usecase.GetInvoiceByFolio(c.Request.Context(), folio)
	if err != nil {
		log.Printf("[documents][handler] get-by-folio failed folio=%s err=%v", folio, err)
		writeAppError(c, mapDocumentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentResult(res))
}

// GetByID resolves a document by internal id, falling back to a
// recent-sales scan when no direct cache entry exists.
func (h *DocumentsHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_DOCUMENT_ID", "Document id must be numeric", http.StatusBadRequest))
		return
	}

	res, err := h.usecase.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[documents][handler] get-by-id failed id=%d err=%v", id, err)
		writeAppError(c, mapDocumentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentResult(res))
}

// GetPDFURL composes the public PDF link for a document. No upstream call.
func (h *DocumentsHandler) GetPDFURL(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeAppError(c, pkg.NewDomainErrorSimple("INVALID_DOCUMENT_ID", "Document id must be numeric", http.StatusBadRequest))
		return
	}
	validation := strings.TrimSpace(c.Query("v"))
	if validation == "" {
		writeAppError(c, pkg.NewDomainErrorSimple("MISSING_VALIDATION_CODE", "Validation code (v) is required", http.StatusBadRequest))
		return
	}

	c.JSON(http.StatusOK, response.PDFURLResponse{URL: h.usecase.DocumentPDFURL(id, validation)})
}

// CreateInvoice formats and validates the loose POS payload, then submits
// the invoice. Validation failures never reach the network.
func (h *DocumentsHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidDocumentPayload)
		return
	}

	sub, err := usecase.FormatInvoice(payload.Client.ToEntity(), payload.ResolveProducts(), usecase.DocumentOptions{
		Date:          payload.Date,
		ExternalFolio: payload.ExternalFolio,
	})
	if err != nil {
		log.Printf("[documents][handler] invoice rejected before submit err=%v", err)
		writeAppError(c, mapValidationError(err))
		return
	}

	created, err := h.usecase.CreateInvoice(c.Request.Context(), sub)
	if err != nil {
		log.Printf("[documents][handler] create invoice failed err=%v", err)
		writeAppError(c, mapDocumentError(err))
		return
	}
	log.Printf("[documents][handler] create invoice success id=%d folio=%s", created.ID, created.AssignedFolio)

	c.JSON(http.StatusCreated, response.FromDocument(created))
}

// CreateTicket is the boleta counterpart; the client block is optional.
func (h *DocumentsHandler) CreateTicket(c *gin.Context) {
	var payload request.TicketCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidDocumentPayload)
		return
	}

	sub, err := usecase.FormatTicket(payload.Client.ToEntity(), payload.ResolveProducts(), usecase.DocumentOptions{
		Date:       payload.Date,
		TicketType: payload.TicketType,
	})
	if err != nil {
		log.Printf("[documents][handler] ticket rejected before submit err=%v", err)
		writeAppError(c, mapValidationError(err))
		return
	}

	created, err := h.usecase.CreateTicket(c.Request.Context(), sub)
	if err != nil {
		log.Printf("[documents][handler] create ticket failed err=%v", err)
		writeAppError(c, mapDocumentError(err))
		return
	}
	log.Printf("[documents][handler] create ticket success id=%d folio=%s", created.ID, created.AssignedFolio)

	c.JSON(http.StatusCreated, response.FromDocument(created))
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFolio):
		return pkg.NewDomainErrorSimple("INVALID_FOLIO", "Folio is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT_ID", "Document id must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoProductLines), errors.Is(err, usecase.ErrMissingTicketType):
		return mapValidationError(err)
	default:
		return mapUpstreamError(err)
	}
}

// mapValidationError gives each pre-submission check its own code and
// message so the POS can point at the missing field.
func mapValidationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingClient):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT", "A client is required for an invoice", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientMissingCode):
		return pkg.NewDomainErrorSimple("CLIENT_MISSING_CODE", "Client tax id (RUT) is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientMissingName):
		return pkg.NewDomainErrorSimple("CLIENT_MISSING_NAME", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoProductLines):
		return pkg.NewDomainErrorSimple("NO_PRODUCT_LINES", "At least one product line is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTicketType):
		return pkg.NewDomainErrorSimple("MISSING_TICKET_TYPE", "Ticket type code is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Document date must be YYYY-MM-DD", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
