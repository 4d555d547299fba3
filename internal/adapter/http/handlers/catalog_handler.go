package handlers

import (
	"errors"
	"log"
	"net/http"

	response "facturacion_movil/internal/adapter/http/dto/response"
	"facturacion_movil/internal/usecase"
	"facturacion_movil/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the product and client catalog endpoints.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts returns the (possibly cached) product list. ?search= scopes
// the list to a term, ?refresh=true bypasses the cache read path.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	term := c.Query("search")
	refresh := boolQuery(c, "refresh")

	res, err := h.usecase.ListProducts(c.Request.Context(), refresh, term)
	if err != nil {
		log.Printf("[catalog][handler] list products failed term=%q err=%v", term, err)
		writeAppError(c, mapCatalogError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProductsResult(res))
}

// SearchProducts always fetches fresh results for ?q=<term>.
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	term := c.Query("q")

	res, err := h.usecase.SearchProducts(c.Request.Context(), term)
	if err != nil {
		log.Printf("[catalog][handler] search products failed term=%q err=%v", term, err)
		writeAppError(c, mapCatalogError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProductsResult(res))
}

// ListClients mirrors ListProducts for the client catalog.
func (h *CatalogHandler) ListClients(c *gin.Context) {
	term := c.Query("search")
	refresh := boolQuery(c, "refresh")

	res, err := h.usecase.ListClients(c.Request.Context(), refresh, term)
	if err != nil {
		log.Printf("[catalog][handler] list clients failed term=%q err=%v", term, err)
		writeAppError(c, mapCatalogError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClientsResult(res))
}

func mapCatalogError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrEmptySearchTerm) {
		return pkg.NewDomainErrorSimple("EMPTY_SEARCH_TERM", "Search term is required", http.StatusBadRequest)
	}
	return mapUpstreamError(err)
}
