package routes

import (
	"facturacion_movil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathClients   = "/clients"
	PathSales     = "/sales"
	PathDocuments = "/documents"
	PathSession   = "/session"
)

func addPOSRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, documentsHandler *handlers.DocumentsHandler, sessionHandler *handlers.SessionHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/search", catalogHandler.SearchProducts)
	}

	rg.GET(PathClients, catalogHandler.ListClients)
	rg.GET(PathSales, documentsHandler.ListRecentSales)

	documents := rg.Group(PathDocuments)
	{
		documents.GET("/folio/:folio", documentsHandler.GetByFolio)
		documents.GET("/:id", documentsHandler.GetByID)
		documents.GET("/:id/pdf", documentsHandler.GetPDFURL)
	}

	rg.POST("/invoices", documentsHandler.CreateInvoice)
	rg.POST("/tickets", documentsHandler.CreateTicket)

	session := rg.Group(PathSession)
	{
		session.PUT("", sessionHandler.Update)
		session.DELETE("", sessionHandler.Clear)
	}
}
