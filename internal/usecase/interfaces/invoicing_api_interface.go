package interfaces

import (
	"context"

	"facturacion_movil/internal/domain/entities"
)

// IInvoicingAPI abstracts the remote invoicing backend (factura/boleta
// provider REST API).
//
// Every call takes the AuthSession explicitly: request building never reads
// hidden global state, and the company-scoped endpoints derive their path
// from the session's CompanyID.
type IInvoicingAPI interface {
	FetchProducts(ctx context.Context, s entities.AuthSession, term string) ([]entities.Product, error)
	FetchClients(ctx context.Context, s entities.AuthSession, term string) ([]entities.Client, error)
	FetchLastSales(ctx context.Context, s entities.AuthSession) ([]entities.Document, error)
	FetchInvoiceInfo(ctx context.Context, s entities.AuthSession, folio string) (entities.Document, error)
	SubmitInvoice(ctx context.Context, s entities.AuthSession, sub entities.InvoiceSubmission) (entities.Document, error)
	SubmitTicket(ctx context.Context, s entities.AuthSession, sub entities.TicketSubmission) (entities.Document, error)

	// DocumentPDFURL composes the public PDF link for an issued document.
	// Pure string composition; no network call is made.
	DocumentPDFURL(id int64, validation string) string
}
