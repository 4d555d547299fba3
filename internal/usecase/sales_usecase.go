package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase/interfaces"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidFolio      = errors.New("invalid folio")
	ErrInvalidDocumentID = errors.New("invalid document id")
)

// ISalesUseCase exposes the issued-document operations: listing recent
// sales, resolving a single document, composing its PDF link and submitting
// new invoices/tickets.

type ISalesUseCase interface {
	ListRecentSales(ctx context.Context, forceRefresh bool) (cache.Result[[]entities.Document], error)
	GetInvoiceByFolio(ctx context.Context, folio string) (cache.Result[entities.Document], error)
	GetInvoiceByID(ctx context.Context, id int64) (cache.Result[entities.Document], error)
	CreateInvoice(ctx context.Context, sub entities.InvoiceSubmission) (entities.Document, error)
	CreateTicket(ctx context.Context, sub entities.TicketSubmission) (entities.Document, error)
	DocumentPDFURL(id int64, validation string) string
}

type SalesUseCase struct {
	api     interfaces.IInvoicingAPI
	cache   *cache.TieredCache
	session ISessionUseCase
}

var _ ISalesUseCase = (*SalesUseCase)(nil)

func NewSalesUseCase(api interfaces.IInvoicingAPI, tc *cache.TieredCache, session ISessionUseCase) *SalesUseCase {
	return &SalesUseCase{api: api, cache: tc, session: session}
}

func (u *SalesUseCase) ListRecentSales(ctx context.Context, forceRefresh bool) (cache.Result[[]entities.Document], error) {
	res, err := cache.Resolve(ctx, u.cache, cache.SalesKey(), forceRefresh,
		func(ctx context.Context) ([]entities.Document, error) {
			return u.api.FetchLastSales(ctx, u.session.Current())
		})
	if err != nil {
		log.Printf("[sales][usecase] list recent sales failed err=%v", err)
		return res, err
	}
	return res, nil
}

func (u *SalesUseCase) GetInvoiceByFolio(ctx context.Context, folio string) (cache.Result[entities.Document], error) {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return cache.Result[entities.Document]{}, ErrInvalidFolio
	}

	res, err := cache.Resolve(ctx, u.cache, cache.InvoiceFolioKey(folio), false,
		func(ctx context.Context) (entities.Document, error) {
			return u.api.FetchInvoiceInfo(ctx, u.session.Current(), folio)
		})
	if err != nil {
		if interfaces.IsNotFound(err) {
			return res, fmt.Errorf("folio %s: %w", folio, ErrDocumentNotFound)
		}
		log.Printf("[sales][usecase] get invoice by folio failed folio=%s err=%v", folio, err)
		return res, err
	}
	return res, nil
}

// GetInvoiceByID is a fallback resolution path. A direct by-id cache entry
// wins; otherwise the id is looked up in the recent-sales list, full details
// are fetched by that document's folio, and the result is cached under the
// by-id key too. An id absent from recent sales is an explicit not-found,
// never silently empty data.
func (u *SalesUseCase) GetInvoiceByID(ctx context.Context, id int64) (cache.Result[entities.Document], error) {
	if id <= 0 {
		return cache.Result[entities.Document]{}, ErrInvalidDocumentID
	}

	key := cache.InvoiceIDKey(id)
	if lookup := u.cache.Get(ctx, key); lookup.Tier != cache.TierMiss {
		var doc entities.Document
		if err := json.Unmarshal(lookup.Data, &doc); err == nil {
			return cache.Result[entities.Document]{Value: doc, Tier: lookup.Tier}, nil
		}
	}

	sales, err := u.ListRecentSales(ctx, false)
	if err != nil {
		return cache.Result[entities.Document]{}, err
	}

	var folio string
	for _, doc := range sales.Value {
		if doc.ID == id {
			folio = doc.AssignedFolio
			break
		}
	}
	if folio == "" {
		return cache.Result[entities.Document]{}, fmt.Errorf("id %d: %w", id, ErrDocumentNotFound)
	}

	res, err := u.GetInvoiceByFolio(ctx, folio)
	if err != nil {
		return res, err
	}

	if data, merr := json.Marshal(res.Value); merr == nil {
		if serr := u.cache.Set(ctx, key, data); serr != nil {
			log.Printf("[sales][usecase] by-id cache write failed id=%d err=%v", id, serr)
		}
	}
	return res, nil
}

// CreateInvoice submits an invoice and, on success, purges the recent-sales
// cache so the next list read fetches fresh data.
func (u *SalesUseCase) CreateInvoice(ctx context.Context, sub entities.InvoiceSubmission) (entities.Document, error) {
	if len(sub.Details) == 0 {
		return entities.Document{}, ErrNoProductLines
	}

	log.Printf("[sales][usecase] create invoice start client_code=%s lines=%d", sub.Client.Code, len(sub.Details))
	doc, err := u.api.SubmitInvoice(ctx, u.session.Current(), sub)
	if err != nil {
		log.Printf("[sales][usecase] create invoice failed err=%v", err)
		return entities.Document{}, err
	}

	u.invalidateSales(ctx)
	log.Printf("[sales][usecase] create invoice success id=%d folio=%s", doc.ID, doc.AssignedFolio)
	return doc, nil
}

// CreateTicket submits a boleta; same invalidation rule as CreateInvoice.
func (u *SalesUseCase) CreateTicket(ctx context.Context, sub entities.TicketSubmission) (entities.Document, error) {
	if len(sub.Details) == 0 {
		return entities.Document{}, ErrNoProductLines
	}
	if strings.TrimSpace(sub.TicketType) == "" {
		return entities.Document{}, ErrMissingTicketType
	}

	log.Printf("[sales][usecase] create ticket start type=%s lines=%d", sub.TicketType, len(sub.Details))
	doc, err := u.api.SubmitTicket(ctx, u.session.Current(), sub)
	if err != nil {
		log.Printf("[sales][usecase] create ticket failed err=%v", err)
		return entities.Document{}, err
	}

	u.invalidateSales(ctx)
	log.Printf("[sales][usecase] create ticket success id=%d folio=%s", doc.ID, doc.AssignedFolio)
	return doc, nil
}

func (u *SalesUseCase) DocumentPDFURL(id int64, validation string) string {
	return u.api.DocumentPDFURL(id, validation)
}

func (u *SalesUseCase) invalidateSales(ctx context.Context) {
	if err := u.cache.PurgeKind(ctx, cache.KindSales); err != nil {
		log.Printf("[sales][usecase] sales cache purge failed err=%v", err)
	}
}
