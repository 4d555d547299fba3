package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase/interfaces"
)

var ErrEmptySearchTerm = errors.New("empty search term")

// ICatalogUseCase exposes the product and client list operations.
//
// Both lists follow the key-per-term rule: the unfiltered list and every
// distinct search term get their own cache slot, so interleaved filtered and
// unfiltered reads never contaminate each other.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context, forceRefresh bool, term string) (cache.Result[[]entities.Product], error)
	SearchProducts(ctx context.Context, term string) (cache.Result[[]entities.Product], error)
	ListClients(ctx context.Context, forceRefresh bool, term string) (cache.Result[[]entities.Client], error)
}

type CatalogUseCase struct {
	api     interfaces.IInvoicingAPI
	cache   *cache.TieredCache
	session ISessionUseCase
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(api interfaces.IInvoicingAPI, tc *cache.TieredCache, session ISessionUseCase) *CatalogUseCase {
	return &CatalogUseCase{api: api, cache: tc, session: session}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context, forceRefresh bool, term string) (cache.Result[[]entities.Product], error) {
	term = strings.TrimSpace(term)
	res, err := cache.Resolve(ctx, u.cache, cache.ProductsKey(term), forceRefresh,
		func(ctx context.Context) ([]entities.Product, error) {
			return u.api.FetchProducts(ctx, u.session.Current(), term)
		})
	if err != nil {
		log.Printf("[catalog][usecase] list products failed term=%q err=%v", term, err)
		return res, err
	}
	return res, nil
}

// SearchProducts always bypasses the cache read path: search results are
// query-specific and expected to be fresh.
func (u *CatalogUseCase) SearchProducts(ctx context.Context, term string) (cache.Result[[]entities.Product], error) {
	if strings.TrimSpace(term) == "" {
		return cache.Result[[]entities.Product]{}, ErrEmptySearchTerm
	}
	return u.ListProducts(ctx, true, term)
}

func (u *CatalogUseCase) ListClients(ctx context.Context, forceRefresh bool, term string) (cache.Result[[]entities.Client], error) {
	term = strings.TrimSpace(term)
	res, err := cache.Resolve(ctx, u.cache, cache.ClientsKey(term), forceRefresh,
		func(ctx context.Context) ([]entities.Client, error) {
			return u.api.FetchClients(ctx, u.session.Current(), term)
		})
	if err != nil {
		log.Printf("[catalog][usecase] list clients failed term=%q err=%v", term, err)
		return res, err
	}
	return res, nil
}
