package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"facturacion_movil/internal/adapter/http/handlers/mocks"
	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase"
	"facturacion_movil/internal/usecase/interfaces"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v body=%s", err, w.Body.String())
	}
}

func newCatalogRouter(uc usecase.ICatalogUseCase) *gin.Engine {
	h := NewCatalogHandler(uc)
	router := gin.New()
	router.GET("/v1/products", h.ListProducts)
	router.GET("/v1/products/search", h.SearchProducts)
	router.GET("/v1/clients", h.ListClients)
	return router
}

func TestCatalogHandlerListProducts(t *testing.T) {
	t.Run("returns the list with provenance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().ListProducts(gomock.Any(), false, "").Return(cache.Result[[]entities.Product]{
			Value: []entities.Product{{Code: "P-001", Name: "Café molido", Price: 4990}},
			Tier:  cache.TierMemory,
		}, nil)

		w := performRequest(router, http.MethodGet, "/v1/products", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body struct {
			Products []entities.Product `json:"products"`
			Source   string             `json:"source"`
			Stale    bool               `json:"stale"`
		}
		decodeBody(t, w, &body)
		if len(body.Products) != 1 || body.Source != "memory" || body.Stale {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("passes search and refresh through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().ListProducts(gomock.Any(), true, "ana").
			Return(cache.Result[[]entities.Product]{Tier: cache.TierNetwork}, nil)

		w := performRequest(router, http.MethodGet, "/v1/products?search=ana&refresh=true", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stale fallback is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().ListProducts(gomock.Any(), false, "").Return(cache.Result[[]entities.Product]{
			Value: []entities.Product{{Code: "P-001"}},
			Tier:  cache.TierPersistent,
			Stale: true,
		}, nil)

		w := performRequest(router, http.MethodGet, "/v1/products", nil)
		var body struct {
			Source string `json:"source"`
			Stale  bool   `json:"stale"`
		}
		decodeBody(t, w, &body)
		if body.Source != "persistent" || !body.Stale {
			t.Fatalf("expected stale persistent body, got %+v", body)
		}
	})

	t.Run("unreachable upstream is 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().ListProducts(gomock.Any(), false, "").
			Return(cache.Result[[]entities.Product]{}, &interfaces.APIError{Err: errors.New("connection refused")})

		w := performRequest(router, http.MethodGet, "/v1/products", nil)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}

		var body struct {
			Code string `json:"code"`
		}
		decodeBody(t, w, &body)
		if body.Code != "UPSTREAM_UNREACHABLE" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})

	t.Run("upstream failure is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().ListProducts(gomock.Any(), false, "").
			Return(cache.Result[[]entities.Product]{}, &interfaces.APIError{StatusCode: 500})

		w := performRequest(router, http.MethodGet, "/v1/products", nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestCatalogHandlerSearchProducts(t *testing.T) {
	t.Run("delegates the query term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().SearchProducts(gomock.Any(), "cafe").
			Return(cache.Result[[]entities.Product]{Tier: cache.TierNetwork}, nil)

		w := performRequest(router, http.MethodGet, "/v1/products/search?q=cafe", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty term is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		router := newCatalogRouter(uc)

		uc.EXPECT().SearchProducts(gomock.Any(), "").
			Return(cache.Result[[]entities.Product]{}, usecase.ErrEmptySearchTerm)

		w := performRequest(router, http.MethodGet, "/v1/products/search", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Code string `json:"code"`
		}
		decodeBody(t, w, &body)
		if body.Code != "EMPTY_SEARCH_TERM" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})
}

func TestCatalogHandlerListClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	router := newCatalogRouter(uc)

	uc.EXPECT().ListClients(gomock.Any(), false, "andina").Return(cache.Result[[]entities.Client]{
		Value: []entities.Client{{Code: "76.543.210-K", Name: "Comercial Andina SpA"}},
		Tier:  cache.TierNetwork,
	}, nil)

	w := performRequest(router, http.MethodGet, "/v1/clients?search=andina", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Clients []entities.Client `json:"clients"`
		Source  string            `json:"source"`
	}
	decodeBody(t, w, &body)
	if len(body.Clients) != 1 || body.Source != "network" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
