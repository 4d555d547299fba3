package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"facturacion_movil/internal/adapter/http/handlers/mocks"
	"facturacion_movil/internal/cache"
	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase"
	"facturacion_movil/internal/usecase/interfaces"
)

func newDocumentsRouter(uc usecase.ISalesUseCase) *gin.Engine {
	h := NewDocumentsHandler(uc)
	router := gin.New()
	router.GET("/v1/sales", h.ListRecentSales)
	router.GET("/v1/documents/folio/:folio", h.GetByFolio)
	router.GET("/v1/documents/:id", h.GetByID)
	router.GET("/v1/documents/:id/pdf", h.GetPDFURL)
	router.POST("/v1/invoices", h.CreateInvoice)
	router.POST("/v1/tickets", h.CreateTicket)
	return router
}

func TestDocumentsHandlerListRecentSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISalesUseCase(ctrl)
	router := newDocumentsRouter(uc)

	uc.EXPECT().ListRecentSales(gomock.Any(), false).Return(cache.Result[[]entities.Document]{
		Value: []entities.Document{
			{ID: 42, AssignedFolio: "1234", State: entities.DocumentState{Code: "ACE", Label: "Aceptado"}, Total: 59490},
		},
		Tier: cache.TierNetwork,
	}, nil)

	w := performRequest(router, http.MethodGet, "/v1/sales", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Documents []struct {
			ID            int64  `json:"id"`
			AssignedFolio string `json:"assignedFolio"`
			StateCode     string `json:"stateCode"`
		} `json:"documents"`
		Source string `json:"source"`
	}
	decodeBody(t, w, &body)
	if len(body.Documents) != 1 || body.Documents[0].StateCode != "ACE" || body.Source != "network" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestDocumentsHandlerGetByFolio(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().GetInvoiceByFolio(gomock.Any(), "1234").Return(cache.Result[entities.Document]{
			Value: entities.Document{ID: 42, AssignedFolio: "1234", Validation: "abc123"},
			Tier:  cache.TierPersistent,
		}, nil)

		w := performRequest(router, http.MethodGet, "/v1/documents/folio/1234", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Document entities.Document `json:"document"`
			Source   string            `json:"source"`
		}
		decodeBody(t, w, &body)
		if body.Document.ID != 42 || body.Source != "persistent" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown folio is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().GetInvoiceByFolio(gomock.Any(), "9999").
			Return(cache.Result[entities.Document]{}, fmt.Errorf("folio 9999: %w", usecase.ErrDocumentNotFound))

		w := performRequest(router, http.MethodGet, "/v1/documents/folio/9999", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var body struct {
			Code string `json:"code"`
		}
		decodeBody(t, w, &body)
		if body.Code != "DOCUMENT_NOT_FOUND" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})
}

func TestDocumentsHandlerGetByID(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().GetInvoiceByID(gomock.Any(), int64(42)).Return(cache.Result[entities.Document]{
			Value: entities.Document{ID: 42, AssignedFolio: "1234"},
			Tier:  cache.TierMemory,
		}, nil)

		w := performRequest(router, http.MethodGet, "/v1/documents/42", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-numeric id never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		w := performRequest(router, http.MethodGet, "/v1/documents/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDocumentsHandlerGetPDFURL(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().DocumentPDFURL(int64(42), "abc123").
			Return("http://facturamovil.cl/document/toPdf/42?v=abc123")

		w := performRequest(router, http.MethodGet, "/v1/documents/42/pdf?v=abc123", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			URL string `json:"url"`
		}
		decodeBody(t, w, &body)
		if body.URL != "http://facturamovil.cl/document/toPdf/42?v=abc123" {
			t.Fatalf("unexpected url: %s", body.URL)
		}
	})

	t.Run("missing validation code is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		w := performRequest(router, http.MethodGet, "/v1/documents/42/pdf", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Code string `json:"code"`
		}
		decodeBody(t, w, &body)
		if body.Code != "MISSING_VALIDATION_CODE" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})
}

func TestDocumentsHandlerCreateInvoice(t *testing.T) {
	validPayload := `{
		"client": {"id": 7, "code": "76.543.210-K", "name": "Comercial Andina SpA"},
		"products": [{"code": "P-001", "name": "Café molido", "price": 4990}],
		"date": "2025-06-15"
	}`

	t.Run("formats and submits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub entities.InvoiceSubmission) (entities.Document, error) {
				if sub.Client.Code != "76.543.210-K" {
					t.Fatalf("unexpected receiver: %+v", sub.Client)
				}
				if len(sub.Details) != 1 || sub.Details[0].Position != 1 {
					t.Fatalf("unexpected lines: %+v", sub.Details)
				}
				return entities.Document{ID: 99, AssignedFolio: "1300"}, nil
			})

		w := performRequest(router, http.MethodPost, "/v1/invoices", strings.NewReader(validPayload))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var body struct {
			ID            int64  `json:"id"`
			AssignedFolio string `json:"assignedFolio"`
		}
		decodeBody(t, w, &body)
		if body.ID != 99 || body.AssignedFolio != "1300" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing client never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		payload := `{"products": [{"code": "P-001", "name": "Café molido", "price": 4990}]}`
		w := performRequest(router, http.MethodPost, "/v1/invoices", strings.NewReader(payload))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Code string `json:"code"`
		}
		decodeBody(t, w, &body)
		if body.Code != "MISSING_CLIENT" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})

	t.Run("no product lines never reaches the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		payload := `{"client": {"code": "76.543.210-K", "name": "Comercial Andina SpA"}}`
		w := performRequest(router, http.MethodPost, "/v1/invoices", strings.NewReader(payload))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Code string `json:"code"`
		}
		decodeBody(t, w, &body)
		if body.Code != "NO_PRODUCT_LINES" {
			t.Fatalf("unexpected error code: %s", body.Code)
		}
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		w := performRequest(router, http.MethodPost, "/v1/invoices", strings.NewReader(`{not json`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upstream failure is 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(entities.Document{}, &interfaces.APIError{StatusCode: 500, Message: "boom"})

		w := performRequest(router, http.MethodPost, "/v1/invoices", strings.NewReader(validPayload))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestDocumentsHandlerCreateTicket(t *testing.T) {
	t.Run("client is optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		uc.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub entities.TicketSubmission) (entities.Document, error) {
				if sub.Client.Code != usecase.FinalConsumerCode {
					t.Fatalf("expected final-consumer receiver, got %+v", sub.Client)
				}
				if sub.TicketType != entities.DocumentTypeTicket {
					t.Fatalf("expected default ticket type, got %s", sub.TicketType)
				}
				return entities.Document{ID: 100, AssignedFolio: "7702"}, nil
			})

		payload := `{"products": [{"code": "P-002", "name": "Té verde", "price": 2490}]}`
		w := performRequest(router, http.MethodPost, "/v1/tickets", strings.NewReader(payload))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("no product lines is 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISalesUseCase(ctrl)
		router := newDocumentsRouter(uc)

		w := performRequest(router, http.MethodPost, "/v1/tickets", strings.NewReader(`{}`))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
