package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Fixed auth header the invoicing backend expects on every call.
const authHeaderName = "FACMOV_T"

const (
	defaultBaseURL        = "http://facturamovil.cl"
	defaultTimeoutSeconds = 30
)

// APIClient is the single outbound gateway to the invoicing backend. It
// injects the session token on every request, applies one uniform timeout,
// parses JSON bodies and surfaces failures as *interfaces.APIError. It
// performs no retries; recovery from failures is the cache layer's job.

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IInvoicingAPI = (*APIClient)(nil)

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewAPIClientFromEnv reads INVOICING_API_URL and INVOICING_TIMEOUT_SECONDS.
func NewAPIClientFromEnv() *APIClient {
	timeout := defaultTimeoutSeconds
	if v := os.Getenv("INVOICING_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}
	return NewAPIClient(getenvDefault("INVOICING_API_URL", defaultBaseURL), time.Duration(timeout)*time.Second)
}

func (c *APIClient) FetchProducts(ctx context.Context, s entities.AuthSession, term string) ([]entities.Product, error) {
	var envelope struct {
		Products []entities.Product `json:"products"`
	}
	if err := c.get(ctx, s, listPath("/services/common/product", term), &envelope); err != nil {
		return nil, err
	}
	if envelope.Products == nil {
		return nil, fmt.Errorf("products list missing: %w", interfaces.ErrInvalidResponseShape)
	}
	return envelope.Products, nil
}

func (c *APIClient) FetchClients(ctx context.Context, s entities.AuthSession, term string) ([]entities.Client, error) {
	var envelope struct {
		Clients []entities.Client `json:"clients"`
	}
	if err := c.get(ctx, s, listPath("/services/common/client", term), &envelope); err != nil {
		return nil, err
	}
	if envelope.Clients == nil {
		return nil, fmt.Errorf("clients list missing: %w", interfaces.ErrInvalidResponseShape)
	}
	return envelope.Clients, nil
}

func (c *APIClient) FetchLastSales(ctx context.Context, s entities.AuthSession) ([]entities.Document, error) {
	var envelope struct {
		Documents []entities.Document `json:"documents"`
	}
	path := fmt.Sprintf("/services/common/company/%s/lastsales/", url.PathEscape(s.CompanyID))
	if err := c.get(ctx, s, path, &envelope); err != nil {
		return nil, err
	}
	if envelope.Documents == nil {
		return nil, fmt.Errorf("documents list missing: %w", interfaces.ErrInvalidResponseShape)
	}
	return envelope.Documents, nil
}

func (c *APIClient) FetchInvoiceInfo(ctx context.Context, s entities.AuthSession, folio string) (entities.Document, error) {
	var doc entities.Document
	path := fmt.Sprintf("/services/common/company/%s/invoice/%s/getInfo", url.PathEscape(s.CompanyID), url.PathEscape(folio))
	if err := c.get(ctx, s, path, &doc); err != nil {
		return entities.Document{}, err
	}
	if doc.ID == 0 && doc.AssignedFolio == "" {
		return entities.Document{}, fmt.Errorf("document body missing: %w", interfaces.ErrInvalidResponseShape)
	}
	return doc, nil
}

func (c *APIClient) SubmitInvoice(ctx context.Context, s entities.AuthSession, sub entities.InvoiceSubmission) (entities.Document, error) {
	var doc entities.Document
	path := fmt.Sprintf("/services/raw/company/%s/invoice", url.PathEscape(s.CompanyID))
	if err := c.post(ctx, s, path, sub, &doc); err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

func (c *APIClient) SubmitTicket(ctx context.Context, s entities.AuthSession, sub entities.TicketSubmission) (entities.Document, error) {
	var doc entities.Document
	path := fmt.Sprintf("/services/raw/company/%s/ticket", url.PathEscape(s.CompanyID))
	if err := c.post(ctx, s, path, sub, &doc); err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}

// DocumentPDFURL is pure string composition; no request is made.
func (c *APIClient) DocumentPDFURL(id int64, validation string) string {
	return fmt.Sprintf("%s/document/toPdf/%d?v=%s", c.baseURL, id, url.QueryEscape(validation))
}

func (c *APIClient) get(ctx context.Context, s entities.AuthSession, path string, out any) error {
	return c.do(ctx, s, http.MethodGet, path, nil, out)
}

func (c *APIClient) post(ctx context.Context, s entities.AuthSession, path string, body, out any) error {
	return c.do(ctx, s, http.MethodPost, path, body, out)
}

func (c *APIClient) do(ctx context.Context, s entities.AuthSession, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(authHeaderName, s.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		// One key per submission attempt; lets the backend drop duplicates
		// when a mobile client retries after a timeout.
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[invoicing][client] %s %s transport failure err=%v", method, path, err)
		return &interfaces.APIError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[invoicing][client] %s %s body read failure err=%v", method, path, err)
		return &interfaces.APIError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &interfaces.APIError{StatusCode: resp.StatusCode, Message: serverMessage(raw)}
		log.Printf("[invoicing][client] %s %s failed status=%d msg=%q", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, interfaces.ErrInvalidResponseShape)
	}
	return nil
}

// serverMessage pulls the human-readable error text out of a failure body
// when the backend bothered to send one.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	switch {
	case body.Message != "":
		return body.Message
	case body.Error != "":
		return body.Error
	default:
		return body.Details
	}
}

func listPath(base, term string) string {
	if term == "" {
		return base
	}
	return base + "/" + url.PathEscape(term)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
