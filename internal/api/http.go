package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jolidon/olyst/internal/models"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

// HTTPClient implements Client over the backend's REST endpoints.
// It is safe for concurrent use; the bearer token is guarded by a mutex so
// the attachment always reflects the most recent SetToken/ClearToken call.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:8000/api"). The timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken attaches the given token as the bearer credential for all
// subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer attachment; subsequent requests carry no
// Authorization header at all.
func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the currently attached credential ("" when absent).
func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doRequest performs one round trip and handles the common error cases.
// A transport failure wraps ErrUnavailable; a non-2xx status becomes *Error.
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if token := c.Token(); token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, query, nil, result)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, nil, body, result)
}

func (c *HTTPClient) put(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPut, path, nil, body, result)
}

func (c *HTTPClient) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/auth/login", body, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "username": username, "password": password}
	if err := c.post(ctx, "/auth/register", body, &out); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var out models.User
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return models.User{}, err
	}
	return out, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products lists catalog entries. Only non-empty filter fields become query
// parameters; an absent field is omitted, not sent as an empty constraint.
func (c *HTTPClient) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var out []models.Product
	if err := c.get(ctx, "/products", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Product(ctx context.Context, id string) (models.Product, error) {
	var out models.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

func (c *HTTPClient) AdminProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/admin/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, p ProductPayload) (models.Product, error) {
	var out models.Product
	if err := c.post(ctx, "/products", p, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, p ProductPayload) error {
	return c.put(ctx, "/products/"+url.PathEscape(id), p, nil)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.delete(ctx, "/products/"+url.PathEscape(id))
}

func (c *HTTPClient) Purchases(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	if err := c.get(ctx, "/purchases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	var out models.Order
	if err := c.post(ctx, "/orders", o, &out); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

func (c *HTTPClient) Order(ctx context.Context, id string) (models.Order, error) {
	var out models.Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return models.Order{}, err
	}
	return out, nil
}
