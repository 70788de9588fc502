package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.httpClient.Timeout = d
		}
	}
}

// Client reads stock and catalog data from the store API.
// Requests are never retried; a failure is returned to the caller as is.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("api: base URL is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base URL: %w", err)
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	c := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) GetStock(ctx context.Context, productID int64) (domain.StockInfo, error) {
	var stock domain.StockInfo
	if err := c.getJSON(ctx, "stock/"+strconv.FormatInt(productID, 10), &stock); err != nil {
		return domain.StockInfo{}, fmt.Errorf("getJSON stock[%d]: %w", productID, err)
	}

	stock.ProductID = productID
	if stock.Amount < 0 {
		return domain.StockInfo{}, fmt.Errorf("stock[%d] amount %d is negative", productID, stock.Amount)
	}

	return stock, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	var product domain.Product
	if err := c.getJSON(ctx, "products/"+strconv.FormatInt(productID, 10), &product); err != nil {
		return domain.Product{}, fmt.Errorf("getJSON product[%d]: %w", productID, err)
	}

	return product, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.getJSON(ctx, "products", &products); err != nil {
		return nil, fmt.Errorf("getJSON products: %w", err)
	}

	return products, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("url.Parse: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.ResolveReference(ref).String(), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
