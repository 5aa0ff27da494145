package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

const serviceName = "product-service"

// Config задаёт явную конфигурацию клиента каталога.
type Config struct {
	// BaseURL — базовый адрес product-service, например http://product-service/api/product.
	BaseURL string
	// Timeout ограничивает каждый удалённый вызов.
	Timeout time.Duration
	// HTTPClient позволяет подменить транспорт в тестах.
	HTTPClient *http.Client
}

// Client — HTTP-реализация domain.StockClient.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Entry
}

const defaultTimeout = 5 * time.Second

// NewClient конструирует клиента каталога.
func NewClient(cfg Config, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "catalog-client")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// productResponse — формат ответа product-service по одному товару.
type productResponse struct {
	ProductID string `json:"product_id"`
	IsInStock bool   `json:"is_in_stock"`
}

// CheckInStock опрашивает каталог по каждому товару отдельным запросом,
// последовательно, без батчей и кэширования.
func (c *Client) CheckInStock(ctx context.Context, token string, productIDs []string) ([]domain.ProductStock, error) {
	result := make([]domain.ProductStock, 0, len(productIDs))
	for _, productID := range productIDs {
		stock, err := c.checkOne(ctx, token, productID)
		if err != nil {
			return nil, err
		}
		result = append(result, stock)
	}
	return result, nil
}

func (c *Client) checkOne(ctx context.Context, token, productID string) (domain.ProductStock, error) {
	endpoint := c.baseURL + "?id=" + url.QueryEscape(productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ProductStock{}, domain.NewTransportError(serviceName, err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("product_id", productID).Warn("product-service call failed")
		return domain.ProductStock{}, domain.NewTransportError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ProductStock{}, domain.NewTransportError(serviceName,
			fmt.Errorf("unexpected status %d for product %s", resp.StatusCode, productID))
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.ProductStock{}, domain.NewTransportError(serviceName,
			fmt.Errorf("decode product %s response: %w", productID, err))
	}
	if body.ProductID == "" {
		body.ProductID = productID
	}

	return domain.ProductStock{ProductID: body.ProductID, InStock: body.IsInStock}, nil
}

var _ domain.StockClient = (*Client)(nil)
