package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

const serviceName = "user-service"

// Config задаёт явную конфигурацию клиента сервиса пользователей.
type Config struct {
	// BaseURL — базовый адрес user-service, например http://user-service/api/user.
	BaseURL string
	// Timeout ограничивает каждый удалённый вызов. Нулевое значение
	// заменяется разумным дефолтом: исходный сервис жил без таймаутов вовсе.
	Timeout time.Duration
	// HTTPClient позволяет подменить транспорт в тестах.
	HTTPClient *http.Client
}

// Client — HTTP-реализация domain.AuthClient. Без кэширования и повторов:
// каждый вызов уходит в user-service заново.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Entry
}

const defaultTimeout = 5 * time.Second

// NewClient конструирует клиента с ограниченным временем вызова.
func NewClient(cfg Config, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "auth-client")
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

// ValidateToken спрашивает user-service, действителен ли токен.
func (c *Client) ValidateToken(ctx context.Context, token string) (bool, error) {
	return c.validate(ctx, c.baseURL+"/validate-token", token)
}

// ValidateOwnerToken проверяет, что токен действителен и принадлежит userID.
func (c *Client) ValidateOwnerToken(ctx context.Context, token, userID string) (bool, error) {
	endpoint := c.baseURL + "/validate-owner-token?userId=" + url.QueryEscape(userID)
	return c.validate(ctx, endpoint, token)
}

// ValidateAdminToken проверяет, что токен действителен и несёт права администратора.
func (c *Client) ValidateAdminToken(ctx context.Context, token string) (bool, error) {
	return c.validate(ctx, c.baseURL+"/validate-admin-token", token)
}

// validate выполняет POST с токеном в Authorization. Любой 2xx означает
// "токен принят", 401/403 — "отклонён", всё остальное — транспортная ошибка,
// которую нельзя выдавать за невалидный токен.
func (c *Client) validate(ctx context.Context, endpoint, token string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, domain.NewTransportError(serviceName, err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Warn("user-service call failed")
		return false, domain.NewTransportError(serviceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, domain.NewTransportError(serviceName,
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint))
	}
}

var _ domain.AuthClient = (*Client)(nil)
