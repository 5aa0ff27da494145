package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
	"github.com/vladislavdragonenkov/order-service/internal/metrics"
	"github.com/vladislavdragonenkov/order-service/internal/service/order"
)

// API собирает REST-обработчики заказов поверх chi-роутера.
// Проверка токенов делегируется сервису пользователей на каждый запрос.
type API struct {
	orders              *order.Service
	auth                domain.AuthClient
	metrics             *metrics.HTTPMetrics
	logger              *log.Entry
	deleteRequiresAdmin bool
}

// Config параметризует API.
type Config struct {
	// DeleteRequiresAdmin требует административный токен для удаления заказа.
	DeleteRequiresAdmin bool
}

// NewAPI конструирует API поверх сервиса заказов и клиента авторизации.
func NewAPI(
	orders *order.Service,
	auth domain.AuthClient,
	httpMetrics *metrics.HTTPMetrics,
	cfg Config,
	logger *log.Entry,
) *API {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}
	return &API{
		orders:              orders,
		auth:                auth,
		metrics:             httpMetrics,
		logger:              logger,
		deleteRequiresAdmin: cfg.DeleteRequiresAdmin,
	}
}

// Router строит chi-роутер со всеми маршрутами API.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/order", func(r chi.Router) {
		if a.metrics != nil {
			r.Use(a.metrics.Middleware("/api/order"))
		}
		r.Post("/", a.handleCreate)
		r.Get("/", a.handleList)
		r.Patch("/{id}", a.handleUpdate)
		r.Delete("/{id}", a.handleDelete)
	})

	return r
}

// createOrderRequest — тело запроса на создание заказа.
type createOrderRequest struct {
	UserID     string   `json:"userId"`
	ProductIDs []string `json:"productIds"`
}

// updateOrderRequest — тело запроса на полную замену заказа.
type updateOrderRequest struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	ProductIDs []string `json:"productIds"`
}

// orderResponse — представление заказа в API.
type orderResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ProductIDs []string  `json:"productIds"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// errorResponse — единый формат бизнес-ошибки.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		ProductIDs: o.ProductIDs,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)

	if err := a.authorize(func() (bool, error) {
		return a.auth.ValidateToken(r.Context(), token)
	}); err != nil {
		a.writeError(w, err)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    string(domain.CodeInvalidRequest),
			Message: "request body is not valid JSON",
		})
		return
	}

	created, err := a.orders.Create(r.Context(), token, domain.CreateOrderRequest{
		UserID:     req.UserID,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set("Location", "/api/order/"+created.ID)
	a.writeJSON(w, http.StatusCreated, toOrderResponse(created))
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	id := chi.URLParam(r, "id")

	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    string(domain.CodeInvalidRequest),
			Message: "request body is not valid JSON",
		})
		return
	}

	// Владелец определяется по userId из тела: токен должен принадлежать
	// пользователю, на которого заказ переписывается.
	if err := a.authorize(func() (bool, error) {
		return a.auth.ValidateOwnerToken(r.Context(), token, req.UserID)
	}); err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.orders.Update(r.Context(), id, domain.UpdateOrderRequest{
		ID:         req.ID,
		UserID:     req.UserID,
		ProductIDs: req.ProductIDs,
	}); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	id := chi.URLParam(r, "id")

	if err := a.authorize(func() (bool, error) {
		if a.deleteRequiresAdmin {
			return a.auth.ValidateAdminToken(r.Context(), token)
		}
		return a.auth.ValidateToken(r.Context(), token)
	}); err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.orders.Delete(r.Context(), id); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	userID := r.URL.Query().Get("userId")

	if userID == "" {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    string(domain.CodeInvalidRequest),
			Message: "userId query parameter is required",
		})
		return
	}

	if err := a.authorize(func() (bool, error) {
		return a.auth.ValidateOwnerToken(r.Context(), token, userID)
	}); err != nil {
		a.writeError(w, err)
		return
	}

	orders, err := a.orders.ListForUser(r.Context(), domain.GetOrdersRequest{UserID: userID})
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, lo.Map(orders, func(o domain.Order, _ int) orderResponse {
		return toOrderResponse(o)
	}))
}

// authorize превращает результат проверки токена в доменную ошибку.
func (a *API) authorize(check func() (bool, error)) error {
	ok, err := check()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// writeError сопоставляет доменную ошибку HTTP-статусу и телу ответа.
func (a *API) writeError(w http.ResponseWriter, err error) {
	var te *domain.TransportError
	if errors.As(err, &te) && a.metrics != nil {
		a.metrics.RecordUpstreamError(te.Service)
	}

	code := domain.CodeFor(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		a.logger.WithError(err).Error("request failed")
	} else {
		a.logger.WithError(err).Info("request rejected")
	}

	a.writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: err.Error(),
	})
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case domain.CodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.WithError(err).Error("failed to encode response body")
	}
}

// bearerToken извлекает токен из заголовка Authorization,
// отбрасывая схему Bearer, если она указана.
func bearerToken(r *http.Request) string {
	value := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(value, "Bearer "); found {
		return token
	}
	return value
}
