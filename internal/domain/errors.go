package domain

import (
	"errors"
	"fmt"
)

var (
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserRequired = errors.New("user_id is required")
	// Ошибка отсутствия хотя бы одного товара в заказе.
	ErrProductsRequired = errors.New("order must contain at least one product")
	// Ошибка пустого идентификатора товара в списке.
	ErrProductIDEmpty = errors.New("product id must not be empty")
	// Ошибка отсутствующего идентификатора заказа в запросе.
	ErrOrderIDRequired = errors.New("order id is required")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrIDMismatch — идентификатор в теле запроса не совпадает с целевым.
	ErrIDMismatch = errors.New("order id in request does not match target id")
	// ErrProductNotInStock — хотя бы один товар недоступен в каталоге.
	ErrProductNotInStock = errors.New("product is not in stock")
	// ErrUnauthorized — сервис пользователей отклонил переданный токен.
	ErrUnauthorized = errors.New("token is not authorized")
)

// TransportError сигнализирует, что внешний сервис недоступен или ответил
// ошибкой транспортного уровня. Не смешивается с "токен невалиден".
type TransportError struct {
	// Service — логическое имя внешнего сервиса (user-service, product-service).
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError оборачивает ошибку обращения к внешнему сервису.
func NewTransportError(service string, err error) *TransportError {
	return &TransportError{Service: service, Err: err}
}

// IsTransportError проверяет, является ли ошибка транспортной.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ErrorCode — стабильный машинно-читаемый код бизнес-ошибки для API.
type ErrorCode string

const (
	CodeCreateOrderProductNotInStock ErrorCode = "CREATE_ORDER_PRODUCT_NOT_IN_STOCK"
	CodeUpdateOrderDifferentIDs      ErrorCode = "UPDATE_ORDER_DIFFERENT_IDS_IN_REQUEST"
	CodeUpdateOrderNotExisting       ErrorCode = "UPDATE_ORDER_NOT_EXISTING_IN_REQUEST"
	CodeUnauthorized                 ErrorCode = "UNAUTHORIZED"
	CodeUpstreamUnavailable          ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeInvalidRequest               ErrorCode = "INVALID_REQUEST"
	CodeInternalError                ErrorCode = "INTERNAL_ERROR"
)

// CodeFor сопоставляет доменную ошибку её API-коду.
func CodeFor(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrProductNotInStock):
		return CodeCreateOrderProductNotInStock
	case errors.Is(err, ErrIDMismatch):
		return CodeUpdateOrderDifferentIDs
	case errors.Is(err, ErrOrderNotFound):
		return CodeUpdateOrderNotExisting
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case IsTransportError(err):
		return CodeUpstreamUnavailable
	case errors.Is(err, ErrUserRequired),
		errors.Is(err, ErrProductsRequired),
		errors.Is(err, ErrProductIDEmpty),
		errors.Is(err, ErrOrderIDRequired):
		return CodeInvalidRequest
	default:
		return CodeInternalError
	}
}
