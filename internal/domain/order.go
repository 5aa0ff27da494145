package domain

import (
	"strings"
	"time"
)

// ProductIDsSeparator — разделитель, с которым список товаров кодируется
// в хранилище и в строковом представлении.
const ProductIDsSeparator = ","

// Order связывает пользователя со списком товаров.
type Order struct {
	// ID присваивается хранилищем при создании и после этого не меняется.
	ID string
	// UserID — идентификатор пользователя-владельца заказа.
	UserID string
	// ProductIDs — непустой упорядоченный список идентификаторов товаров,
	// дубликаты допустимы.
	ProductIDs []string
	// CreatedAt фиксирует момент создания заказа.
	CreatedAt time.Time
	// UpdatedAt обновляется при каждой полной замене полей.
	UpdatedAt time.Time
}

// CreateOrderRequest — входные данные для создания заказа.
type CreateOrderRequest struct {
	UserID     string
	ProductIDs []string
}

// UpdateOrderRequest — полная замена userId и productIds существующего заказа.
type UpdateOrderRequest struct {
	ID         string
	UserID     string
	ProductIDs []string
}

// GetOrdersRequest — фильтр выборки заказов пользователя.
type GetOrdersRequest struct {
	UserID string
}

// ProductStock — факт доступности товара, полученный от каталога.
// Система каталогом не владеет и этот факт не кэширует.
type ProductStock struct {
	ProductID string
	InStock   bool
}

// JoinProductIDs кодирует список товаров в строку с разделителем.
func JoinProductIDs(ids []string) string {
	return strings.Join(ids, ProductIDsSeparator)
}

// SplitProductIDs разбирает строку с разделителем обратно в список,
// отбрасывая пустые элементы.
func SplitProductIDs(encoded string) []string {
	parts := strings.Split(encoded, ProductIDsSeparator)
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, part)
	}
	return ids
}

// ValidateInvariants проверяет базовые инварианты запроса на создание.
func (r CreateOrderRequest) ValidateInvariants() []error {
	var errs []error

	if r.UserID == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(r.ProductIDs) == 0 {
		errs = append(errs, ErrProductsRequired)
	}
	for _, id := range r.ProductIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, ErrProductIDEmpty)
			break
		}
	}

	return errs
}

// ValidateInvariants проверяет базовые инварианты запроса на обновление.
func (r UpdateOrderRequest) ValidateInvariants() []error {
	var errs []error

	if r.ID == "" {
		errs = append(errs, ErrOrderIDRequired)
	}
	if r.UserID == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(r.ProductIDs) == 0 {
		errs = append(errs, ErrProductsRequired)
	}

	return errs
}

// ApplyUpdate возвращает копию заказа с полностью заменёнными userId и
// productIds; идентификатор сохраняется.
func (o Order) ApplyUpdate(req UpdateOrderRequest, now time.Time) Order {
	o.UserID = req.UserID
	o.ProductIDs = req.ProductIDs
	o.UpdatedAt = now
	return o
}
