package order

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

// Service реализует бизнес-логику заказов: проверку наличия товаров,
// создание, полную замену, удаление и выборку по пользователю.
type Service struct {
	repo   domain.OrderRepository
	stock  domain.StockClient
	events domain.OrderEventPublisher
	logger *log.Entry
}

// NewService конструирует сервис. events может быть nil: публикация событий
// опциональна и на результат операций не влияет.
func NewService(
	repo domain.OrderRepository,
	stock domain.StockClient,
	events domain.OrderEventPublisher,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "order-service")
	}
	return &Service{
		repo:   repo,
		stock:  stock,
		events: events,
		logger: logger,
	}
}

// Create проверяет наличие всех товаров в каталоге и сохраняет новый заказ.
// Заказ создаётся только если каталог подтвердил наличие каждого товара
// (is_in_stock == true); при отказе ничего не сохраняется.
func (s *Service) Create(ctx context.Context, token string, req domain.CreateOrderRequest) (domain.Order, error) {
	if errs := req.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("create order: %w", errs[0])
	}

	stocks, err := s.stock.CheckInStock(ctx, token, req.ProductIDs)
	if err != nil {
		s.logger.WithError(err).Error("stock check failed")
		return domain.Order{}, fmt.Errorf("check stock: %w", err)
	}
	for _, stock := range stocks {
		if !stock.InStock {
			s.logger.WithField("product_id", stock.ProductID).Info("product is out of stock, order rejected")
			return domain.Order{}, domain.ErrProductNotInStock
		}
	}

	now := time.Now().UTC()
	order, err := s.repo.Save(ctx, domain.Order{
		UserID:     req.UserID,
		ProductIDs: req.ProductIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to persist order")
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
	}).Info("order created")

	if s.events != nil {
		s.events.PublishOrderCreated(order)
	}

	return order, nil
}

// Update полностью заменяет userId и productIds существующего заказа.
// Наличие товаров при обновлении не перепроверяется.
func (s *Service) Update(ctx context.Context, id string, req domain.UpdateOrderRequest) error {
	if req.ID != id {
		return domain.ErrIDMismatch
	}
	if errs := req.ValidateInvariants(); len(errs) > 0 {
		return fmt.Errorf("update order: %w", errs[0])
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load order %s: %w", id, err)
	}

	updated := existing.ApplyUpdate(req, time.Now().UTC())
	if _, err := s.repo.Save(ctx, updated); err != nil {
		s.logger.WithError(err).WithField("order_id", id).Error("failed to update order")
		return fmt.Errorf("save order %s: %w", id, err)
	}

	s.logger.WithField("order_id", id).Info("order updated")

	if s.events != nil {
		s.events.PublishOrderUpdated(updated)
	}

	return nil
}

// Delete окончательно удаляет заказ.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("load order %s: %w", id, err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.WithError(err).WithField("order_id", id).Error("failed to delete order")
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	s.logger.WithField("order_id", id).Info("order deleted")

	if s.events != nil {
		s.events.PublishOrderDeleted(id)
	}

	return nil
}

// ListForUser возвращает все заказы пользователя.
func (s *Service) ListForUser(ctx context.Context, req domain.GetOrdersRequest) ([]domain.Order, error) {
	orders, err := s.repo.FindAllByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", req.UserID).Error("failed to list orders")
		return nil, fmt.Errorf("list orders for user %s: %w", req.UserID, err)
	}
	return orders, nil
}
