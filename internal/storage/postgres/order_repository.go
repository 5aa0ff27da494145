package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

// Save вставляет заказ или полностью перезаписывает его по ID.
// Пустой ID означает создание: репозиторий присваивает новый UUID.
func (r *orderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := time.Now().UTC()
	if order.ID == "" {
		order.ID = uuid.NewString()
		if order.CreatedAt.IsZero() {
			order.CreatedAt = now
		}
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, product_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET user_id = EXCLUDED.user_id,
		    product_ids = EXCLUDED.product_ids,
		    updated_at = EXCLUDED.updated_at
	`,
		order.ID, order.UserID, domain.JoinProductIDs(order.ProductIDs),
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("upsert order: %w", err)
	}

	return order, nil
}

// FindByID возвращает заказ по идентификатору или ErrOrderNotFound.
func (r *orderRepository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, product_ids, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	return order, nil
}

// FindAllByUserID возвращает заказы пользователя в порядке создания.
func (r *orderRepository) FindAllByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, product_ids, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

// DeleteByID удаляет заказ или возвращает ErrOrderNotFound, если его нет.
func (r *orderRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		order      domain.Order
		productIDs string
	)
	if err := row.Scan(
		&order.ID, &order.UserID, &productIDs,
		&order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		return domain.Order{}, err
	}
	order.ProductIDs = domain.SplitProductIDs(productIDs)
	return order, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
