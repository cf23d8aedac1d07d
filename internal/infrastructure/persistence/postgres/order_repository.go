package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Maxxvall/BarskieHoromi/internal/application/ports"
	"github.com/Maxxvall/BarskieHoromi/internal/domain/entities"
	domainerrors "github.com/Maxxvall/BarskieHoromi/internal/domain/errors"
)

// Compile-time check
var _ ports.OrderArchive = (*OrderRepository)(nil)

// OrderRepository реализует ports.OrderArchive.
//
// Состав заказа хранится как JSONB: позиции читаются только целиком,
// отдельная таблица строк заказа здесь не нужна.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository создаёт новый OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Save сохраняет отправленный заказ в архив.
func (r *OrderRepository) Save(ctx context.Context, order *entities.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return &domainerrors.StorageError{Op: "marshal order items", Err: err}
	}

	query := `
		INSERT INTO orders (
			items, total_price, meal_type, order_date,
			user_name, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		itemsJSON,
		order.TotalPrice,
		string(order.MealType),
		string(order.OrderDate),
		order.UserName,
		order.UserID,
		order.CreatedAt,
	)
	if err != nil {
		return &domainerrors.StorageError{Op: "save order", Err: err}
	}

	return nil
}

// ListRecent возвращает последние заказы, свежие первыми.
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]entities.ArchivedOrder, error) {
	query := `
		SELECT id, items, total_price, meal_type, order_date,
			   user_name, user_id, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, &domainerrors.StorageError{Op: "list orders", Err: err}
	}
	defer rows.Close()

	var orders []entities.ArchivedOrder
	for rows.Next() {
		var (
			id                  int64
			itemsJSON           []byte
			totalPrice          int
			mealType, orderDate string
			userName            string
			userID              int64
			createdAt           time.Time
		)

		if err := rows.Scan(&id, &itemsJSON, &totalPrice, &mealType, &orderDate,
			&userName, &userID, &createdAt); err != nil {
			return nil, &domainerrors.StorageError{Op: "scan order row", Err: err}
		}

		var items []entities.OrderItem
		if err := json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, fmt.Errorf("invalid order items in database: %w", err)
		}

		orders = append(orders, entities.ArchivedOrder{
			ID: id,
			Order: entities.Order{
				Items:      items,
				TotalPrice: totalPrice,
				MealType:   entities.MealType(mealType),
				OrderDate:  entities.OrderDate(orderDate),
				UserName:   userName,
				UserID:     userID,
				CreatedAt:  createdAt,
			},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, &domainerrors.StorageError{Op: "iterate order rows", Err: err}
	}

	return orders, nil
}

// Ping проверяет соединение с БД. Используется readiness-пробой.
func (r *OrderRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.pool.Ping(ctx)
}
