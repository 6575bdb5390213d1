package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/petlove/backend/constant"
	"github.com/petlove/backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, data *model.OrderEntity) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemRequest) error
	GetByID(ctx context.Context, id uint64) (*model.OrderEntity, error)
	GetItemsByOrderID(ctx context.Context, orderID uint64) ([]model.OrderItem, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.OrderEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = `id, user_id, status, total_amount, order_date, delivery_date, created_at, updated_at`

	getOrderQuery   = `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	listOrdersBase  = `SELECT ` + orderColumns + ` FROM orders WHERE true`
	getItemsQuery   = `SELECT id, order_id, product_name, quantity, price FROM order_item WHERE order_id = ? ORDER BY id`
	insertItemQuery = `INSERT INTO order_item (order_id, product_name, quantity, price) VALUES (?, ?, ?, ?)`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, data *model.OrderEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO orders (user_id, status, total_amount, order_date, created_at) VALUES (?, ?, ?, NOW(), NOW())",
		data.UserID, data.Status, data.TotalAmount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemRequest) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertItemQuery, orderID, it.ProductName, it.Quantity, it.Price); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := r.conn.QueryRowxContext(ctx, getOrderQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetItemsByOrderID(ctx context.Context, orderID uint64) ([]model.OrderItem, error) {
	rows, err := r.conn.QueryxContext(ctx, getItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var it model.OrderItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	query := listOrdersBase
	args := make([]any, 0, 1)

	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY id DESC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var entity model.OrderEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		orders = append(orders, entity)
	}
	return orders, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := tx.QueryRowxContext(ctx, getOrderQuery+" FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	q := "UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?"
	if status == constant.OrderStatusDelivered {
		// delivery date stamps when the order reaches delivered
		q = "UPDATE orders SET status = ?, delivery_date = NOW(), updated_at = NOW() WHERE id = ?"
	}
	_, err := tx.ExecContext(ctx, q, status, orderID)
	return err
}
