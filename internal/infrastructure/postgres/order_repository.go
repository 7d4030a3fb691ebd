package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, buyer_id, seller_id, product_id, status, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		o.ID, string(o.BuyerID), string(o.SellerID), o.ProductID, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return classify("insert order", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get order", err)
	}
	return o, nil
}

// UpdateStatus sobrescribe el estado.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return classify("update order status", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// ListByBuyer lista las órdenes de un comprador.
func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID entity.UserID) ([]*entity.Order, error) {
	return r.query(ctx, "list orders by buyer",
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC, id DESC`,
		string(buyerID))
}

// ListBySeller lista las órdenes recibidas por un vendedor.
func (r *OrderRepo) ListBySeller(ctx context.Context, sellerID entity.UserID) ([]*entity.Order, error) {
	return r.query(ctx, "list orders by seller",
		`SELECT `+orderColumns+` FROM orders WHERE seller_id = $1 ORDER BY created_at DESC, id DESC`,
		string(sellerID))
}

func (r *OrderRepo) query(ctx context.Context, op, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, classify("scan order", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(op, err)
	}
	return list, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o             entity.Order
		buyer, seller string
	)
	if err := row.Scan(&o.ID, &buyer, &seller, &o.ProductID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.BuyerID = entity.UserID(buyer)
	o.SellerID = entity.UserID(seller)
	return &o, nil
}
