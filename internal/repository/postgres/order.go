package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
)

type orderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, description, COALESCE(long_description, ''), helper_id, status_id, address_delivery_id, address_pickup_id, active, created_on, updated_on`

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (description, long_description, helper_id, status_id, address_delivery_id, address_pickup_id, active, created_on, updated_on)
	          VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	o.CreatedOn = now.Format("2006-01-02")
	o.UpdatedOn = o.CreatedOn
	return r.db.QueryRowContext(ctx, query, o.Description, o.LongDescription, o.HelperID, o.StatusID, o.DeliveryAddressID, o.PickupAddressID, o.Active, now, now).Scan(&o.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := r.scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET description=$1, long_description=NULLIF($2, ''), helper_id=$3, status_id=$4, address_delivery_id=$5, address_pickup_id=$6, active=$7, updated_on=$8 WHERE id=$9`
	now := time.Now()
	o.UpdatedOn = now.Format("2006-01-02")
	res, err := r.db.ExecContext(ctx, query, o.Description, o.LongDescription, o.HelperID, o.StatusID, o.DeliveryAddressID, o.PickupAddressID, o.Active, now, o.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ListActive(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE active = true ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListForHelper applies the helper visibility rule: only orders assigned to
// the helper, never rejected ones, never archived ones.
func (r *orderRepository) ListForHelper(ctx context.Context, helperID int32) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
	          WHERE helper_id = $1 AND status_id <> $2 AND active = true
	          ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, helperID, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *orderRepository) ListPendingOlderThan(ctx context.Context, days int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
	          WHERE status_id = $1 AND active = true AND created_on < $2
	          ORDER BY created_on`
	cutoff := time.Now().AddDate(0, 0, -days)
	rows, err := r.db.QueryContext(ctx, query, domain.StatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *orderRepository) Deactivate(ctx context.Context, id int32) error {
	query := `UPDATE orders SET active=false, updated_on=$1 WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *orderRepository) scanOrder(row rowScanner) (*domain.Order, error) {
	o := &domain.Order{}
	var createdOn, updatedOn time.Time
	var delivery, pickup sql.NullInt32
	err := row.Scan(&o.ID, &o.Description, &o.LongDescription, &o.HelperID, &o.StatusID, &delivery, &pickup, &o.Active, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	if delivery.Valid {
		o.DeliveryAddressID = &delivery.Int32
	}
	if pickup.Valid {
		o.PickupAddressID = &pickup.Int32
	}
	o.CreatedOn = createdOn.Format("2006-01-02")
	o.UpdatedOn = updatedOn.Format("2006-01-02")
	return o, nil
}

func (r *orderRepository) scanMany(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}
