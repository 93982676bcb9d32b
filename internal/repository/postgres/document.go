package postgres

import (
	"context"
	"time"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
)

type documentRepository struct {
	db DBTX
}

func NewDocumentRepository(db DBTX) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO documents (name, url, order_id, user_id, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	d.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, d.Name, d.URL, d.OrderID, d.UserID, now).Scan(&d.ID)
}

func (r *documentRepository) GetByID(ctx context.Context, id int32) (*domain.Document, error) {
	d := &domain.Document{}
	query := `SELECT id, name, url, order_id, user_id, created_on FROM documents WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.URL, &d.OrderID, &d.UserID, &createdOn)
	if err != nil {
		return nil, notFound(err)
	}
	d.CreatedOn = createdOn.Format("2006-01-02")
	return d, nil
}

func (r *documentRepository) ListByOrder(ctx context.Context, orderID int32) ([]domain.Document, error) {
	query := `SELECT id, name, url, order_id, user_id, created_on FROM documents WHERE order_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var d domain.Document
		var createdOn time.Time
		if err := rows.Scan(&d.ID, &d.Name, &d.URL, &d.OrderID, &d.UserID, &createdOn); err != nil {
			return nil, err
		}
		d.CreatedOn = createdOn.Format("2006-01-02")
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
