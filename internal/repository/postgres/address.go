package postgres

import (
	"context"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
)

type addressRepository struct {
	db DBTX
}

func NewAddressRepository(db DBTX) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (address, city, country, postal_code, user_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Address, a.City, a.Country, a.PostalCode, a.UserID).Scan(&a.ID)
}

func (r *addressRepository) GetByID(ctx context.Context, id int32) (*domain.Address, error) {
	a := &domain.Address{}
	query := `SELECT id, address, city, country, postal_code, user_id FROM addresses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Address, &a.City, &a.Country, &a.PostalCode, &a.UserID)
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Address, error) {
	query := `SELECT id, address, city, country, postal_code, user_id FROM addresses WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addrs []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Address, &a.City, &a.Country, &a.PostalCode, &a.UserID); err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, rows.Err()
}
