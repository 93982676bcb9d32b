package postgres

import (
	"context"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
)

// Roles and statuses are append-only reference tables seeded at install time.

type roleRepository struct {
	db DBTX
}

func NewRoleRepository(db DBTX) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) GetByID(ctx context.Context, id int32) (*domain.Role, error) {
	role := &domain.Role{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, notFound(err)
	}
	return role, nil
}

func (r *roleRepository) Ensure(ctx context.Context, id int32, name string) error {
	query := `INSERT INTO roles (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, id, name)
	return err
}

type statusRepository struct {
	db DBTX
}

func NewStatusRepository(db DBTX) repository.StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) List(ctx context.Context) ([]domain.Status, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM statuses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.Status
	for rows.Next() {
		var st domain.Status
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, rows.Err()
}

func (r *statusRepository) GetByID(ctx context.Context, id int32) (*domain.Status, error) {
	st := &domain.Status{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM statuses WHERE id = $1`, id).Scan(&st.ID, &st.Name)
	if err != nil {
		return nil, notFound(err)
	}
	return st, nil
}

func (r *statusRepository) Ensure(ctx context.Context, id int32, name string) error {
	query := `INSERT INTO statuses (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, id, name)
	return err
}
