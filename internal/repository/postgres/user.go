package postgres

import (
	"context"
	"database/sql"
	"time"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, phone, is_active, role_id, COALESCE(reset_password_token, ''), created_on, updated_on`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, full_name, phone, is_active, role_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	u.CreatedOn = now.Format("2006-01-02")
	u.UpdatedOn = u.CreatedOn
	return r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.FullName, u.Phone, u.IsActive, u.RoleID, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND is_active = true`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_password_token = $1 AND is_active = true`
	return r.scanOne(r.db.QueryRowContext(ctx, query, token))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *userRepository) ListActiveByRole(ctx context.Context, roleID int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role_id = $1 AND is_active = true ORDER BY full_name`
	logger.DatabaseCall("SELECT", "users", "roleID", roleID)

	rows, err := r.db.QueryContext(ctx, query, roleID)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "roleID", roleID)
		return nil, err
	}
	defer rows.Close()

	users, err := r.scanMany(rows)
	logger.DatabaseResult("SELECT", int64(len(users)), err, "roleID", roleID)
	return users, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, password_hash=$2, full_name=$3, phone=$4, is_active=$5, role_id=$6, reset_password_token=NULLIF($7, ''), updated_on=$8 WHERE id=$9`
	now := time.Now()
	u.UpdatedOn = now.Format("2006-01-02")
	res, err := r.db.ExecContext(ctx, query, u.Email, u.PasswordHash, u.FullName, u.Phone, u.IsActive, u.RoleID, u.ResetPasswordToken, now, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) Deactivate(ctx context.Context, id int32) error {
	query := `UPDATE users SET is_active=false, updated_on=$1 WHERE id=$2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *userRepository) scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.IsActive, &u.RoleID, &u.ResetPasswordToken, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) scanOne(row rowScanner) (*domain.User, error) {
	u, err := r.scanUser(row)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (r *userRepository) scanMany(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
