package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

const adminUserColumns = `id, email, password_hash, full_name, phone, avatar_url, created_at, updated_at`

// GetByEmail retrieves an admin by email.
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*adminModels.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// GetByID retrieves an admin by id.
func (r *AdminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*adminModels.AdminUser, error) {
	query := `SELECT ` + adminUserColumns + ` FROM admin_users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// UpdateProfile applies non-nil profile fields.
func (r *AdminUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, req *adminModels.UpdateProfileRequest) (*adminModels.AdminUser, error) {
	query := `
		UPDATE admin_users
		SET full_name = COALESCE($2, full_name),
		    phone = COALESCE($3, phone),
		    email = COALESCE($4, email),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + adminUserColumns

	return r.scanOne(r.pool.QueryRow(ctx, query, id, req.FullName, req.Phone, req.Email))
}

// UpdateAvatar stores the avatar public URL.
func (r *AdminUserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admin_users SET avatar_url = $2, updated_at = NOW() WHERE id = $1`,
		id, avatarURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return nil
}

type row interface {
	Scan(dest ...interface{}) error
}

func (r *AdminUserRepository) scanOne(row row) (*adminModels.AdminUser, error) {
	user := &adminModels.AdminUser{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.AvatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return user, nil
}
