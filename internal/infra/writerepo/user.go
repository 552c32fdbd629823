package writerepo

import (
	"context"
	"time"

	"rentigo/internal/domain/user"
	"rentigo/internal/infra"
	"rentigo/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, infra.KindFromPgError(err))
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, created_at, updated_at
		FROM users WHERE id = $1`, id)
	return scanUser(row, "user not found")
}

func (r *UserRepository) FindByEmail(ctx context.Context, tx db.DBTX, email string) (*user.User, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, created_at, updated_at
		FROM users WHERE email = $1`, email)
	return scanUser(row, "user not found by email")
}

func scanUser(row pgx.Row, notFoundMsg string) (*user.User, error) {
	var (
		id                   uuid.UUID
		email, hash, role    string
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &email, &hash, &role, &isActive, &createdAt, &updatedAt); err != nil {
		if infra.KindFromPgError(err) == infra.KindNotFound {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user email", err)
	}
	return user.Reconstruct(id, emailVO, hash, user.Role(role), isActive, createdAt, updatedAt), nil
}
