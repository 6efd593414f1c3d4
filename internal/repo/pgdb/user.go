package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/repo/repo_errors"
	"quotation-management-api/pkg/postgres"
	"time"

	"github.com/lib/pq"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (int64, error) {
	createUserSql, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("username", "email", "password_hash", "full_name", "active").
		Values(input.Username, input.Email, input.PasswordHash, input.FullName, true).
		Suffix("RETURNING id").
		ToSql()

	var userId int64
	err := r.Database.QueryRowContext(ctx, createUserSql, args...).Scan(&userId)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, repo_errors.ErrAlreadyExists
		}

		return 0, err
	}

	return userId, nil
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	getUserSql, args, _ := r.SqlBuilder.
		Select("id", "username", "email", "password_hash", "full_name", "active", "created_at", "last_access").
		From("users").
		Where("username = ?", username).
		ToSql()

	var user entity.User
	var createdAt time.Time
	var lastAccess sql.NullTime
	row := r.Database.QueryRowContext(ctx, getUserSql, args...)
	err := row.Scan(&user.Id, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Active, &createdAt, &lastAccess)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	user.CreatedAt = createdAt.Format(time.RFC3339)
	if lastAccess.Valid {
		user.LastAccess = lastAccess.Time.Format(time.RFC3339)
	}

	return &user, nil
}

func (r *UserRepo) UpdateLastAccess(ctx context.Context, id int64) error {
	updateSql, args, _ := r.SqlBuilder.
		Update("users").
		Set("last_access", time.Now()).
		Where("id = ?", id).
		ToSql()

	_, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	return nil
}
