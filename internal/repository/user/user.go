package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userEntity entities.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, blocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		userEntity.ID,
		userEntity.Name,
		userEntity.Email,
		userEntity.PasswordHash,
		userEntity.Role.String(),
		userEntity.Blocked,
		userEntity.CreatedAt,
		userEntity.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, blocked, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.Role,
			&userModel.Blocked,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, blocked, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.Role,
			&userModel.Blocked,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, blocked, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.Role,
			&userModel.Blocked,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опционнные поля
	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Email != nil {
		builder = builder.Set("email", userModifyModel.Email)
	}
	if userModifyModel.Role != nil {
		builder = builder.Set("role", userModifyModel.Role)
	}
	if userModifyModel.Blocked != nil {
		builder = builder.Set("blocked", userModifyModel.Blocked)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING id, name, email, password_hash, role, blocked, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Email,
			&userModel.PasswordHash,
			&userModel.Role,
			&userModel.Blocked,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrEmailTaken
		}

		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM users WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected user repository delete error: %w", err)
	}

	rowsAffected := result.RowsAffected()
	if rowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *Repository) CountAdmins(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM users
		WHERE role = 'admin'
	`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository count admins error: %w", err)
	}

	return count, nil
}
