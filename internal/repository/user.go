package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vitalsync/backend/internal/models"
	"github.com/vitalsync/backend/internal/storage"
)

type userRepository struct {
	q storage.Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *storage.DB) UserRepository {
	return &userRepository{q: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, age, gender, height_cm, weight_kg, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, user.Age, user.Gender, user.HeightCm, user.WeightKg,
		formatTime(user.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx,
		`SELECT id, email, password_hash, age, gender, height_cm, weight_kg, created_at
		 FROM users WHERE email = ?`, email)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx,
		`SELECT id, email, password_hash, age, gender, height_cm, weight_kg, created_at
		 FROM users WHERE id = ?`, id)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		user      models.User
		createdAt string
	)

	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&user.Age, &user.Gender, &user.HeightCm, &user.WeightKg,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user.CreatedAt = parseTime(createdAt)
	return &user, nil
}
