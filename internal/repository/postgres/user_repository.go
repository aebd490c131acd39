package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, display_name, created_at FROM users WHERE email = $1`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}
