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

type sessionRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewSessionRepository(db *DB) repository.SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: db.logger,
	}
}

const sessionColumns = `
	id, circuit_id, start_date_time, end_date_time, max_participants, notes, status, created_at
`

func (r *sessionRepository) ListByCircuit(ctx context.Context, circuitID int64) ([]*domain.CircuitSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM circuit_sessions
		WHERE circuit_id = $1
		ORDER BY start_date_time ASC
	`

	var sessions []*domain.CircuitSession
	if err := r.db.SelectContext(ctx, &sessions, query, circuitID); err != nil {
		r.logger.Error("Failed to list sessions", zap.Int64("circuit_id", circuitID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sessions, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id int64) (*domain.CircuitSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM circuit_sessions WHERE id = $1`

	var session domain.CircuitSession
	err := r.db.GetContext(ctx, &session, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get session by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &session, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.CircuitSession) (*domain.CircuitSession, error) {
	query := `
		INSERT INTO circuit_sessions
			(circuit_id, start_date_time, end_date_time, max_participants, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		session.CircuitID, session.StartDateTime, session.EndDateTime,
		session.MaxParticipants, session.Notes, session.Status,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create session", zap.Int64("circuit_id", session.CircuitID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return session, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.CircuitSession) error {
	query := `
		UPDATE circuit_sessions
		SET start_date_time = $2, end_date_time = $3, max_participants = $4, notes = $5, status = $6
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		session.ID, session.StartDateTime, session.EndDateTime,
		session.MaxParticipants, session.Notes, session.Status)
	if err != nil {
		r.logger.Error("Failed to update session", zap.Int64("id", session.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM circuit_sessions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete session", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.ErrSessionNotFound
	}
	return nil
}
