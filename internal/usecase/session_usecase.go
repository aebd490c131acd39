package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/usecase/dto"
)

// SessionUseCase manages scheduled runs of a circuit.
type SessionUseCase struct {
	access   circuitAccess
	sessions repository.SessionRepository
	logger   *zap.Logger
}

func NewSessionUseCase(
	users repository.UserRepository,
	circuits repository.CircuitRepository,
	sessions repository.SessionRepository,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		access:   circuitAccess{users: users, circuits: circuits},
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *SessionUseCase) List(ctx context.Context, email string, circuitID int64) ([]dto.SessionResponse, error) {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	sessions, err := uc.sessions.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, dto.ConvertSession(s))
	}
	return responses, nil
}

func (uc *SessionUseCase) Create(ctx context.Context, email string, circuitID int64, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	if req.EndDateTime != nil && !req.EndDateTime.After(req.StartDateTime) {
		return nil, errors.ErrInvalidRequest.WithMessage("End date must be after start date")
	}

	session := &domain.CircuitSession{
		CircuitID:       circuitID,
		StartDateTime:   req.StartDateTime,
		EndDateTime:     req.EndDateTime,
		MaxParticipants: req.MaxParticipants,
		Notes:           req.Notes,
		Status:          domain.SessionStatusScheduled,
	}

	created, err := uc.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("session created",
		zap.Int64("circuit_id", circuitID),
		zap.Int64("session_id", created.ID))

	resp := dto.ConvertSession(created)
	return &resp, nil
}

func (uc *SessionUseCase) Update(ctx context.Context, email string, circuitID, sessionID int64, req dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CircuitID != circuitID {
		return nil, errors.ErrSessionNotFound
	}

	if req.StartDateTime != nil {
		session.StartDateTime = *req.StartDateTime
	}
	if req.EndDateTime != nil {
		session.EndDateTime = req.EndDateTime
	}
	if req.MaxParticipants != nil {
		session.MaxParticipants = req.MaxParticipants
	}
	if req.Notes != nil {
		session.Notes = req.Notes
	}
	if req.Status != nil {
		status, err := domain.NormalizeSessionStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		session.Status = status
	}

	if session.EndDateTime != nil && !session.EndDateTime.After(session.StartDateTime) {
		return nil, errors.ErrInvalidRequest.WithMessage("End date must be after start date")
	}

	if err := uc.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	resp := dto.ConvertSession(session)
	return &resp, nil
}

func (uc *SessionUseCase) Delete(ctx context.Context, email string, circuitID, sessionID int64) error {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return err
	}

	session, err := uc.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.CircuitID != circuitID {
		return errors.ErrSessionNotFound
	}

	return uc.sessions.Delete(ctx, sessionID)
}
