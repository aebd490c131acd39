package dto

import (
	"time"

	"github.com/tour-planning-service/internal/domain"
)

type CreateSessionRequest struct {
	StartDateTime   time.Time  `json:"start_date_time" validate:"required"`
	EndDateTime     *time.Time `json:"end_date_time"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gt=0"`
	Notes           *string    `json:"notes"`
}

type UpdateSessionRequest struct {
	StartDateTime   *time.Time `json:"start_date_time"`
	EndDateTime     *time.Time `json:"end_date_time"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,gt=0"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status"`
}

type SessionResponse struct {
	ID              int64                `json:"id"`
	CircuitID       int64                `json:"circuit_id"`
	StartDateTime   time.Time            `json:"start_date_time"`
	EndDateTime     *time.Time           `json:"end_date_time,omitempty"`
	MaxParticipants *int                 `json:"max_participants,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
	Status          domain.SessionStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
}

func ConvertSession(s *domain.CircuitSession) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		CircuitID:       s.CircuitID,
		StartDateTime:   s.StartDateTime,
		EndDateTime:     s.EndDateTime,
		MaxParticipants: s.MaxParticipants,
		Notes:           s.Notes,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
	}
}
