package usecase

import (
	"context"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
)

// circuitAccess resolves the calling user and enforces circuit ownership.
// A circuit owned by someone else is reported as not found rather than
// forbidden, so the API never confirms that a foreign circuit id exists.
type circuitAccess struct {
	users    repository.UserRepository
	circuits repository.CircuitRepository
}

func (a *circuitAccess) currentUser(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, errors.ErrUserNotFound
	}
	return a.users.GetByEmail(ctx, email)
}

func (a *circuitAccess) ownedCircuit(ctx context.Context, email string, circuitID int64) (*domain.User, *domain.Circuit, error) {
	user, err := a.currentUser(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	circuit, err := a.circuits.GetByID(ctx, circuitID)
	if err != nil {
		return nil, nil, err
	}

	if circuit.CreatedBy != user.ID {
		return nil, nil, errors.ErrCircuitNotFound
	}

	return user, circuit, nil
}
