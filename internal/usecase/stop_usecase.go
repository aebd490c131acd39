package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/domain/repository"
	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/usecase/dto"
)

// StopUseCase handles all stop mutations. Every operation that touches
// positions runs under the circuit's lock and persists its position batch in
// one transaction, so positions stay a dense 1..N permutation.
type StopUseCase struct {
	access circuitAccess
	stops  repository.StopRepository
	places repository.PlaceRepository
	locker *CircuitLocker
	logger *zap.Logger
}

func NewStopUseCase(
	users repository.UserRepository,
	circuits repository.CircuitRepository,
	stops repository.StopRepository,
	places repository.PlaceRepository,
	locker *CircuitLocker,
	logger *zap.Logger,
) *StopUseCase {
	return &StopUseCase{
		access: circuitAccess{users: users, circuits: circuits},
		stops:  stops,
		places: places,
		locker: locker,
		logger: logger,
	}
}

func parseOptionalTime(raw *string) (*domain.TimeOfDay, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(*raw)
	if err != nil {
		return nil, errors.ErrInvalidSchedule.WithMessage("Invalid time format, expected HH:MM")
	}
	return &t, nil
}

func (uc *StopUseCase) Add(ctx context.Context, email string, circuitID int64, req dto.AddStopRequest) (*dto.StopResponse, error) {
	_, circuit, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	place, err := uc.places.GetByID(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if place.CityID != circuit.CityID {
		return nil, errors.ErrInvalidRequest.WithMessage("Place does not belong to the circuit's city")
	}

	exists, err := uc.stops.ExistsByCircuitAndPlace(ctx, circuitID, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrDuplicateStopPlace
	}

	stopKind, err := domain.NormalizeStopKind(req.StopKind)
	if err != nil {
		return nil, err
	}
	mealType, err := domain.NormalizeMealType(req.MealType)
	if err != nil {
		return nil, err
	}
	// A meal type implies an EAT stop when the kind was left out.
	if mealType != nil && stopKind == nil {
		eat := domain.StopKindEat
		stopKind = &eat
	}

	startTime, err := parseOptionalTime(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseOptionalTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	if err := ValidateStopSchedule(req.DayNumber, stopKind, mealType, startTime, endTime); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(circuitID)
	defer unlock()

	siblings, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}

	if err := ValidateNoOverlap(siblings, nil, req.DayNumber, startTime, endTime); err != nil {
		return nil, err
	}

	maxPosition := 0
	for _, s := range siblings {
		if s.Position > maxPosition {
			maxPosition = s.Position
		}
	}

	position, err := ResolveInsertPosition(maxPosition, req.Position)
	if err != nil {
		return nil, err
	}

	var shifts []domain.PositionChange
	if position <= maxPosition {
		shifts = ShiftForInsert(siblings, position)
	}

	stop := &domain.CircuitStop{
		CircuitID:       circuitID,
		PlaceID:         req.PlaceID,
		Position:        position,
		DayNumber:       req.DayNumber,
		StopKind:        stopKind,
		MealType:        mealType,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}

	created, err := uc.stops.InsertWithShift(ctx, stop, shifts)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stop added",
		zap.Int64("circuit_id", circuitID),
		zap.Int64("stop_id", created.ID),
		zap.Int("position", created.Position))

	resp := dto.ConvertStop(created, place)
	return &resp, nil
}

func (uc *StopUseCase) Update(ctx context.Context, email string, circuitID, stopID int64, req dto.UpdateStopRequest) (*dto.StopResponse, error) {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return nil, err
	}

	stop, err := uc.stops.GetByID(ctx, stopID)
	if err != nil {
		return nil, err
	}
	if stop.CircuitID != circuitID {
		return nil, errors.ErrStopNotFound
	}

	if req.StopKind != nil {
		kind, err := domain.NormalizeStopKind(req.StopKind)
		if err != nil {
			return nil, err
		}
		stop.StopKind = kind
	}
	if req.MealType != nil {
		meal, err := domain.NormalizeMealType(req.MealType)
		if err != nil {
			return nil, err
		}
		stop.MealType = meal
	}
	if req.DayNumber != nil {
		stop.DayNumber = req.DayNumber
	}
	if req.StartTime != nil {
		t, err := parseOptionalTime(req.StartTime)
		if err != nil {
			return nil, err
		}
		stop.StartTime = t
	}
	if req.EndTime != nil {
		t, err := parseOptionalTime(req.EndTime)
		if err != nil {
			return nil, err
		}
		stop.EndTime = t
	}
	if req.DurationMinutes != nil {
		stop.DurationMinutes = req.DurationMinutes
	}
	if req.Notes != nil {
		stop.Notes = req.Notes
	}

	// A meal type implies an EAT stop when the kind was left out.
	if stop.MealType != nil && stop.StopKind == nil {
		eat := domain.StopKindEat
		stop.StopKind = &eat
	}

	if err := ValidateStopSchedule(stop.DayNumber, stop.StopKind, stop.MealType, stop.StartTime, stop.EndTime); err != nil {
		return nil, err
	}

	unlock := uc.locker.Lock(circuitID)
	defer unlock()

	siblings, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return nil, err
	}

	if err := ValidateNoOverlap(siblings, &stopID, stop.DayNumber, stop.StartTime, stop.EndTime); err != nil {
		return nil, err
	}

	var shifts []domain.PositionChange
	if req.Position != nil {
		if *req.Position <= 0 {
			return nil, errors.ErrInvalidPosition
		}
		shifts = Reposition(siblings, stopID, *req.Position)
		for _, change := range shifts {
			if change.StopID == stopID {
				stop.Position = change.Position
			}
		}
	}

	if err := uc.stops.UpdateWithShift(ctx, stop, shifts); err != nil {
		return nil, err
	}

	place, err := uc.places.GetByID(ctx, stop.PlaceID)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertStop(stop, place)
	return &resp, nil
}

func (uc *StopUseCase) Delete(ctx context.Context, email string, circuitID, stopID int64) error {
	_, _, err := uc.access.ownedCircuit(ctx, email, circuitID)
	if err != nil {
		return err
	}

	stop, err := uc.stops.GetByID(ctx, stopID)
	if err != nil {
		return err
	}
	if stop.CircuitID != circuitID {
		return errors.ErrStopNotFound
	}

	unlock := uc.locker.Lock(circuitID)
	defer unlock()

	siblings, err := uc.stops.ListByCircuit(ctx, circuitID)
	if err != nil {
		return err
	}

	shifts := CompactAfterDelete(siblings, stop.Position)
	if err := uc.stops.DeleteWithShift(ctx, stopID, shifts); err != nil {
		return err
	}

	uc.logger.Info("stop deleted",
		zap.Int64("circuit_id", circuitID),
		zap.Int64("stop_id", stopID))

	return nil
}
