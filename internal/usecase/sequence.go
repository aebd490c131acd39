package usecase

import (
	"sort"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/pkg/errors"
)

// Position sequencing for circuit stops. Stops of one circuit always hold a
// dense permutation of 1..N; every mutation below returns the exact batch of
// position changes that preserves density, and the storage layer applies the
// batch in a single transaction.

// ResolveInsertPosition picks the target position for a new stop. A nil
// request appends; anything past the end is clamped to maxPosition+1.
func ResolveInsertPosition(maxPosition int, requested *int) (int, error) {
	if requested == nil {
		return maxPosition + 1, nil
	}

	if *requested <= 0 {
		return 0, errors.ErrInvalidPosition
	}

	if *requested > maxPosition+1 {
		return maxPosition + 1, nil
	}

	return *requested, nil
}

// ShiftForInsert increments every stop at or after the target position,
// highest position first so no two stops transiently collide.
func ShiftForInsert(stops []*domain.CircuitStop, targetPosition int) []domain.PositionChange {
	var affected []*domain.CircuitStop
	for _, s := range stops {
		if s.Position >= targetPosition {
			affected = append(affected, s)
		}
	}

	// Highest first.
	sort.Slice(affected, func(i, j int) bool {
		return affected[i].Position > affected[j].Position
	})

	changes := make([]domain.PositionChange, 0, len(affected))
	for _, s := range affected {
		changes = append(changes, domain.PositionChange{StopID: s.ID, Position: s.Position + 1})
	}
	return changes
}

// Reposition moves one stop to the requested position, shifting only the
// affected range in a single pass. The request is clamped to [1, max]; moving
// a stop onto its current position yields no changes.
func Reposition(stops []*domain.CircuitStop, stopID int64, requested int) []domain.PositionChange {
	var moving *domain.CircuitStop
	maxPosition := 0
	for _, s := range stops {
		if s.Position > maxPosition {
			maxPosition = s.Position
		}
		if s.ID == stopID {
			moving = s
		}
	}
	if moving == nil || maxPosition == 0 {
		return nil
	}

	newPos := requested
	if newPos < 1 {
		newPos = 1
	}
	if newPos > maxPosition {
		newPos = maxPosition
	}

	oldPos := moving.Position
	if newPos == oldPos {
		return nil
	}

	var changes []domain.PositionChange
	if newPos < oldPos {
		// Moving earlier: everything in [newPos, oldPos) slides up by one.
		for _, s := range stops {
			if s.ID == stopID {
				continue
			}
			if s.Position >= newPos && s.Position < oldPos {
				changes = append(changes, domain.PositionChange{StopID: s.ID, Position: s.Position + 1})
			}
		}
	} else {
		// Moving later: everything in (oldPos, newPos] slides down by one.
		for _, s := range stops {
			if s.ID == stopID {
				continue
			}
			if s.Position > oldPos && s.Position <= newPos {
				changes = append(changes, domain.PositionChange{StopID: s.ID, Position: s.Position - 1})
			}
		}
	}

	changes = append(changes, domain.PositionChange{StopID: stopID, Position: newPos})
	return changes
}

// CompactAfterDelete closes the gap left by a removed stop.
func CompactAfterDelete(stops []*domain.CircuitStop, removedPosition int) []domain.PositionChange {
	var changes []domain.PositionChange
	for _, s := range stops {
		if s.Position > removedPosition {
			changes = append(changes, domain.PositionChange{StopID: s.ID, Position: s.Position - 1})
		}
	}
	return changes
}
