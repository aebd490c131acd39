package usecase_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tour-planning-service/internal/domain"
	"github.com/tour-planning-service/internal/usecase"
)

func makeStops(ids ...int64) []*domain.CircuitStop {
	stops := make([]*domain.CircuitStop, 0, len(ids))
	for i, id := range ids {
		stops = append(stops, &domain.CircuitStop{ID: id, Position: i + 1})
	}
	return stops
}

// applyChanges mirrors what the storage layer does with a position batch.
func applyChanges(stops []*domain.CircuitStop, changes []domain.PositionChange) {
	byID := make(map[int64]*domain.CircuitStop)
	for _, s := range stops {
		byID[s.ID] = s
	}
	for _, c := range changes {
		byID[c.StopID].Position = c.Position
	}
}

// assertDense checks that positions form exactly 1..N.
func assertDense(t *testing.T, stops []*domain.CircuitStop) {
	t.Helper()
	positions := make([]int, 0, len(stops))
	for _, s := range stops {
		positions = append(positions, s.Position)
	}
	sort.Ints(positions)
	for i, p := range positions {
		assert.Equal(t, i+1, p, "positions must be a dense 1..N permutation")
	}
}

func TestResolveInsertPosition(t *testing.T) {
	t.Run("nil request appends", func(t *testing.T) {
		pos, err := usecase.ResolveInsertPosition(4, nil)
		assert.NoError(t, err)
		assert.Equal(t, 5, pos)
	})

	t.Run("zero and negative are rejected", func(t *testing.T) {
		for _, requested := range []int{0, -1} {
			req := requested
			_, err := usecase.ResolveInsertPosition(4, &req)
			assert.Error(t, err)
		}
	})

	t.Run("past the end clamps to append", func(t *testing.T) {
		req := 99
		pos, err := usecase.ResolveInsertPosition(4, &req)
		assert.NoError(t, err)
		assert.Equal(t, 5, pos)
	})

	t.Run("valid middle position is kept", func(t *testing.T) {
		req := 3
		pos, err := usecase.ResolveInsertPosition(4, &req)
		assert.NoError(t, err)
		assert.Equal(t, 3, pos)
	})

	t.Run("delete then insert past the end lands right after the survivors", func(t *testing.T) {
		// Three stops, the middle one removed, then an insert requested at 5:
		// after compaction max is 2, so the new stop takes position 3.
		stops := makeStops(1, 2, 3)
		changes := usecase.CompactAfterDelete(stops, 2)
		remaining := []*domain.CircuitStop{stops[0], stops[2]}
		applyChanges(remaining, changes)
		assertDense(t, remaining)

		req := 5
		pos, err := usecase.ResolveInsertPosition(2, &req)
		assert.NoError(t, err)
		assert.Equal(t, 3, pos)
	})
}

func TestShiftForInsert(t *testing.T) {
	t.Run("shifts the tail highest first", func(t *testing.T) {
		stops := makeStops(10, 20, 30, 40)
		changes := usecase.ShiftForInsert(stops, 2)

		assert.Len(t, changes, 3)
		assert.Equal(t, domain.PositionChange{StopID: 40, Position: 5}, changes[0])
		assert.Equal(t, domain.PositionChange{StopID: 30, Position: 4}, changes[1])
		assert.Equal(t, domain.PositionChange{StopID: 20, Position: 3}, changes[2])
	})

	t.Run("append shifts nothing", func(t *testing.T) {
		stops := makeStops(10, 20)
		assert.Empty(t, usecase.ShiftForInsert(stops, 3))
	})

	t.Run("density survives the insert", func(t *testing.T) {
		stops := makeStops(10, 20, 30)
		changes := usecase.ShiftForInsert(stops, 2)
		applyChanges(stops, changes)
		stops = append(stops, &domain.CircuitStop{ID: 99, Position: 2})
		assertDense(t, stops)
	})
}

func TestReposition(t *testing.T) {
	t.Run("move earlier shifts the range up", func(t *testing.T) {
		stops := makeStops(10, 20, 30, 40, 50)
		changes := usecase.Reposition(stops, 40, 2)
		applyChanges(stops, changes)

		assertDense(t, stops)
		assert.Equal(t, 2, stops[3].Position) // moved stop
		assert.Equal(t, 1, stops[0].Position)
		assert.Equal(t, 3, stops[1].Position)
		assert.Equal(t, 4, stops[2].Position)
		assert.Equal(t, 5, stops[4].Position)
	})

	t.Run("move later shifts the range down", func(t *testing.T) {
		stops := makeStops(10, 20, 30, 40, 50)
		changes := usecase.Reposition(stops, 20, 4)
		applyChanges(stops, changes)

		assertDense(t, stops)
		assert.Equal(t, 4, stops[1].Position)
		assert.Equal(t, 2, stops[2].Position)
		assert.Equal(t, 3, stops[3].Position)
	})

	t.Run("request past the end clamps to last", func(t *testing.T) {
		stops := makeStops(10, 20, 30)
		changes := usecase.Reposition(stops, 10, 99)
		applyChanges(stops, changes)

		assertDense(t, stops)
		assert.Equal(t, 3, stops[0].Position)
	})

	t.Run("moving onto the current position is a no-op", func(t *testing.T) {
		stops := makeStops(10, 20, 30)
		assert.Empty(t, usecase.Reposition(stops, 20, 2))
	})

	t.Run("no-op is idempotent after a real move", func(t *testing.T) {
		stops := makeStops(10, 20, 30)
		applyChanges(stops, usecase.Reposition(stops, 30, 1))
		assert.Empty(t, usecase.Reposition(stops, 30, 1))
		assertDense(t, stops)
	})

	t.Run("unknown stop yields no changes", func(t *testing.T) {
		stops := makeStops(10, 20)
		assert.Empty(t, usecase.Reposition(stops, 99, 1))
	})
}

func TestCompactAfterDelete(t *testing.T) {
	stops := makeStops(10, 20, 30, 40)
	changes := usecase.CompactAfterDelete(stops, 2)

	assert.Len(t, changes, 2)
	remaining := []*domain.CircuitStop{stops[0], stops[2], stops[3]}
	applyChanges(remaining, changes)
	assertDense(t, remaining)
}

func TestCircuitLocker(t *testing.T) {
	t.Run("serializes access per circuit", func(t *testing.T) {
		locker := usecase.NewCircuitLocker()

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := locker.Lock(7)
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
	})

	t.Run("different circuits do not block each other", func(t *testing.T) {
		locker := usecase.NewCircuitLocker()

		unlockA := locker.Lock(1)
		done := make(chan struct{})
		go func() {
			unlockB := locker.Lock(2)
			unlockB()
			close(done)
		}()

		<-done
		unlockA()
	})
}
