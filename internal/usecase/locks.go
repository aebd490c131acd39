package usecase

import "sync"

// CircuitLocker serializes position-mutating operations per circuit. The
// storage transaction alone does not stop two concurrent requests from
// reading the same stop list, computing positions, and writing conflicting
// batches; taking the circuit's lock around read-compute-write closes that
// race.
type CircuitLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewCircuitLocker() *CircuitLocker {
	return &CircuitLocker{
		locks: make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the lock for one circuit and returns the matching unlock.
func (l *CircuitLocker) Lock(circuitID int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[circuitID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[circuitID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
