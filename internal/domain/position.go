package domain

// PositionChange is one stop's new rank within its circuit. Sequencing logic
// produces batches of these; the storage layer applies a batch atomically so
// the dense 1..N position invariant holds at every commit point.
type PositionChange struct {
	StopID   int64
	Position int
}
