// Package undo provides the bounded snapshot history backing single-step
// undo on the board. Two independent stacks are kept by the session, one for
// column-layout snapshots and one for card-order snapshots; the generic
// Stack carries either.
package undo

// DefaultLimit is the number of snapshots retained per stack. Pushing past
// the limit evicts the oldest entry first.
const DefaultLimit = 10

// Stack is a bounded LIFO of pre-operation snapshots.
type Stack[T any] struct {
	entries []T
	limit   int
}

// NewStack creates a stack retaining at most limit entries. A limit of zero
// or less falls back to DefaultLimit.
func NewStack[T any](limit int) *Stack[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack[T]{limit: limit}
}

// Push records a snapshot, evicting the oldest entry once the stack is full.
func (s *Stack[T]) Push(snapshot T) {
	s.entries = append(s.entries, snapshot)
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Pop removes and returns the most recent snapshot. The second return value
// is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.entries) == 0 {
		return zero, false
	}
	last := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return last, true
}

// CanUndo reports whether the stack holds at least one snapshot.
func (s *Stack[T]) CanUndo() bool {
	return len(s.entries) > 0
}

// Len returns the number of retained snapshots.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// DropLatest discards the most recent snapshot without restoring it. Called
// when the operation the snapshot was captured for failed to sync and was
// rolled back; keeping the entry would make a later undo step past the
// rolled-back operation.
func (s *Stack[T]) DropLatest() {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// Clear drops all snapshots. Called on board teardown.
func (s *Stack[T]) Clear() {
	s.entries = nil
}
