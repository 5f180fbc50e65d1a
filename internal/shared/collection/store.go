// Package collection provides an in-memory snapshot container for entity
// collections. A store holds the last successfully fetched collection and is
// mutated only through a closed set of commands applied by a pure transition
// function. Every full fetch replaces the snapshot wholesale; there is no
// incremental merge, so the latest resolved fetch is always authoritative.
package collection

import "sync"

// CommandKind enumerates the operations a store accepts.
type CommandKind int

const (
	// KindReplaceAll swaps the whole snapshot for a freshly fetched collection.
	KindReplaceAll CommandKind = iota
	// KindUpsert inserts an item, or replaces the item with the same ID.
	KindUpsert
	// KindRemove drops the item with the given ID.
	KindRemove
)

// Command is a tagged mutation applied to a store. Only the fields relevant
// to the Kind are read.
type Command[T any] struct {
	Kind  CommandKind
	Items []T
	Item  T
	ID    uint
}

// ReplaceAll builds a command that replaces the whole snapshot.
func ReplaceAll[T any](items []T) Command[T] {
	return Command[T]{Kind: KindReplaceAll, Items: items}
}

// Upsert builds a command that inserts or replaces a single item.
func Upsert[T any](item T) Command[T] {
	return Command[T]{Kind: KindUpsert, Item: item}
}

// Remove builds a command that drops the item with the given ID.
func Remove[T any](id uint) Command[T] {
	return Command[T]{Kind: KindRemove, ID: id}
}

// Store holds the last-fetched collection for one entity type.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	idOf  func(T) uint
}

// NewStore creates a store. idOf extracts the stable identity used by
// upsert and remove commands.
func NewStore[T any](idOf func(T) uint) *Store[T] {
	return &Store[T]{idOf: idOf}
}

// Apply runs the transition function over the current snapshot.
func (s *Store[T]) Apply(cmd Command[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = transition(s.items, cmd, s.idOf)
}

// Snapshot returns a copy of the current collection in stored order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items currently held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// transition is the pure state-transition function. It never mutates the
// input slice.
func transition[T any](items []T, cmd Command[T], idOf func(T) uint) []T {
	switch cmd.Kind {
	case KindReplaceAll:
		next := make([]T, len(cmd.Items))
		copy(next, cmd.Items)
		return next
	case KindUpsert:
		id := idOf(cmd.Item)
		next := make([]T, len(items))
		copy(next, items)
		for i, existing := range next {
			if idOf(existing) == id {
				next[i] = cmd.Item
				return next
			}
		}
		return append(next, cmd.Item)
	case KindRemove:
		next := make([]T, 0, len(items))
		for _, existing := range items {
			if idOf(existing) != cmd.ID {
				next = append(next, existing)
			}
		}
		return next
	}
	return items
}
