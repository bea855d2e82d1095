// Package ecs is a minimal entity/component registry: entities are plain ids,
// components live in typed stores keyed by entity, and systems iterate joins
// over the stores they care about. There is no scheduling here; the engine's
// fixed tick drives systems through layers.
package ecs

import "sort"

// Entity identifies a live object in a World. The zero Entity is never live.
type Entity uint32

// World allocates and retires entity ids.
type World struct {
	next  Entity
	alive map[Entity]struct{}
}

func NewWorld() *World {
	return &World{alive: map[Entity]struct{}{}}
}

// Spawn returns a fresh live entity.
func (w *World) Spawn() Entity {
	w.next++
	w.alive[w.next] = struct{}{}
	return w.next
}

// Despawn retires e. Component stores are not notified; callers remove
// components themselves (stores tolerate entries for dead entities).
func (w *World) Despawn(e Entity) {
	delete(w.alive, e)
}

func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

func (w *World) Count() int { return len(w.alive) }

// Store holds one component type, keyed by entity.
type Store[T any] struct {
	items map[Entity]*T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: map[Entity]*T{}}
}

// Set attaches v to e, replacing any previous value. The stored copy is
// returned so callers can keep mutating it.
func (s *Store[T]) Set(e Entity, v T) *T {
	p := &v
	s.items[e] = p
	return p
}

func (s *Store[T]) Get(e Entity) (*T, bool) {
	p, ok := s.items[e]
	return p, ok
}

func (s *Store[T]) Remove(e Entity) {
	delete(s.items, e)
}

func (s *Store[T]) Len() int { return len(s.items) }

// Each visits all components in ascending entity order.
func (s *Store[T]) Each(f func(Entity, *T)) {
	for _, e := range sortedKeys(s.items) {
		f(e, s.items[e])
	}
}

// Join2 visits every entity present in both stores, in ascending entity
// order. Iteration order is deterministic so per-tick system passes visit
// pairings stably.
func Join2[A, B any](a *Store[A], b *Store[B], f func(Entity, *A, *B)) {
	for _, e := range sortedKeys(a.items) {
		pb, ok := b.items[e]
		if !ok {
			continue
		}
		f(e, a.items[e], pb)
	}
}

func sortedKeys[T any](m map[Entity]*T) []Entity {
	keys := make([]Entity, 0, len(m))
	for e := range m {
		keys = append(keys, e)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
