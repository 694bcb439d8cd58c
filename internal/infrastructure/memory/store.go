// Package memory implementa los repositorios en memoria (STORE_DRIVER=memory y tests).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

type recordPtr[T any] interface {
	*T
	entity.Record
}

// Store tabla en memoria protegida por RWMutex. Guarda copias: el caller nunca comparte punteros.
type Store[T any, P recordPtr[T]] struct {
	mu     sync.RWMutex
	rows   map[string]*T
	clone  func(*T) *T
	unique func(a, b *T) bool // true si a y b violan una restricción única
}

func newStore[T any, P recordPtr[T]](clone func(*T) *T, unique func(a, b *T) bool) *Store[T, P] {
	if clone == nil {
		clone = func(e *T) *T { c := *e; return &c }
	}
	return &Store[T, P]{rows: make(map[string]*T), clone: clone, unique: unique}
}

func (s *Store[T, P]) Create(_ context.Context, e *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := P(e).GetID()
	if _, ok := s.rows[id]; ok {
		return domain.ErrDuplicate
	}
	if err := s.checkUnique(e, id); err != nil {
		return err
	}
	s.rows[id] = s.clone(e)
	return nil
}

func (s *Store[T, P]) GetByID(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return s.clone(e), nil
}

// List devuelve las filas ordenadas por fecha de creación.
func (s *Store[T, P]) List(_ context.Context) ([]*T, error) {
	return s.filter(func(*T) bool { return true }), nil
}

func (s *Store[T, P]) Update(_ context.Context, e *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := P(e).GetID()
	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	if err := s.checkUnique(e, id); err != nil {
		return err
	}
	s.rows[id] = s.clone(e)
	return nil
}

func (s *Store[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Len número de filas.
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func (s *Store[T, P]) checkUnique(e *T, id string) error {
	if s.unique == nil {
		return nil
	}
	for otherID, other := range s.rows {
		if otherID != id && s.unique(e, other) {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func (s *Store[T, P]) filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	out := make([]*T, 0, len(s.rows))
	for _, e := range s.rows {
		if keep(e) {
			out = append(out, s.clone(e))
		}
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		ci, cj := createdAt(out[i]), createdAt(out[j])
		if ci.Equal(cj) {
			return P(out[i]).GetID() < P(out[j]).GetID()
		}
		return ci.Before(cj)
	})
	return out
}

// each aplica fn a cada fila guardada bajo el lock de escritura.
func (s *Store[T, P]) each(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.rows {
		fn(e)
	}
}

func (s *Store[T, P]) first(match func(*T) bool) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.rows {
		if match(e) {
			return s.clone(e)
		}
	}
	return nil
}
