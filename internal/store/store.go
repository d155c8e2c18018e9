// Package store keeps the participant list in memory and writes it through
// to a progress backend after every change.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/Gulur101/quran-toolkit/internal/model"
	"github.com/Gulur101/quran-toolkit/internal/mushaf"
	"github.com/Gulur101/quran-toolkit/internal/progress"
	"github.com/Gulur101/quran-toolkit/internal/text"
)

var (
	ErrNotFound       = errors.New("participant not found")
	ErrNameRequired   = errors.New("name required")
	ErrPageOutOfRange = fmt.Errorf("page must be between 1 and %d", mushaf.TotalPages)
)

// Store is safe for concurrent use by the HTTP handlers. It does not
// coordinate with other processes writing the same backend.
type Store struct {
	mu           sync.RWMutex
	participants model.Participants
	generation   uint64
	backend      progress.Backend
	logger       *zap.Logger
}

// Open loads the list from backend. A load failure is logged and the store
// starts empty.
func Open(ctx context.Context, backend progress.Backend, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		participants: model.Participants{},
		backend:      backend,
		logger:       logger,
	}

	loaded, err := backend.Load(ctx)
	if err != nil {
		logger.Error("Failed to load participants, using in-memory list", zap.Error(err))
		return s
	}
	s.participants = loaded
	logger.Info("Participants loaded", zap.Int("count", len(loaded)))
	return s
}

// List returns a copy of the participants in insertion order.
func (s *Store) List() []model.Participant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone([]model.Participant(s.participants))
}

func (s *Store) Get(id int) (model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.participants.IndexOf(id)
	if idx < 0 {
		return model.Participant{}, ErrNotFound
	}
	return s.participants[idx], nil
}

// Create adds a participant on page 1 with the next free id.
func (s *Store) Create(ctx context.Context, name string) (model.Participant, error) {
	name = text.CleanName(name)
	if name == "" {
		return model.Participant{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.participants))
	for i, p := range s.participants {
		names[i] = p.Name
	}
	if text.ContainsName(names, name) {
		s.logger.Warn("Participant name already in use", zap.String("name", name))
	}

	p := model.Participant{
		ID:          s.participants.MaxID() + 1,
		Name:        name,
		CurrentPage: 1,
	}
	s.participants = append(s.participants, p)
	s.persist(ctx)
	s.logger.Info("Participant created", zap.Int("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// UpdatePage moves a participant to page. Page 0 means "not given" and
// keeps the current page.
func (s *Store) UpdatePage(ctx context.Context, id, page int) (model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.participants.IndexOf(id)
	if idx < 0 {
		return model.Participant{}, ErrNotFound
	}
	if page != 0 && !mushaf.ValidPage(page) {
		return model.Participant{}, ErrPageOutOfRange
	}
	if page != 0 {
		s.participants[idx].CurrentPage = page
	}
	s.persist(ctx)
	s.logger.Info("Participant page updated", zap.Int("id", id), zap.Int("page", s.participants[idx].CurrentPage))
	return s.participants[idx], nil
}

func (s *Store) Rename(ctx context.Context, id int, name string) (model.Participant, error) {
	name = text.CleanName(name)
	if name == "" {
		return model.Participant{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.participants.IndexOf(id)
	if idx < 0 {
		return model.Participant{}, ErrNotFound
	}
	s.participants[idx].Name = name
	s.persist(ctx)
	return s.participants[idx], nil
}

// Delete removes a participant and returns it.
func (s *Store) Delete(ctx context.Context, id int) (model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.participants.IndexOf(id)
	if idx < 0 {
		return model.Participant{}, ErrNotFound
	}
	removed := s.participants[idx]
	s.participants = slices.Delete(s.participants, idx, idx+1)
	s.persist(ctx)
	s.logger.Info("Participant deleted", zap.Int("id", id))
	return removed, nil
}

// Reload replaces the list with the backend's contents. On failure the
// current list is kept. A snapshot read while a mutation lands is dropped,
// since it predates that mutation's save.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	loaded, err := s.backend.Load(ctx)
	if err != nil {
		s.logger.Warn("Reload failed, keeping current participants", zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.logger.Debug("Discarding stale reload", zap.Uint64("generation", s.generation))
		return nil
	}
	if slices.Equal([]model.Participant(s.participants), loaded) {
		return nil
	}
	s.participants = loaded
	s.logger.Info("Participants reloaded", zap.Int("count", len(loaded)))
	return nil
}

// persist writes the list; failures are logged and the in-memory change
// stands. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	s.generation++
	if err := s.backend.Save(ctx, s.participants); err != nil {
		s.logger.Error("Failed to save participants", zap.Error(err))
	}
}
