package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"visitas-api/internal/domain/visits"
)

type visitsRepo struct {
	mu   sync.RWMutex
	byID map[string]visits.Visit
}

// NewVisitsRepo crea el repo in-memory (dev/tests).
func NewVisitsRepo() visits.Repository {
	return &visitsRepo{
		byID: make(map[string]visits.Visit),
	}
}

func (r *visitsRepo) Create(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("visit id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("visit already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) GetByID(ctx context.Context, id string) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitsRepo) Update(ctx context.Context, v visits.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return visits.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *visitsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return visits.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *visitsRepo) List(ctx context.Context, f visits.ListFilter) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]visits.Visit, 0, len(r.byID))
	for _, v := range r.byID {
		if f.Status != "" && v.Status != f.Status {
			continue
		}
		all = append(all, v)
	}

	// Mismo orden que el repo SQL: COALESCE(date, created_at) DESC.
	sort.Slice(all, func(i, j int) bool {
		return effectiveDate(all[j]).Before(effectiveDate(all[i]))
	})

	offset := (f.Page - 1) * f.Size
	if offset >= len(all) {
		return []visits.Visit{}, nil
	}
	end := offset + f.Size
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func effectiveDate(v visits.Visit) time.Time {
	if v.Date != nil {
		return *v.Date
	}
	return v.CreatedAt
}
