package visits

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotFound          = errors.New("visit not found")
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Title       string
	Description string
	Date        *time.Time
	CEP         string
	Address     string
	City        string
	UF          string
	Lat         *float64
	Lon         *float64
	Responsible string
	Status      Status
	Checklist   []ChecklistItem
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Visit, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Visit{}, ErrInvalidInput
	}

	st := in.Status
	if st == "" {
		st = StatusScheduled
	}
	if !ValidStatus(st) {
		return Visit{}, ErrInvalidInput
	}

	now := s.now().UTC()
	v := Visit{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		CEP:         normalizeCEP(in.CEP),
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		UF:          strings.ToUpper(strings.TrimSpace(in.UF)),
		Lat:         in.Lat,
		Lon:         in.Lon,
		Responsible: strings.TrimSpace(in.Responsible),
		Status:      st,
		Checklist:   in.Checklist,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Visit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Visit{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	Title       string
	Description string
	Date        *time.Time
	CEP         string
	Address     string
	City        string
	UF          string
	Lat         *float64
	Lon         *float64
	Responsible string

	// Status vacío = conservar el actual (no volver a scheduled como hacía
	// una versión vieja; eso rompía la linealidad del ciclo de vida).
	Status Status

	Checklist []ChecklistItem
}

// Update reemplaza los campos mutables de la visita (semántica PUT).
// El resultado del distance-check previo se conserva.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Visit, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Visit{}, err
	}

	if strings.TrimSpace(in.Title) == "" {
		return Visit{}, ErrInvalidInput
	}

	st := in.Status
	if st == "" {
		st = current.Status
	}
	if !ValidStatus(st) {
		return Visit{}, ErrInvalidInput
	}
	if !CanTransition(current.Status, st) {
		return Visit{}, ErrInvalidTransition
	}

	current.Title = strings.TrimSpace(in.Title)
	current.Description = strings.TrimSpace(in.Description)
	current.Date = in.Date
	current.CEP = normalizeCEP(in.CEP)
	current.Address = strings.TrimSpace(in.Address)
	current.City = strings.TrimSpace(in.City)
	current.UF = strings.ToUpper(strings.TrimSpace(in.UF))
	current.Lat = in.Lat
	current.Lon = in.Lon
	current.Responsible = strings.TrimSpace(in.Responsible)
	current.Status = st
	current.Checklist = in.Checklist
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Visit{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// List sanea page/size antes de pasar al repo: page >= 1, size en [1,100], default 50.
func (s *Service) List(ctx context.Context, status Status, page, size int) ([]Visit, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return s.repo.List(ctx, ListFilter{
		Status: status,
		Page:   page,
		Size:   size,
	})
}

// RecordDistance persiste el resultado de un distance-check sobre la visita.
func (s *Service) RecordDistance(ctx context.Context, id string, km float64) (Visit, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return Visit{}, err
	}

	now := s.now().UTC()
	v.DistanceKM = &km
	v.DistanceCheckedAt = &now
	v.UpdatedAt = now

	if err := s.repo.Update(ctx, v); err != nil {
		return Visit{}, err
	}
	return v, nil
}

// normalizeCEP deja solo dígitos ("30140-071" -> "30140071"). No valida largo:
// el CEP en la visita es informativo; la validación estricta vive en el lookup.
func normalizeCEP(cep string) string {
	var b strings.Builder
	for _, r := range cep {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
