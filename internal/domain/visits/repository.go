package visits

import "context"

// ListFilter ya viene saneado por el service (page >= 1, size en [1,100]).
type ListFilter struct {
	Status Status // vacío = todas
	Page   int
	Size   int
}

type Repository interface {
	Create(ctx context.Context, v Visit) error
	GetByID(ctx context.Context, id string) (Visit, error)
	Update(ctx context.Context, v Visit) error
	Delete(ctx context.Context, id string) error

	// List devuelve visitas ordenadas por COALESCE(date, created_at) DESC.
	List(ctx context.Context, f ListFilter) ([]Visit, error)
}
