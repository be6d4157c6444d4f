package distance

import (
	"context"
	"errors"
)

var (
	// ErrUpstream indica fallo de red o respuesta no-2xx de distance-service.
	ErrUpstream = errors.New("distance-service upstream error")
)

// Checker calcula la distancia entre dos puntos usando un servicio externo.
// Sin retry ni cache: un request, una respuesta.
type Checker interface {
	Check(ctx context.Context, origin, destination Location) (Result, error)
}
