package address

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCEP indica un CEP que no tiene 8 dígitos después de normalizar.
	ErrInvalidCEP = errors.New("invalid cep")
	// ErrNotFound indica que el proveedor no conoce el CEP.
	ErrNotFound = errors.New("cep not found")
	// ErrUpstream indica fallo de red o respuesta no-2xx del proveedor.
	ErrUpstream = errors.New("address provider upstream error")
)

// Lookup consulta un CEP y devuelve el endereço normalizado.
type Lookup interface {
	Lookup(ctx context.Context, cep string) (Address, error)
}
