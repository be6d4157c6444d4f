package addresses

import (
	"encoding/json"
	"errors"
	"net/http"

	"visitas-api/internal/ports/address"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, lookup address.Lookup) {
	r.Get("/address/cep/{cep}", lookupCEPHandler(lookup))
}

// addressResponse representa un endereço normalizado devuelto por la API.
type addressResponse struct {
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	UF         string `json:"uf"`
	IBGE       string `json:"ibge,omitempty"`
	DDD        string `json:"ddd,omitempty"`
}

// lookupCEPHandler godoc
// @Summary Consultar endereço por CEP
// @Description Consulta ViaCEP y devuelve el endereço normalizado. Acepta CEP con o sin guión.
// @Tags addresses
// @Produce json
// @Param cep path string true "CEP (8 dígitos)"
// @Success 200 {object} addressResponse
// @Failure 400 {string} string "cep inválido"
// @Failure 404 {string} string "cep no encontrado"
// @Failure 502 {string} string "ViaCEP no disponible"
// @Router /address/cep/{cep} [get]
func lookupCEPHandler(lookup address.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := lookup.Lookup(r.Context(), chi.URLParam(r, "cep"))
		if err != nil {
			switch {
			case errors.Is(err, address.ErrInvalidCEP):
				http.Error(w, "cep must have 8 digits", http.StatusBadRequest)
			case errors.Is(err, address.ErrNotFound):
				http.Error(w, "cep not found", http.StatusNotFound)
			default:
				http.Error(w, "address provider unavailable", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, addressResponse{
			CEP:        a.CEP,
			Street:     a.Street,
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			UF:         a.UF,
			IBGE:       a.IBGE,
			DDD:        a.DDD,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
