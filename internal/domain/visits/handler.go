package visits

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"visitas-api/internal/ports/distance"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, checker distance.Checker) {
	r.Route("/visits", func(vr chi.Router) {
		vr.Post("/", createVisitHandler(svc))
		vr.Get("/", listVisitsHandler(svc))

		vr.Get("/{visitID}", getVisitHandler(svc))
		vr.Put("/{visitID}", updateVisitHandler(svc))
		vr.Delete("/{visitID}", deleteVisitHandler(svc))

		// Integración con distance-service
		vr.Post("/{visitID}/distance-check", distanceCheckHandler(svc, checker))
	})
}

// visitRequest es el cuerpo de POST/PUT de visitas.
type visitRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // RFC3339 o 2006-01-02T15:04:05
	CEP         string          `json:"cep"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	UF          string          `json:"uf"`
	Lat         *float64        `json:"lat"`
	Lon         *float64        `json:"lon"`
	Responsible string          `json:"responsible"`
	Status      Status          `json:"status" enums:"scheduled,completed,canceled"`
	Checklist   []ChecklistItem `json:"checklist"`
}

// visitResponse representa una visita devuelta por la API.
type visitResponse struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	Date              *time.Time      `json:"date,omitempty"`
	CEP               string          `json:"cep,omitempty"`
	Address           string          `json:"address,omitempty"`
	City              string          `json:"city,omitempty"`
	UF                string          `json:"uf,omitempty"`
	Lat               *float64        `json:"lat,omitempty"`
	Lon               *float64        `json:"lon,omitempty"`
	Responsible       string          `json:"responsible,omitempty"`
	Status            Status          `json:"status"`
	Checklist         []ChecklistItem `json:"checklist,omitempty"`
	DistanceKM        *float64        `json:"distance_km,omitempty"`
	DistanceCheckedAt *time.Time      `json:"distance_checked_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// distanceCheckRequest es el cuerpo de POST /visits/{id}/distance-check.
// destination puede omitirse si la visita tiene lat/lon guardados.
type distanceCheckRequest struct {
	Origin      *distance.Location `json:"origin"`
	Destination *distance.Location `json:"destination"`
}

type distanceCheckResponse struct {
	VisitID    string    `json:"visit_id"`
	DistanceKM float64   `json:"distance_km"`
	CheckedAt  time.Time `json:"checked_at"`
}

// createVisitHandler godoc
// @Summary Registrar una nueva visita
// @Description Crea una visita técnica. Si no viene status, queda en `scheduled`.
// @Tags visits
// @Accept json
// @Produce json
// @Param payload body visitRequest true "Datos de la visita; date en RFC3339"
// @Success 201 {object} visitResponse
// @Failure 400 {string} string "invalid json / title requerido / status desconocido"
// @Router /visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, ok := parseDate(req.Date)
		if !ok {
			http.Error(w, "date must be RFC3339 or YYYY-MM-DDTHH:MM:SS", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
			CEP:         req.CEP,
			Address:     req.Address,
			City:        req.City,
			UF:          req.UF,
			Lat:         req.Lat,
			Lon:         req.Lon,
			Responsible: req.Responsible,
			Status:      req.Status,
			Checklist:   req.Checklist,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

// listVisitsHandler godoc
// @Summary Listar visitas
// @Description Lista visitas con paginación y filtro opcional por status. Orden: fecha agendada (o creación) descendente.
// @Tags visits
// @Produce json
// @Param page query int false "Página (default 1)"
// @Param size query int false "Tamaño de página (1..100, default 50)"
// @Param status query string false "Filtro por status" Enums(scheduled, completed, canceled)
// @Success 200 {array} visitResponse
// @Failure 400 {string} string "status desconocido"
// @Router /visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, _ := strconv.Atoi(q.Get("page"))
		size, _ := strconv.Atoi(q.Get("size"))
		status := Status(strings.TrimSpace(q.Get("status")))

		items, err := svc.List(r.Context(), status, page, size)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "unknown status", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getVisitHandler godoc
// @Summary Buscar visita por ID
// @Tags visits
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Success 200 {object} visitResponse
// @Failure 404 {string} string "visit not found"
// @Router /visits/{visitID} [get]
func getVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			http.Error(w, "visit not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

// updateVisitHandler godoc
// @Summary Actualizar visita
// @Description Reemplaza los campos de la visita (PUT). Status vacío conserva el actual; una transición ilegal (p.ej. completed -> scheduled) devuelve 409.
// @Tags visits
// @Accept json
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Param payload body visitRequest true "Datos de la visita"
// @Success 200 {object} visitResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 404 {string} string "visit not found"
// @Failure 409 {string} string "invalid status transition"
// @Router /visits/{visitID} [put]
func updateVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, ok := parseDate(req.Date)
		if !ok {
			http.Error(w, "date must be RFC3339 or YYYY-MM-DDTHH:MM:SS", http.StatusBadRequest)
			return
		}

		v, err := svc.Update(r.Context(), chi.URLParam(r, "visitID"), UpdateInput{
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
			CEP:         req.CEP,
			Address:     req.Address,
			City:        req.City,
			UF:          req.UF,
			Lat:         req.Lat,
			Lon:         req.Lon,
			Responsible: req.Responsible,
			Status:      req.Status,
			Checklist:   req.Checklist,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "visit not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidTransition):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toVisitResponse(v))
	}
}

// deleteVisitHandler godoc
// @Summary Excluir visita
// @Description Elimina la visita definitivamente.
// @Tags visits
// @Param visitID path string true "ID de la visita"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "visit not found"
// @Router /visits/{visitID} [delete]
func deleteVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "visitID")); err != nil {
			http.Error(w, "visit not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// distanceCheckHandler godoc
// @Summary Calcular distancia hasta la visita
// @Description Consulta distance-service y persiste el resultado en la visita. destination puede omitirse si la visita tiene lat/lon guardados.
// @Tags distance
// @Accept json
// @Produce json
// @Param visitID path string true "ID de la visita"
// @Param payload body distanceCheckRequest true "Puntos origen/destino"
// @Success 200 {object} distanceCheckResponse
// @Failure 400 {string} string "invalid json / origin requerido / sin destino"
// @Failure 404 {string} string "visit not found"
// @Failure 502 {string} string "distance-service no disponible"
// @Router /visits/{visitID}/distance-check [post]
func distanceCheckHandler(svc *Service, checker distance.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "visitID"))
		if err != nil {
			http.Error(w, "visit not found", http.StatusNotFound)
			return
		}

		var req distanceCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Origin == nil {
			http.Error(w, "origin is required", http.StatusBadRequest)
			return
		}

		dest := req.Destination
		if dest == nil {
			// Fallback: coordenadas guardadas en la visita.
			if v.Lat == nil || v.Lon == nil {
				http.Error(w, "destination is required (visit has no coordinates)", http.StatusBadRequest)
				return
			}
			dest = &distance.Location{Lat: *v.Lat, Lon: *v.Lon}
		}

		res, err := checker.Check(r.Context(), *req.Origin, *dest)
		if err != nil {
			http.Error(w, "distance-service unavailable", http.StatusBadGateway)
			return
		}

		updated, err := svc.RecordDistance(r.Context(), v.ID, res.DistanceKM)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, distanceCheckResponse{
			VisitID:    updated.ID,
			DistanceKM: res.DistanceKM,
			CheckedAt:  *updated.DistanceCheckedAt,
		})
	}
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:                v.ID,
		Title:             v.Title,
		Description:       v.Description,
		Date:              v.Date,
		CEP:               v.CEP,
		Address:           v.Address,
		City:              v.City,
		UF:                v.UF,
		Lat:               v.Lat,
		Lon:               v.Lon,
		Responsible:       v.Responsible,
		Status:            v.Status,
		Checklist:         v.Checklist,
		DistanceKM:        v.DistanceKM,
		DistanceCheckedAt: v.DistanceCheckedAt,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// parseDate acepta RFC3339 y el formato sin zona que usaba el frontend viejo.
// Vacío es válido (visita sin fecha).
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return &t, true
	}
	return nil, false
}

// writeJSON está duplicado a propósito entre módulos (visits/addresses);
// extraer un helper común recién vale la pena si aparece un tercer módulo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
