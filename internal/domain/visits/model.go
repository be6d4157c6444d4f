package visits

import "time"

// ChecklistItem es un ítem de la pauta de la visita (inspección, asistencia, etc.).
type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
	Notes string `json:"notes,omitempty"`
}

// Visit representa una visita técnica agendada.
type Visit struct {
	ID string

	Title       string
	Description string

	// Fecha/hora agendada. Opcional: una visita puede crearse sin fecha.
	Date *time.Time

	// Datos de endereço. city/uf normalmente vienen de ViaCEP pero se guardan tal cual.
	CEP     string
	Address string
	City    string
	UF      string

	Lat *float64
	Lon *float64

	Responsible string
	Status      Status

	Checklist []ChecklistItem

	// Resultado del último distance-check, si hubo.
	DistanceKM        *float64
	DistanceCheckedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
