package visits

// Status define el ciclo de vida de una visita.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ValidStatus reporta si s es un estado conocido.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// CanTransition reporta si el cambio from -> to es legal.
// Las transiciones son lineales: scheduled -> completed|canceled.
// completed y canceled son terminales. Re-escribir el mismo estado es legal.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	if from != StatusScheduled {
		return false
	}
	return to == StatusCompleted || to == StatusCanceled
}
