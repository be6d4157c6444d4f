package distance

// Location es un punto lat/lon tal como lo espera distance-service.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Result es la distancia calculada entre origen y destino.
type Result struct {
	DistanceKM float64
}
