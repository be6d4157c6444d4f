package distancesvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"visitas-api/internal/platform/httpclient"
	"visitas-api/internal/ports/distance"
)

var (
	ErrNotConfigured = errors.New("distance-service client not configured")
)

// Config del cliente distance-service.
// BaseURL viene de env (DISTANCE_SERVICE_URL) en el servicio que lo instancie.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Opcional: transport inyectable (tests).
	Transport http.RoundTripper
}

// Client implementa distance.Checker contra el microservicio distance-service.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) *Client {
	hc := httpclient.New(cfg.Timeout)
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
	}
	hc.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	return &Client{http: hc}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != ""
}

// Contrato de distance-service: POST /distance
// request: {"from": {"lat","lon"}, "to": {"lat","lon"}}
// response: {"distance_km": n}
type checkRequest struct {
	From distance.Location `json:"from"`
	To   distance.Location `json:"to"`
}

type checkResponse struct {
	DistanceKM float64 `json:"distance_km"`
}

func (c *Client) Check(ctx context.Context, origin, destination distance.Location) (distance.Result, error) {
	if !c.IsConfigured() {
		return distance.Result{}, ErrNotConfigured
	}

	var out checkResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/distance", nil, checkRequest{
		From: origin,
		To:   destination,
	}, &out)
	if err != nil {
		return distance.Result{}, fmt.Errorf("%w: %v", distance.ErrUpstream, err)
	}

	return distance.Result{DistanceKM: out.DistanceKM}, nil
}
