package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"visitas-api/internal/adapters/address/viacep"
	"visitas-api/internal/adapters/distance/distancesvc"
	"visitas-api/internal/router"
)

// newTestServer levanta la API con repo in-memory y los dos upstreams falsos.
func newTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	// Sin env: el router cae al repo in-memory.
	t.Setenv("VISITAS_DSN", "")
	t.Setenv("VISITAS_DB", "")

	fakeViaCEP := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasPrefix(r.URL.Path, "/ws/30140071/") {
			fmt.Fprint(w, `{
				"cep": "30140-071",
				"logradouro": "Avenida Afonso Pena",
				"bairro": "Centro",
				"localidade": "Belo Horizonte",
				"uf": "MG",
				"ibge": "3106200",
				"ddd": "31"
			}`)
			return
		}
		fmt.Fprint(w, `{"erro": true}`)
	}))

	fakeDistance := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/distance" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"distance_km": 7.42}`)
	}))

	ts := httptest.NewServer(router.NewRouter(router.Options{
		AddressLookup:   viacep.NewClient(viacep.Config{BaseURL: fakeViaCEP.URL}),
		DistanceChecker: distancesvc.NewClient(distancesvc.Config{BaseURL: fakeDistance.URL}),
	}))

	cleanup := func() {
		ts.Close()
		fakeViaCEP.Close()
		fakeDistance.Close()
	}
	return ts, cleanup
}

func TestHTTP_VisitCRUDRoundTrip(t *testing.T) {
	ts, cleanup := newTestServer(t)
	defer cleanup()

	// Create
	visitID := createVisit(t, ts.URL, map[string]any{
		"title":       "Visita Técnica - Mina X",
		"description": "Inspeção de rotina",
		"date":        "2025-01-10T14:00:00",
		"cep":         "30140-071",
		"responsible": "Carlos Alberto",
		"checklist": []map[string]any{
			{"label": "EPI conferido", "done": true},
			{"label": "Registro fotográfico", "done": false},
		},
	})

	// Read
	{
		st, body := doReq(t, ts.URL, "GET", "/visits/"+visitID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get visit, got %d body=%s", st, string(body))
		}
		var got struct {
			Title  string `json:"title"`
			CEP    string `json:"cep"`
			Status string `json:"status"`
			Checklist []struct {
				Label string `json:"label"`
				Done  bool   `json:"done"`
			} `json:"checklist"`
		}
		_ = json.Unmarshal(body, &got)
		if got.Title != "Visita Técnica - Mina X" {
			t.Fatalf("unexpected title %q", got.Title)
		}
		if got.CEP != "30140071" {
			t.Fatalf("expected normalized cep, got %q", got.CEP)
		}
		if got.Status != "scheduled" {
			t.Fatalf("expected default status scheduled, got %q", got.Status)
		}
		if len(got.Checklist) != 2 || !got.Checklist[0].Done {
			t.Fatalf("unexpected checklist %#v", got.Checklist)
		}
	}

	// Update (completar visita)
	{
		st, body := doReq(t, ts.URL, "PUT", "/visits/"+visitID, map[string]any{
			"title":  "Visita Técnica - Mina X",
			"status": "completed",
			"checklist": []map[string]any{
				{"label": "EPI conferido", "done": true},
				{"label": "Registro fotográfico", "done": true},
			},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
		}
	}

	// Transición ilegal: completed -> scheduled
	{
		st, _ := doReq(t, ts.URL, "PUT", "/visits/"+visitID, map[string]any{
			"title":  "Visita Técnica - Mina X",
			"status": "scheduled",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for completed -> scheduled, got %d", st)
		}
	}

	// Delete
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/visits/"+visitID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
	}

	// Gone
	{
		st, _ := doReq(t, ts.URL, "GET", "/visits/"+visitID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/visits/"+visitID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on double delete, got %d", st)
		}
	}
}

func TestHTTP_ListPaginationAndFilter(t *testing.T) {
	ts, cleanup := newTestServer(t)
	defer cleanup()

	ids := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		ids = append(ids, createVisit(t, ts.URL, map[string]any{
			"title": fmt.Sprintf("Visita %d", i),
			"date":  fmt.Sprintf("2025-01-0%dT10:00:00", i),
		}))
	}

	// Completar la visita más vieja
	{
		st, body := doReq(t, ts.URL, "PUT", "/visits/"+ids[0], map[string]any{
			"title":  "Visita 1",
			"date":   "2025-01-01T10:00:00",
			"status": "completed",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 completing visit, got %d body=%s", st, string(body))
		}
	}

	listLen := func(query string) int {
		st, body := doReq(t, ts.URL, "GET", "/visits"+query, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list %q, got %d body=%s", query, st, string(body))
		}
		var items []json.RawMessage
		_ = json.Unmarshal(body, &items)
		return len(items)
	}

	if n := listLen(""); n != 3 {
		t.Fatalf("expected 3 visits, got %d", n)
	}
	if n := listLen("?size=2&page=1"); n != 2 {
		t.Fatalf("expected 2 visits on page 1, got %d", n)
	}
	if n := listLen("?size=2&page=2"); n != 1 {
		t.Fatalf("expected 1 visit on page 2, got %d", n)
	}
	if n := listLen("?size=2&page=3"); n != 0 {
		t.Fatalf("expected empty page 3, got %d", n)
	}
	if n := listLen("?status=completed"); n != 1 {
		t.Fatalf("expected 1 completed visit, got %d", n)
	}
	if n := listLen("?status=scheduled"); n != 2 {
		t.Fatalf("expected 2 scheduled visits, got %d", n)
	}

	// Orden: fecha descendente
	{
		_, body := doReq(t, ts.URL, "GET", "/visits", nil)
		var items []struct {
			Title string `json:"title"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 3 || items[0].Title != "Visita 3" {
			t.Fatalf("expected newest first, got %#v", items)
		}
	}

	// Status desconocido
	{
		st, _ := doReq(t, ts.URL, "GET", "/visits?status=paused", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown status, got %d", st)
		}
	}
}

func TestHTTP_DistanceCheck_PersistsResult(t *testing.T) {
	ts, cleanup := newTestServer(t)
	defer cleanup()

	visitID := createVisit(t, ts.URL, map[string]any{
		"title": "Visita com coordenadas",
		"lat":   -19.9232,
		"lon":   -43.9419,
	})

	// destination omitido: usa lat/lon de la visita
	{
		st, body := doReq(t, ts.URL, "POST", "/visits/"+visitID+"/distance-check", map[string]any{
			"origin": map[string]any{"lat": -19.93, "lon": -43.18},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 distance-check, got %d body=%s", st, string(body))
		}
		var resp struct {
			VisitID    string  `json:"visit_id"`
			DistanceKM float64 `json:"distance_km"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.VisitID != visitID || resp.DistanceKM != 7.42 {
			t.Fatalf("unexpected response %s", string(body))
		}
	}

	// El resultado quedó persistido en la visita
	{
		st, body := doReq(t, ts.URL, "GET", "/visits/"+visitID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get visit, got %d", st)
		}
		var got struct {
			DistanceKM        *float64 `json:"distance_km"`
			DistanceCheckedAt *string  `json:"distance_checked_at"`
		}
		_ = json.Unmarshal(body, &got)
		if got.DistanceKM == nil || *got.DistanceKM != 7.42 {
			t.Fatalf("expected persisted distance 7.42, got %s", string(body))
		}
		if got.DistanceCheckedAt == nil {
			t.Fatalf("expected distance_checked_at set")
		}
	}

	// origin es obligatorio
	{
		st, _ := doReq(t, ts.URL, "POST", "/visits/"+visitID+"/distance-check", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without origin, got %d", st)
		}
	}

	// Visita sin coordenadas ni destination
	{
		bareID := createVisit(t, ts.URL, map[string]any{"title": "Sem coordenadas"})
		st, _ := doReq(t, ts.URL, "POST", "/visits/"+bareID+"/distance-check", map[string]any{
			"origin": map[string]any{"lat": 0, "lon": 0},
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without destination, got %d", st)
		}
	}

	// Visita inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/visits/nope/distance-check", map[string]any{
			"origin": map[string]any{"lat": 0, "lon": 0},
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown visit, got %d", st)
		}
	}
}

func TestHTTP_DistanceCheck_UpstreamDown(t *testing.T) {
	t.Setenv("VISITAS_DSN", "")
	t.Setenv("VISITAS_DB", "")

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		DistanceChecker: distancesvc.NewClient(distancesvc.Config{BaseURL: broken.URL}),
	}))
	defer ts.Close()

	visitID := createVisit(t, ts.URL, map[string]any{"title": "Visita"})

	st, _ := doReq(t, ts.URL, "POST", "/visits/"+visitID+"/distance-check", map[string]any{
		"origin":      map[string]any{"lat": 0, "lon": 0},
		"destination": map[string]any{"lat": 1, "lon": 1},
	})
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502 when distance-service is down, got %d", st)
	}
}

func TestHTTP_CEPLookup(t *testing.T) {
	ts, cleanup := newTestServer(t)
	defer cleanup()

	// CEP conocido (con guión: se normaliza)
	{
		st, body := doReq(t, ts.URL, "GET", "/address/cep/30140-071", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cep lookup, got %d body=%s", st, string(body))
		}
		var got struct {
			City string `json:"city"`
			UF   string `json:"uf"`
		}
		_ = json.Unmarshal(body, &got)
		if got.City != "Belo Horizonte" || got.UF != "MG" {
			t.Fatalf("unexpected address %s", string(body))
		}
	}

	// CEP desconocido
	{
		st, _ := doReq(t, ts.URL, "GET", "/address/cep/99999999", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown cep, got %d", st)
		}
	}

	// CEP inválido
	{
		st, _ := doReq(t, ts.URL, "GET", "/address/cep/12", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid cep, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts, cleanup := newTestServer(t)
	defer cleanup()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	var got struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	_ = json.Unmarshal(body, &got)
	if got.Status != "ok" || got.Service != "visitas-api" {
		t.Fatalf("unexpected health body %s", string(body))
	}
}

func createVisit(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/visits", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create visit: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
