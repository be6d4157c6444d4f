package viacep

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"visitas-api/internal/platform/httpclient"
	"visitas-api/internal/ports/address"
)

const DefaultBaseURL = "https://viacep.com.br"

// Config del cliente ViaCEP. BaseURL normalmente viene de env
// (VIACEP_BASE_URL) y solo se cambia en tests.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Opcional: transport inyectable (tests).
	Transport http.RoundTripper
}

// Client implementa address.Lookup contra ViaCEP.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	hc := httpclient.New(cfg.Timeout)
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
	}
	hc.BaseURL = strings.TrimRight(base, "/")

	return &Client{http: hc}
}

// viaCEPResponse es el payload crudo de ViaCEP.
// erro llega como bool (true) o como string ("true") según la versión del
// servicio, por eso RawMessage.
type viaCEPResponse struct {
	CEP         string          `json:"cep"`
	Logradouro  string          `json:"logradouro"`
	Complemento string          `json:"complemento"`
	Bairro      string          `json:"bairro"`
	Localidade  string          `json:"localidade"`
	UF          string          `json:"uf"`
	IBGE        string          `json:"ibge"`
	DDD         string          `json:"ddd"`
	Erro        json.RawMessage `json:"erro"`
}

func (r viaCEPResponse) notFound() bool {
	if len(r.Erro) == 0 {
		return false
	}
	v := bytes.Trim(bytes.TrimSpace(r.Erro), `"`)
	return strings.EqualFold(string(v), "true")
}

// Lookup consulta GET /ws/{cep}/json/. CEP se normaliza a 8 dígitos.
func (c *Client) Lookup(ctx context.Context, cep string) (address.Address, error) {
	clean := onlyDigits(cep)
	if len(clean) != 8 {
		return address.Address{}, address.ErrInvalidCEP
	}

	var out viaCEPResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/ws/"+clean+"/json/", nil, nil, &out)
	if err != nil {
		return address.Address{}, fmt.Errorf("%w: %v", address.ErrUpstream, err)
	}

	if out.notFound() {
		return address.Address{}, address.ErrNotFound
	}

	return address.Address{
		CEP:        onlyDigits(out.CEP),
		Street:     out.Logradouro,
		Complement: out.Complemento,
		District:   out.Bairro,
		City:       out.Localidade,
		UF:         out.UF,
		IBGE:       out.IBGE,
		DDD:        out.DDD,
	}, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
