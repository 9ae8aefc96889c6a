// Package viacep looks up brazilian postal codes on the public ViaCEP API.
package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase/interfaces"
	"portal_expositor/pkg/format"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultBaseURL = "https://viacep.com.br/ws"
	defaultTimeout = 5 * time.Second
)

var ErrNotFound = errors.New("CEP não encontrado.")

type response struct {
	Cep        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

// Client shares one request among concurrent lookups of the same postal code.
type Client struct {
	baseURL string
	http    *http.Client
	group   singleflight.Group
}

var _ interfaces.IAddressLookup = (*Client)(nil)

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Lookup resolves cep. Every failure, including an unreachable service, is
// reported as ErrNotFound.
func (c *Client) Lookup(ctx context.Context, cep string) (entities.Address, error) {
	digits := format.OnlyDigits(cep)
	if len(digits) != 8 {
		return entities.Address{}, ErrNotFound
	}

	v, err, _ := c.group.Do(digits, func() (any, error) {
		return c.fetch(ctx, digits)
	})
	if err != nil {
		log.Warn().Str("cep", digits).Err(err).Msg("[address][viacep] lookup failed")
		return entities.Address{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return v.(entities.Address), nil
}

func (c *Client) fetch(ctx context.Context, digits string) (entities.Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+digits+"/json/", nil)
	if err != nil {
		return entities.Address{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Address{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, err
	}
	if body.Erro != nil && body.Erro != false {
		return entities.Address{}, errors.New("erro flag set")
	}

	return entities.Address{
		ZipCode:      digits,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
