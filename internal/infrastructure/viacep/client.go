package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

const defaultTimeout = 3 * time.Second

type lookupResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         any    `json:"erro,omitempty"`
}

// Client resolves CEPs through ViaCEP. Results, including misses, are cached
// for ten minutes.
type Client struct {
	client   *http.Client
	cache    *cache.Cache
	endpoint string
}

var _ interfaces.IAddressLookup = (*Client)(nil)

func New(endpoint string) *Client {
	return &Client{
		client:   &http.Client{Timeout: defaultTimeout},
		cache:    cache.New(10*time.Minute, 15*time.Minute),
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

type cached struct {
	addr  entities.Address
	found bool
}

func (c *Client) Lookup(ctx context.Context, cep string) (entities.Address, bool, error) {
	cacheKey := "cep:" + cep
	if x, found := c.cache.Get(cacheKey); found {
		hit := x.(cached)
		return hit.addr, hit.found, nil
	}

	url := fmt.Sprintf("%s/%s/json/", c.endpoint, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, false, errors.Wrap(err, "viacep: build request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return entities.Address{}, false, errors.Wrap(err, "viacep: request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		c.cache.Set(cacheKey, cached{}, cache.DefaultExpiration)
		return entities.Address{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Address{}, false, errors.Errorf("viacep: unexpected status code %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, false, errors.Wrap(err, "viacep: decode")
	}
	if body.Erro != nil && body.Erro != false {
		c.cache.Set(cacheKey, cached{}, cache.DefaultExpiration)
		return entities.Address{}, false, nil
	}

	addr := entities.Address{
		CEP:          cep,
		Street:       body.Street,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		State:        body.State,
	}
	c.cache.Set(cacheKey, cached{addr: addr, found: true}, cache.DefaultExpiration)
	return addr, true, nil
}
