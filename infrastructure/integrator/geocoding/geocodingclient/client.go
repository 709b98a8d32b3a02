package geocodingclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/obrativa/obras-manager-api/pkg/utils"
)

// Coordenadas é o resultado da geocodificação de um endereço
type Coordenadas struct {
	Latitude  float64
	Longitude float64
}

type Client interface {
	Search(endereco string) (*Coordenadas, error)
}

type GeocodingClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GeocodingClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		config: cfg,
	}
}

// Search consulta o provedor de geocodificação; retorna nil quando o
// endereço não foi encontrado
func (c *GeocodingClient) Search(endereco string) (*Coordenadas, error) {
	searchURL := fmt.Sprintf(
		"%s/search?format=json&limit=1&q=%s",
		c.config.Geocoder.URL,
		url.QueryEscape(endereco),
	)

	data, err := utils.MakeRequest(c.httpClient, searchURL, map[string]string{
		"User-Agent": c.config.Geocoder.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: latitude inválida: %w", err)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: longitude inválida: %w", err)
	}

	return &Coordenadas{Latitude: lat, Longitude: lon}, nil
}
