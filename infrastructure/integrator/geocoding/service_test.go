package geocoding

import (
	"testing"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding/geocodingclient"
	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/stretchr/testify/assert"
)

type fakeGeocodingClient struct {
	calls   int
	results map[string]*geocodingclient.Coordenadas
	err     error
}

func (f *fakeGeocodingClient) Search(endereco string) (*geocodingclient.Coordenadas, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results[endereco], nil
}

func newTestService(client geocodingclient.Client) (*GeocodingService, *time.Time, *[]time.Duration) {
	cfg := &config.Config{}
	cfg.Geocoder.CacheTTLMinutes = 60
	cfg.Geocoder.MinIntervalMilli = 1000

	service := New(cfg, client)

	current := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	var slept []time.Duration

	service.now = func() time.Time { return current }
	service.sleep = func(d time.Duration) {
		slept = append(slept, d)
		current = current.Add(d)
	}

	return service, &current, &slept
}

func TestGeocode_CacheEvitaSegundaConsulta(t *testing.T) {
	client := &fakeGeocodingClient{
		results: map[string]*geocodingclient.Coordenadas{
			"Av. Paulista, 1000, São Paulo": {Latitude: -23.5614, Longitude: -46.6559},
		},
	}
	service, _, _ := newTestService(client)

	coords, err := service.Geocode("Av. Paulista, 1000, São Paulo")
	assert.NoError(t, err)
	assert.NotNil(t, coords)
	assert.Equal(t, -23.5614, coords.Latitude)
	assert.Equal(t, 1, client.calls)

	// Segunda consulta idêntica sai do cache
	coords, err = service.Geocode("Av. Paulista, 1000, São Paulo")
	assert.NoError(t, err)
	assert.NotNil(t, coords)
	assert.Equal(t, 1, client.calls)
}

func TestGeocode_ChaveDoCacheNormalizaEspacosECaixa(t *testing.T) {
	client := &fakeGeocodingClient{
		results: map[string]*geocodingclient.Coordenadas{},
	}
	service, _, _ := newTestService(client)

	_, err := service.Geocode("Rua das Flores, 42")
	assert.NoError(t, err)

	_, err = service.Geocode("  rua   das FLORES, 42 ")
	assert.NoError(t, err)

	assert.Equal(t, 1, client.calls)
}

func TestGeocode_ExpiracaoDoCacheReconsulta(t *testing.T) {
	client := &fakeGeocodingClient{
		results: map[string]*geocodingclient.Coordenadas{},
	}
	service, current, _ := newTestService(client)

	_, err := service.Geocode("Rua A, 1")
	assert.NoError(t, err)
	assert.Equal(t, 1, client.calls)

	// Após o TTL a entrada expira e o provedor é consultado de novo
	*current = current.Add(61 * time.Minute)

	_, err = service.Geocode("Rua A, 1")
	assert.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestGeocode_RespeitaIntervaloMinimoEntreConsultas(t *testing.T) {
	client := &fakeGeocodingClient{
		results: map[string]*geocodingclient.Coordenadas{},
	}
	service, _, slept := newTestService(client)

	_, err := service.Geocode("Rua A, 1")
	assert.NoError(t, err)

	_, err = service.Geocode("Rua B, 2")
	assert.NoError(t, err)

	// A segunda consulta, imediata, precisa aguardar o intervalo mínimo
	assert.NotEmpty(t, *slept)
	assert.Equal(t, time.Second, (*slept)[len(*slept)-1])
}

func TestGeocode_EnderecoVazioNaoConsulta(t *testing.T) {
	client := &fakeGeocodingClient{}
	service, _, _ := newTestService(client)

	coords, err := service.Geocode("   ")
	assert.NoError(t, err)
	assert.Nil(t, coords)
	assert.Equal(t, 0, client.calls)
}
