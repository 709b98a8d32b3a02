package geocoding

import (
	"strings"
	"sync"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/geocoding/geocodingclient"
	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/sirupsen/logrus"
)

// GeocodingIntegrator resolve endereços em coordenadas com deduplicação
// local. O provedor externo limita a taxa de consultas, então as
// requisições são serializadas com um intervalo mínimo entre elas e os
// resultados ficam em um cache local com validade limitada.
type GeocodingIntegrator interface {
	Geocode(endereco string) (*geocodingclient.Coordenadas, error)
}

type cacheEntry struct {
	coords    *geocodingclient.Coordenadas
	fetchedAt time.Time
}

type GeocodingService struct {
	cfg    *config.Config
	Client geocodingclient.Client

	mu          sync.Mutex
	cache       map[string]cacheEntry
	lastRequest time.Time

	// substituível em teste
	now   func() time.Time
	sleep func(time.Duration)
}

func New(cfg *config.Config, client geocodingclient.Client) *GeocodingService {
	return &GeocodingService{
		cfg:    cfg,
		Client: client,
		cache:  make(map[string]cacheEntry),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Geocode resolve um endereço. Consultas repetidas dentro da validade do
// cache não chegam ao provedor; consultas novas são serializadas
// respeitando o intervalo mínimo configurado.
func (s *GeocodingService) Geocode(endereco string) (*geocodingclient.Coordenadas, error) {
	chave := normalizaEndereco(endereco)
	if chave == "" {
		return nil, nil
	}

	ttl := time.Duration(s.cfg.Geocoder.CacheTTLMinutes) * time.Minute
	minInterval := time.Duration(s.cfg.Geocoder.MinIntervalMilli) * time.Millisecond

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache[chave]; ok && s.now().Sub(entry.fetchedAt) < ttl {
		return entry.coords, nil
	}

	// Respeita o intervalo mínimo entre chamadas ao provedor. O lock é
	// mantido durante a espera de propósito: é isso que serializa as
	// consultas concorrentes.
	if elapsed := s.now().Sub(s.lastRequest); elapsed < minInterval {
		s.sleep(minInterval - elapsed)
	}

	coords, err := s.Client.Search(endereco)
	s.lastRequest = s.now()
	if err != nil {
		logrus.WithError(err).WithField("endereco", endereco).Warn("Erro ao geocodificar endereço")
		return nil, err
	}

	s.cache[chave] = cacheEntry{coords: coords, fetchedAt: s.now()}
	return coords, nil
}

func normalizaEndereco(endereco string) string {
	return strings.ToLower(strings.Join(strings.Fields(endereco), " "))
}
