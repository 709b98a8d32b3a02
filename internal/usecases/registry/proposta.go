package registry

import (
	"strings"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// CreateProposta cadastra uma proposta comercial. Quando há endereço, a
// proposta é geocodificada em melhor esforço: falha na geocodificação
// apenas deixa as coordenadas vazias.
func (s *Service) CreateProposta(proposta *domain.Proposta) (*domain.Proposta, error) {
	if strings.TrimSpace(proposta.Titulo) == "" {
		return nil, ErrTituloObrigatorio
	}

	if strings.TrimSpace(proposta.ClienteID) == "" {
		return nil, ErrClienteObrigatorio
	}

	if proposta.Valor < 0 {
		return nil, ErrValorInvalido
	}

	if proposta.Status == "" {
		proposta.Status = domain.PropostaStatusRascunho
	}
	if !domain.PropostaStatusValido(proposta.Status) {
		return nil, ErrStatusInvalido
	}

	cliente, err := s.clienteRepo.GetClienteByID(proposta.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNaoEncontrado
	}

	s.geocodeProposta(proposta)

	return s.propostaRepo.CreateProposta(proposta)
}

func (s *Service) geocodeProposta(proposta *domain.Proposta) {
	if strings.TrimSpace(proposta.Endereco) == "" || s.geocoder == nil {
		return
	}

	coords, err := s.geocoder.Geocode(proposta.Endereco)
	if err != nil {
		logrus.Warnf("Erro ao geocodificar endereço da proposta: %v", err)
		return
	}
	if coords == nil {
		return
	}

	proposta.Latitude = &coords.Latitude
	proposta.Longitude = &coords.Longitude
}

func (s *Service) GetProposta(id int64) (*domain.Proposta, error) {
	proposta, err := s.propostaRepo.GetPropostaByID(id)
	if err != nil {
		return nil, err
	}
	if proposta == nil {
		return nil, ErrRegistroNaoEncontrado
	}
	return proposta, nil
}

func (s *Service) ListPropostas(clienteID string) ([]*domain.Proposta, error) {
	return s.propostaRepo.ListPropostas(clienteID)
}

func (s *Service) UpdateProposta(proposta *domain.Proposta) error {
	atual, err := s.propostaRepo.GetPropostaByID(proposta.ID)
	if err != nil {
		return err
	}
	if atual == nil {
		return ErrRegistroNaoEncontrado
	}

	if !domain.PropostaStatusValido(proposta.Status) {
		return ErrStatusInvalido
	}

	if proposta.Valor < 0 {
		return ErrValorInvalido
	}

	// Endereço alterado refaz a geocodificação, também em melhor esforço
	if proposta.Endereco != atual.Endereco {
		proposta.Latitude = nil
		proposta.Longitude = nil
		s.geocodeProposta(proposta)
	}

	return s.propostaRepo.UpdateProposta(proposta)
}

func (s *Service) DeleteProposta(id int64) error {
	proposta, err := s.propostaRepo.GetPropostaByID(id)
	if err != nil {
		return err
	}
	if proposta == nil {
		return ErrRegistroNaoEncontrado
	}

	return s.propostaRepo.DeleteProposta(id)
}
