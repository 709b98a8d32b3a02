package registry

import (
	"strings"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
)

// CreateContrato registra o contrato de uma obra existente
func (s *Service) CreateContrato(req *domain.CreateContratoRequest) (*domain.Contrato, error) {
	if strings.TrimSpace(req.ObraID) == "" {
		return nil, ErrObraObrigatoria
	}

	if req.Valor < 0 {
		return nil, ErrValorInvalido
	}

	status := req.Status
	if status == "" {
		status = domain.ContratoStatusAtivo
	}
	if !domain.ContratoStatusValido(status) {
		return nil, ErrStatusInvalido
	}

	obra, err := s.obraRepo.GetObraByID(req.ObraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}

	dataAssinatura, err := utils.ParseDate(req.DataAssinatura)
	if err != nil {
		return nil, ErrDataInvalida
	}

	contrato := &domain.Contrato{
		ObraID:         req.ObraID,
		Numero:         req.Numero,
		Valor:          req.Valor,
		Status:         status,
		DataAssinatura: dataAssinatura,
	}

	return s.contratoRepo.CreateContrato(contrato)
}

func (s *Service) ListContratosByObra(obraID string) ([]*domain.Contrato, error) {
	obra, err := s.obraRepo.GetObraByID(obraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}

	return s.contratoRepo.ListContratosByObra(obraID)
}

func (s *Service) UpdateContrato(contrato *domain.Contrato) error {
	atual, err := s.contratoRepo.GetContratoByID(contrato.ID)
	if err != nil {
		return err
	}
	if atual == nil {
		return ErrRegistroNaoEncontrado
	}

	if !domain.ContratoStatusValido(contrato.Status) {
		return ErrStatusInvalido
	}

	if contrato.Valor < 0 {
		return ErrValorInvalido
	}

	return s.contratoRepo.UpdateContrato(contrato)
}

func (s *Service) DeleteContrato(id int64) error {
	contrato, err := s.contratoRepo.GetContratoByID(id)
	if err != nil {
		return err
	}
	if contrato == nil {
		return ErrRegistroNaoEncontrado
	}

	return s.contratoRepo.DeleteContrato(id)
}
