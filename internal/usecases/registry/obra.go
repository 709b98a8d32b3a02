package registry

import (
	"strings"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
	"github.com/pkg/errors"
)

// CreateObra cadastra uma obra vinculada a um cliente existente. Sem
// status informado a obra entra em planejamento.
func (s *Service) CreateObra(req *domain.CreateObraRequest) (*domain.Obra, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return nil, ErrNomeObrigatorio
	}

	if strings.TrimSpace(req.ClienteID) == "" {
		return nil, ErrClienteObrigatorio
	}

	cliente, err := s.clienteRepo.GetClienteByID(req.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNaoEncontrado
	}

	status := req.Status
	if status == "" {
		status = domain.ObraStatusPlanejamento
	}
	if !domain.ObraStatusValido(status) {
		return nil, ErrStatusInvalido
	}

	dataInicio, err := utils.ParseDate(req.DataInicio)
	if err != nil {
		return nil, ErrDataInvalida
	}

	dataConclusao, err := utils.ParseDate(req.DataConclusaoPrevista)
	if err != nil {
		return nil, ErrDataInvalida
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar identificador da obra")
	}

	obra := &domain.Obra{
		ID:                    id,
		ClienteID:             req.ClienteID,
		Nome:                  req.Nome,
		Descricao:             req.Descricao,
		Gestor:                req.Gestor,
		Status:                status,
		Endereco:              req.Endereco,
		DataInicio:            dataInicio,
		DataConclusaoPrevista: dataConclusao,
	}

	return s.obraRepo.CreateObra(obra)
}

func (s *Service) GetObra(id string) (*domain.Obra, error) {
	obra, err := s.obraRepo.GetObraByID(id)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}

	// A obra carrega as etapas para a tela de detalhe
	etapas, err := s.etapaRepo.ListEtapasByObra(id)
	if err != nil {
		return nil, err
	}
	obra.Etapas = etapas

	return obra, nil
}

func (s *Service) ListObras(status string) ([]*domain.Obra, error) {
	if status != "" && !domain.ObraStatusValido(status) {
		return nil, ErrStatusInvalido
	}
	return s.obraRepo.ListObras(status)
}

func (s *Service) ListObrasByCliente(clienteID string) ([]*domain.Obra, error) {
	cliente, err := s.clienteRepo.GetClienteByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNaoEncontrado
	}

	return s.obraRepo.ListObrasByCliente(clienteID)
}

func (s *Service) UpdateObra(req *domain.UpdateObraRequest) error {
	obra, err := s.obraRepo.GetObraByID(req.ID)
	if err != nil {
		return err
	}
	if obra == nil {
		return ErrObraNaoEncontrada
	}

	if req.Nome != nil {
		if strings.TrimSpace(*req.Nome) == "" {
			return ErrNomeObrigatorio
		}
		obra.Nome = *req.Nome
	}

	if req.Descricao != nil {
		obra.Descricao = *req.Descricao
	}

	if req.Gestor != nil {
		obra.Gestor = *req.Gestor
	}

	if req.Status != nil {
		if !domain.ObraStatusValido(*req.Status) {
			return ErrStatusInvalido
		}
		obra.Status = *req.Status
	}

	if req.Endereco != nil {
		obra.Endereco = *req.Endereco
	}

	if req.DataInicio != nil {
		dataInicio, err := utils.ParseDate(*req.DataInicio)
		if err != nil {
			return ErrDataInvalida
		}
		obra.DataInicio = dataInicio
	}

	if req.DataConclusaoPrevista != nil {
		dataConclusao, err := utils.ParseDate(*req.DataConclusaoPrevista)
		if err != nil {
			return ErrDataInvalida
		}
		obra.DataConclusaoPrevista = dataConclusao
	}

	return s.obraRepo.UpdateObra(obra)
}

func (s *Service) DeleteObra(id string) error {
	obra, err := s.obraRepo.GetObraByID(id)
	if err != nil {
		return err
	}
	if obra == nil {
		return ErrObraNaoEncontrada
	}

	return s.obraRepo.DeleteObra(id)
}
