package registry

import (
	"strings"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
	"github.com/pkg/errors"
)

// CreateCliente cadastra um cliente. O código curto é gerado quando não
// informado e identifica o cliente nos relatórios e no portal.
func (s *Service) CreateCliente(cliente *domain.Cliente) (*domain.Cliente, error) {
	if strings.TrimSpace(cliente.Nome) == "" {
		return nil, ErrNomeObrigatorio
	}

	if cliente.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar identificador do cliente")
		}
		cliente.ID = id
	}

	if cliente.Codigo == "" {
		codigo, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar código do cliente")
		}
		cliente.Codigo = codigo
	}

	return s.clienteRepo.CreateCliente(cliente)
}

func (s *Service) GetCliente(id string) (*domain.Cliente, error) {
	cliente, err := s.clienteRepo.GetClienteByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, ErrClienteNaoEncontrado
	}
	return cliente, nil
}

func (s *Service) ListClientes() ([]*domain.Cliente, error) {
	return s.clienteRepo.ListClientes()
}

func (s *Service) UpdateCliente(req *domain.UpdateClienteRequest) error {
	cliente, err := s.clienteRepo.GetClienteByID(req.ID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return ErrClienteNaoEncontrado
	}

	if req.Nome != nil {
		if strings.TrimSpace(*req.Nome) == "" {
			return ErrNomeObrigatorio
		}
		cliente.Nome = *req.Nome
	}

	if req.Responsavel != nil {
		cliente.Responsavel = *req.Responsavel
	}

	if req.Email != nil {
		cliente.Email = *req.Email
	}

	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}

	if req.Logradouro != nil {
		cliente.Logradouro = *req.Logradouro
	}

	if req.Numero != nil {
		cliente.Numero = *req.Numero
	}

	if req.Bairro != nil {
		cliente.Bairro = *req.Bairro
	}

	if req.Cidade != nil {
		cliente.Cidade = *req.Cidade
	}

	if req.Estado != nil {
		cliente.Estado = *req.Estado
	}

	if req.CEP != nil {
		cliente.CEP = *req.CEP
	}

	return s.clienteRepo.UpdateCliente(cliente)
}

func (s *Service) DeleteCliente(id string) error {
	cliente, err := s.clienteRepo.GetClienteByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return ErrClienteNaoEncontrado
	}

	return s.clienteRepo.DeleteCliente(id)
}
