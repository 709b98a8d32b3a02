package registry

import (
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/pkg/errors"
)

// GetResumoDashboard agrega os números do painel inicial: obras por
// status, total de clientes, valor contratado ativo e os compromissos
// dos próximos sete dias
func (s *Service) GetResumoDashboard() (*domain.ResumoDashboard, error) {
	obrasPorStatus, err := s.obraRepo.CountObrasPorStatus()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar obras por status")
	}

	totalObras := 0
	for _, count := range obrasPorStatus {
		totalObras += count
	}

	totalClientes, err := s.clienteRepo.CountClientes()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar clientes")
	}

	valorContratado, err := s.contratoRepo.SumValorContratosAtivos()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar contratos ativos")
	}

	agora := s.now()
	proximosEventos, err := s.agendaRepo.ListEventosByPeriodo(agora, agora.AddDate(0, 0, 7))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar próximos eventos")
	}

	return &domain.ResumoDashboard{
		ObrasPorStatus:       obrasPorStatus,
		TotalObras:           totalObras,
		TotalClientes:        totalClientes,
		ValorContratadoAtivo: valorContratado,
		ProximosEventos:      proximosEventos,
	}, nil
}
