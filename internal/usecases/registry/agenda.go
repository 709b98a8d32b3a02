package registry

import (
	"strings"
	"time"

	"github.com/obrativa/obras-manager-api/internal/domain"
)

// CreateEvento cadastra um compromisso na agenda. O vínculo com a obra
// é opcional, mas quando informado a obra precisa existir.
func (s *Service) CreateEvento(evento *domain.Evento) (*domain.Evento, error) {
	if err := s.validateEvento(evento); err != nil {
		return nil, err
	}

	return s.agendaRepo.CreateEvento(evento)
}

// ListEventos lista compromissos do período. Com userID zero a listagem
// cobre toda a equipe.
func (s *Service) ListEventos(userID int, inicio, fim time.Time) ([]*domain.Evento, error) {
	if !fim.After(inicio) {
		return nil, ErrPeriodoInvalido
	}

	if userID == 0 {
		return s.agendaRepo.ListEventosByPeriodo(inicio, fim)
	}

	return s.agendaRepo.ListEventosByUser(userID, inicio, fim)
}

func (s *Service) UpdateEvento(evento *domain.Evento) error {
	atual, err := s.agendaRepo.GetEventoByID(evento.ID)
	if err != nil {
		return err
	}
	if atual == nil {
		return ErrRegistroNaoEncontrado
	}

	if err := s.validateEvento(evento); err != nil {
		return err
	}

	return s.agendaRepo.UpdateEvento(evento)
}

func (s *Service) DeleteEvento(id int64) error {
	evento, err := s.agendaRepo.GetEventoByID(id)
	if err != nil {
		return err
	}
	if evento == nil {
		return ErrRegistroNaoEncontrado
	}

	return s.agendaRepo.DeleteEvento(id)
}

func (s *Service) validateEvento(evento *domain.Evento) error {
	if strings.TrimSpace(evento.Titulo) == "" {
		return ErrTituloObrigatorio
	}

	if evento.UserID == 0 {
		return ErrUsuarioObrigatorio
	}

	if evento.DataHora.IsZero() {
		return ErrDataHoraObrigatoria
	}

	if !domain.EventoTipoValido(evento.Tipo) {
		return ErrTipoInvalido
	}

	if evento.ObraID != nil {
		obra, err := s.obraRepo.GetObraByID(*evento.ObraID)
		if err != nil {
			return err
		}
		if obra == nil {
			return ErrObraNaoEncontrada
		}
	}

	return nil
}
