package registry

import (
	"strings"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
)

// CreateEtapa cadastra uma etapa de obra. O peso é a fração da etapa na
// conclusão da obra e deve ser positivo; as datas de report delimitam o
// mês em que a etapa entra nas séries de produção.
func (s *Service) CreateEtapa(req *domain.CreateEtapaRequest) (*domain.Etapa, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return nil, ErrNomeObrigatorio
	}

	if strings.TrimSpace(req.ObraID) == "" {
		return nil, ErrObraObrigatoria
	}

	if req.Peso <= 0 {
		return nil, ErrPesoInvalido
	}

	status := req.Status
	if status == "" {
		status = domain.EtapaStatusPendente
	}
	if !domain.EtapaStatusValido(status) {
		return nil, ErrStatusInvalido
	}

	obra, err := s.obraRepo.GetObraByID(req.ObraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}

	reportStart, err := utils.ParseDate(req.ReportStartDate)
	if err != nil {
		return nil, ErrDataInvalida
	}

	reportEnd, err := utils.ParseDate(req.ReportEndDate)
	if err != nil {
		return nil, ErrDataInvalida
	}

	etapa := &domain.Etapa{
		ObraID:          req.ObraID,
		Nome:            req.Nome,
		Status:          status,
		Peso:            req.Peso,
		ReportStartDate: reportStart,
		ReportEndDate:   reportEnd,
	}

	return s.etapaRepo.CreateEtapa(etapa)
}

func (s *Service) ListEtapasByObra(obraID string) ([]*domain.Etapa, error) {
	obra, err := s.obraRepo.GetObraByID(obraID)
	if err != nil {
		return nil, err
	}
	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}

	return s.etapaRepo.ListEtapasByObra(obraID)
}

func (s *Service) UpdateEtapa(req *domain.UpdateEtapaRequest) error {
	etapa, err := s.etapaRepo.GetEtapaByID(req.ID)
	if err != nil {
		return err
	}
	if etapa == nil {
		return ErrEtapaNaoEncontrada
	}

	if req.Nome != nil {
		if strings.TrimSpace(*req.Nome) == "" {
			return ErrNomeObrigatorio
		}
		etapa.Nome = *req.Nome
	}

	if req.Status != nil {
		if !domain.EtapaStatusValido(*req.Status) {
			return ErrStatusInvalido
		}
		etapa.Status = *req.Status
	}

	if req.Peso != nil {
		if *req.Peso <= 0 {
			return ErrPesoInvalido
		}
		etapa.Peso = *req.Peso
	}

	if req.ReportStartDate != nil {
		reportStart, err := utils.ParseDate(*req.ReportStartDate)
		if err != nil {
			return ErrDataInvalida
		}
		etapa.ReportStartDate = reportStart
	}

	if req.ReportEndDate != nil {
		reportEnd, err := utils.ParseDate(*req.ReportEndDate)
		if err != nil {
			return ErrDataInvalida
		}
		etapa.ReportEndDate = reportEnd
	}

	return s.etapaRepo.UpdateEtapa(etapa)
}

func (s *Service) DeleteEtapa(id int64) error {
	etapa, err := s.etapaRepo.GetEtapaByID(id)
	if err != nil {
		return err
	}
	if etapa == nil {
		return ErrEtapaNaoEncontrada
	}

	return s.etapaRepo.DeleteEtapa(id)
}
