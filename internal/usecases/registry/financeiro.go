package registry

import (
	"strings"

	"github.com/obrativa/obras-manager-api/internal/domain"
)

// CreateCusto registra um custo previsto/realizado de uma obra. O tipo
// precisa ser uma das categorias reconhecidas pelo rollup financeiro.
func (s *Service) CreateCusto(custo *domain.LancamentoCusto) (*domain.LancamentoCusto, error) {
	if err := s.validateCusto(custo); err != nil {
		return nil, err
	}

	return s.financeiroRepo.CreateCusto(custo)
}

func (s *Service) UpdateCusto(custo *domain.LancamentoCusto) error {
	if err := s.validateCusto(custo); err != nil {
		return err
	}

	return s.financeiroRepo.UpdateCusto(custo)
}

func (s *Service) DeleteCusto(id int64) error {
	return s.financeiroRepo.DeleteCusto(id)
}

func (s *Service) validateCusto(custo *domain.LancamentoCusto) error {
	if strings.TrimSpace(custo.ObraID) == "" {
		return ErrObraObrigatoria
	}

	if custo.Tipo != domain.CustoTipoDireto && custo.Tipo != domain.CustoTipoIndireto {
		return ErrTipoInvalido
	}

	if custo.ValorPrevisto < 0 || custo.ValorReal < 0 {
		return ErrValorInvalido
	}

	obra, err := s.obraRepo.GetObraByID(custo.ObraID)
	if err != nil {
		return err
	}
	if obra == nil {
		return ErrObraNaoEncontrada
	}

	return nil
}

func (s *Service) CreateReceita(receita *domain.LancamentoReceita) (*domain.LancamentoReceita, error) {
	if err := s.validateReceita(receita); err != nil {
		return nil, err
	}

	return s.financeiroRepo.CreateReceita(receita)
}

func (s *Service) UpdateReceita(receita *domain.LancamentoReceita) error {
	if err := s.validateReceita(receita); err != nil {
		return err
	}

	return s.financeiroRepo.UpdateReceita(receita)
}

func (s *Service) DeleteReceita(id int64) error {
	return s.financeiroRepo.DeleteReceita(id)
}

func (s *Service) validateReceita(receita *domain.LancamentoReceita) error {
	if strings.TrimSpace(receita.ObraID) == "" {
		return ErrObraObrigatoria
	}

	if receita.ValorPrevisto < 0 || receita.ValorReal < 0 {
		return ErrValorInvalido
	}

	obra, err := s.obraRepo.GetObraByID(receita.ObraID)
	if err != nil {
		return err
	}
	if obra == nil {
		return ErrObraNaoEncontrada
	}

	return nil
}

// ListFinanceiroByObra retorna custos e receitas da obra para a tela
// financeira
func (s *Service) ListFinanceiroByObra(obraID string) ([]*domain.LancamentoCusto, []*domain.LancamentoReceita, error) {
	obra, err := s.obraRepo.GetObraByID(obraID)
	if err != nil {
		return nil, nil, err
	}
	if obra == nil {
		return nil, nil, ErrObraNaoEncontrada
	}

	custos, err := s.financeiroRepo.ListCustosByObra(obraID)
	if err != nil {
		return nil, nil, err
	}

	receitas, err := s.financeiroRepo.ListReceitasByObra(obraID)
	if err != nil {
		return nil, nil, err
	}

	return custos, receitas, nil
}
