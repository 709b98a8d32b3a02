package reporting

import (
	"math"
	"sync"
	"time"

	"github.com/obrativa/obras-manager-api/infrastructure/repository"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrObraNaoEncontrada indica que a obra do relatório não existe
	ErrObraNaoEncontrada = errors.New("obra não encontrada")
	// ErrClienteNaoEncontrado indica que o cliente da obra não existe
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
)

// Reporter gera o relatório gerencial consolidado de uma obra
type Reporter interface {
	GenerateReport(obraID string) (*domain.RelatorioGerencial, error)
}

type Service struct {
	obraRepository       repository.ObraRepository
	clienteRepository    repository.ClienteRepository
	etapaRepository      repository.EtapaRepository
	financeiroRepository repository.FinanceiroRepository

	// now permite fixar a data de referência nos testes
	now func() time.Time
}

func NewService(
	obraRepo repository.ObraRepository,
	clienteRepo repository.ClienteRepository,
	etapaRepo repository.EtapaRepository,
	financeiroRepo repository.FinanceiroRepository,
) *Service {
	return &Service{
		obraRepository:       obraRepo,
		clienteRepository:    clienteRepo,
		etapaRepository:      etapaRepo,
		financeiroRepository: financeiroRepo,
		now:                  time.Now,
	}
}

// GenerateReport monta o relatório gerencial da obra a partir dos dados
// correntes. O relatório nunca é persistido: cada chamada recalcula os
// índices e as séries do zero.
//
// Obra e cliente são resolvidos primeiro para falhar rápido quando o ID
// não existe. Etapas, custos e receitas são buscados em paralelo, já que
// são consultas independentes.
func (s *Service) GenerateReport(obraID string) (*domain.RelatorioGerencial, error) {
	obra, err := s.obraRepository.GetObraByID(obraID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar obra do relatório")
	}

	if obra == nil {
		return nil, ErrObraNaoEncontrada
	}

	cliente, err := s.clienteRepository.GetClienteByID(obra.ClienteID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar cliente do relatório")
	}

	if cliente == nil {
		return nil, ErrClienteNaoEncontrado
	}

	var (
		wg       sync.WaitGroup
		etapas   []*domain.Etapa
		custos   []*domain.LancamentoCusto
		receitas []*domain.LancamentoReceita

		etapasErr, custosErr, receitasErr error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		etapas, etapasErr = s.etapaRepository.ListEtapasByObra(obraID)
	}()

	go func() {
		defer wg.Done()
		custos, custosErr = s.financeiroRepository.ListCustosByObra(obraID)
	}()

	go func() {
		defer wg.Done()
		receitas, receitasErr = s.financeiroRepository.ListReceitasByObra(obraID)
	}()

	wg.Wait()

	for _, err := range []error{etapasErr, custosErr, receitasErr} {
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar dados do relatório")
		}
	}

	logrus.WithFields(logrus.Fields{
		"obra_id":  obraID,
		"etapas":   len(etapas),
		"custos":   len(custos),
		"receitas": len(receitas),
	}).Info("Gerando relatório gerencial")

	relatorio := &domain.RelatorioGerencial{
		Obra:              s.resumoObra(obra),
		Cliente:           resumoCliente(cliente),
		AnaliseFisica:     CalculateProgress(etapas, s.now()),
		AnaliseFinanceira: CalculateFinancials(custos, receitas),
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Relatório gerencial gerado: %s", utils.PrettyJson(relatorio))
	}

	return relatorio, nil
}

func (s *Service) resumoObra(obra *domain.Obra) domain.ObraResumo {
	return domain.ObraResumo{
		ID:                    obra.ID,
		Nome:                  obra.Nome,
		Gestor:                obra.Gestor,
		DataInicio:            utils.FormatDate(obra.DataInicio),
		DataConclusaoPrevista: utils.FormatDate(obra.DataConclusaoPrevista),
		PrazoDias:             PrazoDias(obra.DataInicio, obra.DataConclusaoPrevista),
		Status:                obra.Status,
	}
}

func resumoCliente(cliente *domain.Cliente) domain.ClienteResumo {
	return domain.ClienteResumo{
		Nome:        cliente.Nome,
		Codigo:      cliente.Codigo,
		Responsavel: cliente.Responsavel,
		Telefone:    cliente.Telefone,
		Endereco:    cliente.EnderecoCompleto(),
	}
}

// PrazoDias calcula o prazo da obra em dias corridos, arredondando
// frações de dia para cima. Sem as duas datas não há prazo definido.
func PrazoDias(inicio, fim *time.Time) *int {
	if inicio == nil || fim == nil {
		return nil
	}

	dias := int(math.Ceil(fim.Sub(*inicio).Hours() / 24))

	return &dias
}
