package reporting

import (
	"sort"
	"time"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
)

// producaoAcumulador acumula os pesos previsto e realizado de um mês
type producaoAcumulador struct {
	previsto float64
	real     float64
}

// CalculateProgress deriva os índices de avanço físico e as séries de
// produção de uma obra a partir das etapas.
//
// IFEC é a fração de etapas concluídas, sem ponderação. IEC compara o
// peso concluído com o peso planejado até a data de referência: etapas
// sem report_end_date não entram no denominador planejado (sem data
// comprometida, não podem estar adiantadas nem atrasadas), e etapas com
// data futura contribuem zero, sem crédito parcial.
//
// Nenhuma combinação de entrada gera erro: lista vazia, datas ausentes e
// pesos zerados degradam para índices e séries zeradas, porque o
// relatório é informativo, não transacional.
func CalculateProgress(etapas []*domain.Etapa, asOf time.Time) *domain.AnaliseFisica {
	analise := &domain.AnaliseFisica{
		IFEC:              domain.Indice{Descricao: "Índice físico de etapas concluídas"},
		IEC:               domain.Indice{Descricao: "Índice de eficiência de cronograma"},
		ProducaoMensal:    []domain.ProducaoMensal{},
		ProducaoAcumulada: []domain.ProducaoMensal{},
	}

	if len(etapas) == 0 {
		return analise
	}

	var (
		concluidas     int
		pesoConcluido  float64
		pesoPlanejado  float64
		porMes         = make(map[string]*producaoAcumulador)
	)

	for _, etapa := range etapas {
		if etapa.Concluida() {
			concluidas++
			pesoConcluido += etapa.Peso
		}

		if etapa.ReportEndDate == nil {
			// Sem data de término a etapa fica fora do denominador do
			// IEC e das séries mensais, mas continua contando no IFEC
			continue
		}

		if !etapa.ReportEndDate.After(asOf) {
			pesoPlanejado += etapa.Peso
		}

		mes := etapa.ReportEndDate.Format("2006-01")
		acumulador, ok := porMes[mes]
		if !ok {
			acumulador = &producaoAcumulador{}
			porMes[mes] = acumulador
		}

		acumulador.previsto += etapa.Peso
		if etapa.Concluida() {
			acumulador.real += etapa.Peso
		}
	}

	analise.IFEC.Valor = utils.RoundWithTwoDecimalPlace(float64(concluidas) / float64(len(etapas)) * 100)

	if pesoPlanejado > 0 {
		analise.IEC.Valor = utils.RoundWithTwoDecimalPlace(pesoConcluido / pesoPlanejado * 100)
	}

	// Ordenação lexical das chaves YYYY-MM equivale à cronológica
	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)

	var acumuladoPrevisto, acumuladoReal float64
	for _, mes := range meses {
		acumulador := porMes[mes]

		previsto := utils.RoundWithTwoDecimalPlace(acumulador.previsto * 100)
		real := utils.RoundWithTwoDecimalPlace(acumulador.real * 100)

		analise.ProducaoMensal = append(analise.ProducaoMensal, domain.ProducaoMensal{
			MesAno:   mes,
			Previsto: previsto,
			Real:     real,
			Variacao: utils.RoundWithTwoDecimalPlace(real - previsto),
		})

		acumuladoPrevisto += acumulador.previsto
		acumuladoReal += acumulador.real

		previstoAcum := utils.RoundWithTwoDecimalPlace(acumuladoPrevisto * 100)
		realAcum := utils.RoundWithTwoDecimalPlace(acumuladoReal * 100)

		analise.ProducaoAcumulada = append(analise.ProducaoAcumulada, domain.ProducaoMensal{
			MesAno:   mes,
			Previsto: previstoAcum,
			Real:     realAcum,
			Variacao: utils.RoundWithTwoDecimalPlace(realAcum - previstoAcum),
		})
	}

	return analise
}
