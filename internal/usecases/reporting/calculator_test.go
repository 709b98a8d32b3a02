package reporting

import (
	"testing"
	"time"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func dataRef(ano int, mes time.Month, dia int) *time.Time {
	d := time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestCalculateProgress_Indices(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		etapas       []*domain.Etapa
		expectedIFEC float64
		expectedIEC  float64
	}{
		{
			name:         "Sem etapas - índices zerados",
			etapas:       []*domain.Etapa{},
			expectedIFEC: 0,
			expectedIEC:  0,
		},
		{
			name: "Duas de quatro etapas concluídas com pesos desiguais",
			etapas: []*domain.Etapa{
				{Nome: "Fundação", Status: domain.EtapaStatusConcluido, Peso: 0.2, ReportEndDate: dataRef(2024, 3, 31)},
				{Nome: "Estrutura", Status: domain.EtapaStatusConcluido, Peso: 0.3, ReportEndDate: dataRef(2024, 4, 30)},
				{Nome: "Alvenaria", Status: domain.EtapaStatusEmAndamento, Peso: 0.3, ReportEndDate: dataRef(2024, 5, 31)},
				{Nome: "Acabamento", Status: domain.EtapaStatusPendente, Peso: 0.2, ReportEndDate: dataRef(2024, 8, 31)},
			},
			// IFEC: 2/4 = 50%. IEC: peso concluído 0.5 sobre peso
			// planejado até 15/06 (0.2+0.3+0.3 = 0.8) = 62.5%
			expectedIFEC: 50.0,
			expectedIEC:  62.5,
		},
		{
			name: "Todas as etapas no futuro - IEC sem denominador",
			etapas: []*domain.Etapa{
				{Nome: "Fundação", Status: domain.EtapaStatusConcluido, Peso: 0.5, ReportEndDate: dataRef(2024, 9, 30)},
				{Nome: "Estrutura", Status: domain.EtapaStatusPendente, Peso: 0.5, ReportEndDate: dataRef(2024, 10, 31)},
			},
			expectedIFEC: 50.0,
			expectedIEC:  0,
		},
		{
			name: "Etapa sem data de término conta no IFEC mas não no IEC",
			etapas: []*domain.Etapa{
				{Nome: "Fundação", Status: domain.EtapaStatusConcluido, Peso: 0.4, ReportEndDate: dataRef(2024, 3, 31)},
				{Nome: "Extra", Status: domain.EtapaStatusConcluido, Peso: 0.2},
				{Nome: "Acabamento", Status: domain.EtapaStatusPendente, Peso: 0.4, ReportEndDate: dataRef(2024, 5, 31)},
			},
			// IFEC: 2/3 = 66.67%. IEC: (0.4+0.2)/(0.4+0.4) = 75%
			expectedIFEC: 66.67,
			expectedIEC:  75.0,
		},
		{
			name: "Data de término exatamente na referência entra no planejado",
			etapas: []*domain.Etapa{
				{Nome: "Fundação", Status: domain.EtapaStatusPendente, Peso: 1.0, ReportEndDate: dataRef(2024, 6, 15)},
			},
			expectedIFEC: 0,
			expectedIEC:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analise := CalculateProgress(tt.etapas, asOf)

			assert.Equal(t, tt.expectedIFEC, analise.IFEC.Valor)
			assert.Equal(t, tt.expectedIEC, analise.IEC.Valor)
		})
	}
}

func TestCalculateProgress_ProducaoMensal(t *testing.T) {
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	etapas := []*domain.Etapa{
		{Nome: "Fundação", Status: domain.EtapaStatusConcluido, Peso: 0.2, ReportEndDate: dataRef(2024, 3, 31)},
		{Nome: "Estrutura", Status: domain.EtapaStatusConcluido, Peso: 0.3, ReportEndDate: dataRef(2024, 4, 30)},
		{Nome: "Instalações", Status: domain.EtapaStatusIniciado, Peso: 0.1, ReportEndDate: dataRef(2024, 4, 15)},
		{Nome: "Alvenaria", Status: domain.EtapaStatusEmAndamento, Peso: 0.3, ReportEndDate: dataRef(2024, 5, 31)},
		{Nome: "Acabamento", Status: domain.EtapaStatusPendente, Peso: 0.1, ReportEndDate: dataRef(2024, 8, 31)},
	}

	analise := CalculateProgress(etapas, asOf)

	expected := []domain.ProducaoMensal{
		{MesAno: "2024-03", Previsto: 20.0, Real: 20.0, Variacao: 0},
		{MesAno: "2024-04", Previsto: 40.0, Real: 30.0, Variacao: -10.0},
		{MesAno: "2024-05", Previsto: 30.0, Real: 0, Variacao: -30.0},
		{MesAno: "2024-08", Previsto: 10.0, Real: 0, Variacao: -10.0},
	}
	assert.Equal(t, expected, analise.ProducaoMensal)

	expectedAcumulada := []domain.ProducaoMensal{
		{MesAno: "2024-03", Previsto: 20.0, Real: 20.0, Variacao: 0},
		{MesAno: "2024-04", Previsto: 60.0, Real: 50.0, Variacao: -10.0},
		{MesAno: "2024-05", Previsto: 90.0, Real: 50.0, Variacao: -40.0},
		{MesAno: "2024-08", Previsto: 100.0, Real: 50.0, Variacao: -50.0},
	}
	assert.Equal(t, expectedAcumulada, analise.ProducaoAcumulada)
}

func TestCalculateProgress_AcumuladoConsistenteComMensal(t *testing.T) {
	asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	etapas := []*domain.Etapa{
		{Nome: "A", Status: domain.EtapaStatusConcluido, Peso: 0.15, ReportEndDate: dataRef(2024, 1, 31)},
		{Nome: "B", Status: domain.EtapaStatusConcluido, Peso: 0.25, ReportEndDate: dataRef(2024, 2, 29)},
		{Nome: "C", Status: domain.EtapaStatusEmAndamento, Peso: 0.35, ReportEndDate: dataRef(2024, 2, 10)},
		{Nome: "D", Status: domain.EtapaStatusPendente, Peso: 0.25, ReportEndDate: dataRef(2024, 4, 30)},
	}

	analise := CalculateProgress(etapas, asOf)

	assert.Len(t, analise.ProducaoAcumulada, len(analise.ProducaoMensal))

	// O último ponto acumulado equivale à soma dos pontos mensais
	var somaPrevisto, somaReal float64
	for _, ponto := range analise.ProducaoMensal {
		somaPrevisto += ponto.Previsto
		somaReal += ponto.Real
	}

	ultimo := analise.ProducaoAcumulada[len(analise.ProducaoAcumulada)-1]
	assert.InDelta(t, somaPrevisto, ultimo.Previsto, 0.01)
	assert.InDelta(t, somaReal, ultimo.Real, 0.01)

	// Séries acumuladas nunca decrescem e vêm em ordem cronológica
	for i := 1; i < len(analise.ProducaoAcumulada); i++ {
		anterior := analise.ProducaoAcumulada[i-1]
		atual := analise.ProducaoAcumulada[i]

		assert.Less(t, anterior.MesAno, atual.MesAno)
		assert.GreaterOrEqual(t, atual.Previsto, anterior.Previsto)
		assert.GreaterOrEqual(t, atual.Real, anterior.Real)
	}
}
