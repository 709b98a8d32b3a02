package reporting

import (
	"testing"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFinancials(t *testing.T) {
	tests := []struct {
		name     string
		custos   []*domain.LancamentoCusto
		receitas []*domain.LancamentoReceita
		validate func(t *testing.T, analise *domain.AnaliseFinanceira)
	}{
		{
			name:     "Sem lançamentos - totais e margem zerados",
			custos:   []*domain.LancamentoCusto{},
			receitas: []*domain.LancamentoReceita{},
			validate: func(t *testing.T, analise *domain.AnaliseFinanceira) {
				assert.Equal(t, 0.0, analise.CustoTotalPrevisto)
				assert.Equal(t, 0.0, analise.CustoTotalReal)
				assert.Equal(t, 0.0, analise.Saldo)
				assert.Equal(t, 0.0, analise.Margem)
			},
		},
		{
			name: "Custos diretos e indiretos somados por categoria",
			custos: []*domain.LancamentoCusto{
				{Tipo: domain.CustoTipoDireto, ValorPrevisto: 100000, ValorReal: 95000},
				{Tipo: domain.CustoTipoDireto, ValorPrevisto: 50000, ValorReal: 60000},
				{Tipo: domain.CustoTipoIndireto, ValorPrevisto: 30000, ValorReal: 25000},
			},
			receitas: []*domain.LancamentoReceita{
				{ValorPrevisto: 250000, ValorReal: 216000},
			},
			validate: func(t *testing.T, analise *domain.AnaliseFinanceira) {
				assert.Equal(t, 150000.0, analise.CustoDiretoPrevisto)
				assert.Equal(t, 155000.0, analise.CustoDiretoReal)
				assert.Equal(t, 30000.0, analise.CustoIndiretoPrevisto)
				assert.Equal(t, 25000.0, analise.CustoIndiretoReal)
				assert.Equal(t, 180000.0, analise.CustoTotalPrevisto)
				assert.Equal(t, 180000.0, analise.CustoTotalReal)
				assert.Equal(t, 0.0, analise.VariacaoCusto)
				assert.Equal(t, -34000.0, analise.VariacaoReceita)
				assert.Equal(t, 36000.0, analise.Saldo)

				// Margem: 36000 / 216000 = 16.67%
				assert.Equal(t, 16.67, analise.Margem)
			},
		},
		{
			name: "Categoria de custo desconhecida fica fora dos totais",
			custos: []*domain.LancamentoCusto{
				{Tipo: domain.CustoTipoDireto, ValorPrevisto: 1000, ValorReal: 1000},
				{Tipo: "Financeiro", ValorPrevisto: 9999, ValorReal: 9999},
				{Tipo: "", ValorPrevisto: 500, ValorReal: 500},
			},
			receitas: nil,
			validate: func(t *testing.T, analise *domain.AnaliseFinanceira) {
				assert.Equal(t, 1000.0, analise.CustoTotalPrevisto)
				assert.Equal(t, 1000.0, analise.CustoTotalReal)
			},
		},
		{
			name:   "Receita realizada zero resulta em margem zero",
			custos: nil,
			receitas: []*domain.LancamentoReceita{
				{ValorPrevisto: 80000, ValorReal: 0},
			},
			validate: func(t *testing.T, analise *domain.AnaliseFinanceira) {
				assert.Equal(t, 80000.0, analise.ReceitaPrevista)
				assert.Equal(t, 0.0, analise.ReceitaReal)
				assert.Equal(t, 0.0, analise.Margem)
			},
		},
		{
			name: "Saldo negativo gera margem negativa",
			custos: []*domain.LancamentoCusto{
				{Tipo: domain.CustoTipoDireto, ValorPrevisto: 100000, ValorReal: 120000},
			},
			receitas: []*domain.LancamentoReceita{
				{ValorPrevisto: 100000, ValorReal: 90000},
			},
			validate: func(t *testing.T, analise *domain.AnaliseFinanceira) {
				assert.Equal(t, -30000.0, analise.Saldo)
				assert.Equal(t, 20000.0, analise.VariacaoCusto)

				assert.Equal(t, -33.33, analise.Margem)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analise := CalculateFinancials(tt.custos, tt.receitas)

			tt.validate(t, analise)
		})
	}
}
