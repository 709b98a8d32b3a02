package reporting

import (
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/pkg/utils"
)

// CalculateFinancials consolida lançamentos de custo e receita em uma
// visão financeira da obra. Somente custos classificados como Direto ou
// Indireto entram nos totais; classificações desconhecidas são
// descartadas em silêncio para não travar o relatório por erro de
// cadastro. A margem só é calculada quando há receita realizada.
func CalculateFinancials(custos []*domain.LancamentoCusto, receitas []*domain.LancamentoReceita) *domain.AnaliseFinanceira {
	analise := &domain.AnaliseFinanceira{}

	for _, custo := range custos {
		switch custo.Tipo {
		case domain.CustoTipoDireto:
			analise.CustoDiretoPrevisto += custo.ValorPrevisto
			analise.CustoDiretoReal += custo.ValorReal
		case domain.CustoTipoIndireto:
			analise.CustoIndiretoPrevisto += custo.ValorPrevisto
			analise.CustoIndiretoReal += custo.ValorReal
		}
	}

	for _, receita := range receitas {
		analise.ReceitaPrevista += receita.ValorPrevisto
		analise.ReceitaReal += receita.ValorReal
	}

	custoTotalPrevisto := analise.CustoDiretoPrevisto + analise.CustoIndiretoPrevisto
	custoTotalReal := analise.CustoDiretoReal + analise.CustoIndiretoReal

	analise.CustoTotalPrevisto = custoTotalPrevisto
	analise.CustoTotalReal = custoTotalReal
	analise.VariacaoCusto = custoTotalReal - custoTotalPrevisto
	analise.VariacaoReceita = analise.ReceitaReal - analise.ReceitaPrevista
	analise.Saldo = analise.ReceitaReal - custoTotalReal

	// Sem receita realizada a margem fica em zero
	if analise.ReceitaReal > 0 {
		analise.Margem = utils.RoundWithTwoDecimalPlace(analise.Saldo / analise.ReceitaReal * 100)
	}

	return analise
}
