package domain

// Indice é um índice percentual do relatório com descrição para exibição
type Indice struct {
	Valor     float64 `json:"valor"`
	Descricao string  `json:"descricao"`
}

// ProducaoMensal é um ponto da série de produção, mensal ou acumulada.
// Valores em percentual (peso × 100) com duas casas decimais.
type ProducaoMensal struct {
	MesAno   string  `json:"mes_ano"` // formato YYYY-MM
	Previsto float64 `json:"previsto"`
	Real     float64 `json:"real"`
	Variacao float64 `json:"variacao"` // real - previsto no ponto
}

// AnaliseFisica agrega os índices de avanço físico e as séries de
// produção de uma obra
type AnaliseFisica struct {
	IFEC              Indice           `json:"ifec"`
	IEC               Indice           `json:"iec"`
	ProducaoMensal    []ProducaoMensal `json:"producao_mensal"`
	ProducaoAcumulada []ProducaoMensal `json:"producao_acumulada"`
}

// AnaliseFinanceira agrega custos e receitas previstos e realizados da
// obra. Valores monetários mantêm a precisão das somas; apenas a margem
// é arredondada para exibição.
type AnaliseFinanceira struct {
	CustoDiretoPrevisto   float64 `json:"custo_direto_previsto"`
	CustoIndiretoPrevisto float64 `json:"custo_indireto_previsto"`
	CustoDiretoReal       float64 `json:"custo_direto_real"`
	CustoIndiretoReal     float64 `json:"custo_indireto_real"`
	CustoTotalPrevisto    float64 `json:"custo_total_previsto"`
	CustoTotalReal        float64 `json:"custo_total_real"`
	ReceitaPrevista       float64 `json:"receita_prevista"`
	ReceitaReal           float64 `json:"receita_real"`
	VariacaoCusto         float64 `json:"variacao_custo"`
	VariacaoReceita       float64 `json:"variacao_receita"`
	Saldo                 float64 `json:"saldo"`
	Margem                float64 `json:"margem"` // zero quando não há receita realizada
}

// ObraResumo é o bloco de identificação da obra no relatório gerencial
type ObraResumo struct {
	ID                    string  `json:"id"`
	Nome                  string  `json:"nome"`
	Gestor                string  `json:"gestor"`
	DataInicio            *string `json:"data_inicio"`
	DataConclusaoPrevista *string `json:"data_conclusao_prevista"`
	PrazoDias             *int    `json:"prazo_dias"`
	Status                string  `json:"status"`
}

// ClienteResumo é o bloco de identificação do cliente no relatório
type ClienteResumo struct {
	Nome        string `json:"nome"`
	Codigo      string `json:"codigo"`
	Responsavel string `json:"responsavel"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
}

// RelatorioGerencial é o relatório completo de uma obra, recalculado a
// cada requisição a partir dos dados correntes — não é persistido
type RelatorioGerencial struct {
	Obra                  ObraResumo         `json:"obra"`
	Cliente               ClienteResumo      `json:"cliente"`
	AnaliseFisica         *AnaliseFisica     `json:"analise_fisica"`
	AnaliseFinanceira     *AnaliseFinanceira `json:"analise_financeira"`
	ObservacoesGerenciais string             `json:"observacoes_gerenciais"`
}
