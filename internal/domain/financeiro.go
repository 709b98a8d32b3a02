package domain

import (
	"time"
)

// Categorias de custo reconhecidas pelo rollup financeiro. Outras
// categorias são aceitas no cadastro mas ficam fora dos totais do
// relatório gerencial.
const (
	CustoTipoDireto   = "Direto"
	CustoTipoIndireto = "Indireto"
)

// LancamentoCusto representa um custo previsto/realizado de uma obra
type LancamentoCusto struct {
	ID            int64     `json:"id"`
	ObraID        string    `json:"obra_id"`
	Tipo          string    `json:"tipo"`
	Descricao     string    `json:"descricao"`
	ValorPrevisto float64   `json:"valor_previsto"`
	ValorReal     float64   `json:"valor_real"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LancamentoReceita representa uma receita prevista/realizada de uma obra
type LancamentoReceita struct {
	ID            int64     `json:"id"`
	ObraID        string    `json:"obra_id"`
	Descricao     string    `json:"descricao"`
	ValorPrevisto float64   `json:"valor_previsto"`
	ValorReal     float64   `json:"valor_real"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
