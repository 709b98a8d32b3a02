package domain

import (
	"time"
)

// Status possíveis de uma proposta comercial
const (
	PropostaStatusRascunho = "rascunho"
	PropostaStatusEnviada  = "enviada"
	PropostaStatusAceita   = "aceita"
	PropostaStatusRecusada = "recusada"
)

// Proposta representa uma proposta comercial para um cliente. Quando o
// endereço é informado, a proposta é geocodificada em melhor esforço —
// falha de geocodificação nunca bloqueia o cadastro.
type Proposta struct {
	ID        int64     `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao,omitempty"`
	Valor     float64   `json:"valor"`
	Status    string    `json:"status"`
	Endereco  string    `json:"endereco,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func PropostaStatusValido(status string) bool {
	switch status {
	case PropostaStatusRascunho, PropostaStatusEnviada, PropostaStatusAceita, PropostaStatusRecusada:
		return true
	}
	return false
}
