package domain

import (
	"time"
)

// Status possíveis de uma obra
const (
	ObraStatusPlanejamento = "planejamento"
	ObraStatusEmAndamento  = "em_andamento"
	ObraStatusPausada      = "pausada"
	ObraStatusConcluida    = "concluida"
	ObraStatusCancelada    = "cancelada"
)

// Obra representa um projeto de construção/engenharia
type Obra struct {
	ID                    string     `json:"id"`
	ClienteID             string     `json:"cliente_id"`
	Nome                  string     `json:"nome"`
	Descricao             string     `json:"descricao,omitempty"`
	Gestor                string     `json:"gestor"`
	Status                string     `json:"status"`
	Endereco              string     `json:"endereco,omitempty"`
	DataInicio            *time.Time `json:"data_inicio"`
	DataConclusaoPrevista *time.Time `json:"data_conclusao_prevista"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	Etapas []*Etapa `json:"etapas,omitempty"`
}

func ObraStatusValido(status string) bool {
	switch status {
	case ObraStatusPlanejamento, ObraStatusEmAndamento, ObraStatusPausada,
		ObraStatusConcluida, ObraStatusCancelada:
		return true
	}
	return false
}

type CreateObraRequest struct {
	ClienteID             string `json:"cliente_id"`
	Nome                  string `json:"nome"`
	Descricao             string `json:"descricao"`
	Gestor                string `json:"gestor"`
	Status                string `json:"status"`
	Endereco              string `json:"endereco"`
	DataInicio            string `json:"data_inicio"`
	DataConclusaoPrevista string `json:"data_conclusao_prevista"`
}

type UpdateObraRequest struct {
	ID                    string  `json:"id"`
	Nome                  *string `json:"nome"`
	Descricao             *string `json:"descricao"`
	Gestor                *string `json:"gestor"`
	Status                *string `json:"status"`
	Endereco              *string `json:"endereco"`
	DataInicio            *string `json:"data_inicio"`
	DataConclusaoPrevista *string `json:"data_conclusao_prevista"`
}
