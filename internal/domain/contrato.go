package domain

import (
	"time"
)

// Status possíveis de um contrato
const (
	ContratoStatusAtivo      = "ativo"
	ContratoStatusEncerrado  = "encerrado"
	ContratoStatusRescindido = "rescindido"
)

// Contrato representa o contrato firmado para uma obra
type Contrato struct {
	ID             int64      `json:"id"`
	ObraID         string     `json:"obra_id"`
	Numero         string     `json:"numero"`
	Valor          float64    `json:"valor"`
	Status         string     `json:"status"`
	DataAssinatura *time.Time `json:"data_assinatura"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateContratoRequest struct {
	ObraID         string  `json:"obra_id"`
	Numero         string  `json:"numero"`
	Valor          float64 `json:"valor"`
	Status         string  `json:"status"`
	DataAssinatura string  `json:"data_assinatura"`
}

func ContratoStatusValido(status string) bool {
	switch status {
	case ContratoStatusAtivo, ContratoStatusEncerrado, ContratoStatusRescindido:
		return true
	}
	return false
}
