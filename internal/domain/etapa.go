package domain

import (
	"time"
)

// Status possíveis de uma etapa de obra
const (
	EtapaStatusPendente    = "pendente"
	EtapaStatusIniciado    = "iniciado"
	EtapaStatusEmAndamento = "em_andamento"
	EtapaStatusConcluido   = "concluido"
)

// Etapa representa uma fase da obra com peso fracionário sobre a
// conclusão total. Os pesos são relativos à soma dos pesos das etapas
// irmãs — não precisam somar 1 nem 100.
type Etapa struct {
	ID              int64      `json:"id"`
	ObraID          string     `json:"obra_id"`
	Nome            string     `json:"nome"`
	Status          string     `json:"status"`
	Peso            float64    `json:"peso"`
	ReportStartDate *time.Time `json:"report_start_date"`
	ReportEndDate   *time.Time `json:"report_end_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Concluida indica se a etapa está marcada como concluída
func (e *Etapa) Concluida() bool {
	return e.Status == EtapaStatusConcluido
}

func EtapaStatusValido(status string) bool {
	switch status {
	case EtapaStatusPendente, EtapaStatusIniciado, EtapaStatusEmAndamento, EtapaStatusConcluido:
		return true
	}
	return false
}

type CreateEtapaRequest struct {
	ObraID          string  `json:"obra_id"`
	Nome            string  `json:"nome"`
	Status          string  `json:"status"`
	Peso            float64 `json:"peso"`
	ReportStartDate string  `json:"report_start_date"`
	ReportEndDate   string  `json:"report_end_date"`
}

type UpdateEtapaRequest struct {
	ID              int64    `json:"id"`
	Nome            *string  `json:"nome"`
	Status          *string  `json:"status"`
	Peso            *float64 `json:"peso"`
	ReportStartDate *string  `json:"report_start_date"`
	ReportEndDate   *string  `json:"report_end_date"`
}
