package domain

import (
	"time"
)

// Tipos de evento da agenda
const (
	EventoTipoReuniao = "reuniao"
	EventoTipoVisita  = "visita"
	EventoTipoPrazo   = "prazo"
)

// Evento representa um compromisso na agenda, opcionalmente vinculado a
// uma obra
type Evento struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	ObraID    *string   `json:"obra_id,omitempty"`
	Titulo    string    `json:"titulo"`
	Tipo      string    `json:"tipo"`
	DataHora  time.Time `json:"data_hora"`
	Notas     string    `json:"notas,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func EventoTipoValido(tipo string) bool {
	switch tipo {
	case EventoTipoReuniao, EventoTipoVisita, EventoTipoPrazo:
		return true
	}
	return false
}
