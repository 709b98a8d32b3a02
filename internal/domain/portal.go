package domain

import (
	"time"
)

// AcessoPortal é a concessão de acesso de um usuário do portal a uma
// obra de um cliente
type AcessoPortal struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	ClienteID string    `json:"cliente_id"`
	ObraID    string    `json:"obra_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ConvitePortalRequest é o pedido de provisionamento de acesso ao portal
type ConvitePortalRequest struct {
	Email     string `json:"email"`
	ClienteID string `json:"client_id"`
	ObraID    string `json:"project_id"`
}

// ConvitePortalResponse é a resposta do provisionamento
type ConvitePortalResponse struct {
	Success   bool   `json:"success"`
	UserID    int    `json:"user_id"`
	IsNewUser bool   `json:"is_new_user"`
	Message   string `json:"message"`
}

// ObraPortal é a visão de uma obra exposta no portal do cliente: etapas
// e índices de progresso, sem dados financeiros
type ObraPortal struct {
	ID     string   `json:"id"`
	Nome   string   `json:"nome"`
	Status string   `json:"status"`
	Gestor string   `json:"gestor"`
	IFEC   float64  `json:"ifec"`
	IEC    float64  `json:"iec"`
	Etapas []*Etapa `json:"etapas"`
}
