package domain

import (
	"strings"
	"time"
)

// Cliente representa um cliente da construtora
type Cliente struct {
	ID          string     `json:"id"`
	Codigo      string     `json:"codigo"`
	Nome        string     `json:"nome"`
	Responsavel string     `json:"responsavel"`
	Email       string     `json:"email"`
	Telefone    string     `json:"telefone"`
	Logradouro  string     `json:"logradouro"`
	Numero      string     `json:"numero"`
	Bairro      string     `json:"bairro"`
	Cidade      string     `json:"cidade"`
	Estado      string     `json:"estado"`
	CEP         string     `json:"cep"`
	Deleted     bool       `json:"deleted,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EnderecoCompleto monta o endereço do cliente juntando as partes
// preenchidas com ", "
func (c *Cliente) EnderecoCompleto() string {
	partes := []string{c.Logradouro, c.Numero, c.Bairro, c.Cidade, c.Estado, c.CEP}

	preenchidas := make([]string, 0, len(partes))
	for _, parte := range partes {
		parte = strings.TrimSpace(parte)
		if parte != "" {
			preenchidas = append(preenchidas, parte)
		}
	}

	return strings.Join(preenchidas, ", ")
}

type UpdateClienteRequest struct {
	ID          string  `json:"id"`
	Nome        *string `json:"nome"`
	Responsavel *string `json:"responsavel"`
	Email       *string `json:"email"`
	Telefone    *string `json:"telefone"`
	Logradouro  *string `json:"logradouro"`
	Numero      *string `json:"numero"`
	Bairro      *string `json:"bairro"`
	Cidade      *string `json:"cidade"`
	Estado      *string `json:"estado"`
	CEP         *string `json:"cep"`
}
