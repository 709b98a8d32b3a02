package portal

import "errors"

// Erros de provisionamento do portal
var (
	ErrConviteInvalido      = errors.New("convite inválido: e-mail, cliente e obra são obrigatórios")
	ErrEmailInvalido        = errors.New("e-mail do convite inválido")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrObraNaoEncontrada    = errors.New("obra não encontrada")
	ErrObraDeOutroCliente   = errors.New("a obra informada não pertence ao cliente")
)
