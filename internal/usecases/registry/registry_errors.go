package registry

import "errors"

// Erros de validação e de registro não encontrado
var (
	ErrClienteNaoEncontrado  = errors.New("cliente não encontrado")
	ErrObraNaoEncontrada     = errors.New("obra não encontrada")
	ErrEtapaNaoEncontrada    = errors.New("etapa não encontrada")
	ErrRegistroNaoEncontrado = errors.New("registro não encontrado")

	ErrNomeObrigatorio      = errors.New("o nome é obrigatório")
	ErrClienteObrigatorio   = errors.New("o cliente é obrigatório")
	ErrObraObrigatoria      = errors.New("a obra é obrigatória")
	ErrStatusInvalido       = errors.New("status inválido")
	ErrTipoInvalido         = errors.New("tipo inválido")
	ErrPesoInvalido         = errors.New("o peso da etapa deve ser maior que zero")
	ErrValorInvalido        = errors.New("o valor não pode ser negativo")
	ErrDataInvalida         = errors.New("data em formato inválido, use YYYY-MM-DD")
	ErrPeriodoInvalido      = errors.New("o fim do período deve ser posterior ao início")
	ErrTituloObrigatorio    = errors.New("o título é obrigatório")
	ErrUsuarioObrigatorio   = errors.New("o usuário é obrigatório")
	ErrDataHoraObrigatoria  = errors.New("a data e hora são obrigatórias")
)
