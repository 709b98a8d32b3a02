package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// writeRegistryError traduz os erros do cadastro para o formato padrão
// da API. Erros não reconhecidos viram erro de banco com a mensagem
// genérica informada.
func writeRegistryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, registry.ErrClienteNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrClienteNotFound, "Cliente não encontrado", nil)

	case errors.Is(err, registry.ErrObraNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrObraNotFound, "Obra não encontrada", nil)

	case errors.Is(err, registry.ErrEtapaNaoEncontrada):
		apiErrors.WriteError(w, apiErrors.ErrEtapaNotFound, "Etapa não encontrada", nil)

	case errors.Is(err, registry.ErrRegistroNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrRegistroNotFound, "Registro não encontrado", nil)

	case errors.Is(err, registry.ErrNomeObrigatorio),
		errors.Is(err, registry.ErrClienteObrigatorio),
		errors.Is(err, registry.ErrObraObrigatoria),
		errors.Is(err, registry.ErrTituloObrigatorio),
		errors.Is(err, registry.ErrUsuarioObrigatorio),
		errors.Is(err, registry.ErrDataHoraObrigatoria):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, registry.ErrStatusInvalido),
		errors.Is(err, registry.ErrTipoInvalido),
		errors.Is(err, registry.ErrPesoInvalido),
		errors.Is(err, registry.ErrValorInvalido),
		errors.Is(err, registry.ErrPeriodoInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, registry.ErrDataInvalida):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
