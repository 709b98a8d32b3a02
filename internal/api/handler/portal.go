package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/portal"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
	"github.com/obrativa/obras-manager-api/pkg/middleware"
)

// CreateConvitePortal provisiona o acesso de um cliente ao portal e
// dispara o convite por e-mail. Os erros deste endpoint saem no formato
// {"error": "..."}.
func CreateConvitePortal(service portal.Porter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateConvitePortal")

		var req *domain.ConvitePortalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		resp, err := service.Provision(req)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, portal.ErrClienteNaoEncontrado):
				apiErrors.WriteMessage(w, http.StatusNotFound, "Cliente não encontrado")
			case errors.Is(err, portal.ErrObraNaoEncontrada):
				apiErrors.WriteMessage(w, http.StatusNotFound, "Obra não encontrada")
			case errors.Is(err, portal.ErrConviteInvalido),
				errors.Is(err, portal.ErrEmailInvalido),
				errors.Is(err, portal.ErrObraDeOutroCliente):
				apiErrors.WriteMessage(w, http.StatusBadRequest, err.Error())
			default:
				apiErrors.WriteMessage(w, http.StatusInternalServerError, "Erro ao provisionar acesso ao portal")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.Error(err)
			apiErrors.WriteMessage(w, http.StatusInternalServerError, "Erro ao enviar resposta")
			return
		}
	}
}

// ListObrasPortal lista as obras visíveis para o usuário do portal
// autenticado, com etapas e índices de progresso
func ListObrasPortal(service portal.Porter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteMessage(w, http.StatusUnauthorized, "Usuário não autenticado")
			return
		}

		obras, err := service.ListObrasDoUsuario(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteMessage(w, http.StatusInternalServerError, "Erro ao buscar obras do portal")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(obras); err != nil {
			logrus.Error(err)
			apiErrors.WriteMessage(w, http.StatusInternalServerError, "Erro ao enviar resposta")
			return
		}
	}
}
