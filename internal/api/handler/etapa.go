package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// CreateEtapa cadastra uma etapa em uma obra. O ID da obra vem da URL
// e prevalece sobre o corpo da requisição.
func CreateEtapa(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEtapa")

		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra não fornecido", nil)
			return
		}

		var req domain.CreateEtapaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ObraID = obraID

		etapa, err := service.CreateEtapa(&req)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao cadastrar etapa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(etapa); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListEtapas lista as etapas de uma obra
func ListEtapas(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra não fornecido", nil)
			return
		}

		etapas, err := service.ListEtapasByObra(obraID)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao buscar etapas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(etapas); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateEtapa atualiza uma etapa
func UpdateEtapa(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEtapa")

		id, ok := pathID(w, r, "ID da etapa inválido")
		if !ok {
			return
		}

		var updateReq domain.UpdateEtapaRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		updateReq.ID = id

		if err := service.UpdateEtapa(&updateReq); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao atualizar etapa")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteEtapa remove uma etapa
func DeleteEtapa(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteEtapa")

		id, ok := pathID(w, r, "ID da etapa inválido")
		if !ok {
			return
		}

		if err := service.DeleteEtapa(id); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao remover etapa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// pathID extrai e converte o parâmetro :id numérico da URL, escrevendo
// o erro na resposta quando ausente ou inválido
func pathID(w http.ResponseWriter, r *http.Request, invalidMsg string) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, invalidMsg, nil)
		return 0, false
	}

	return id, true
}
