package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// CreateContrato cadastra um contrato para uma obra
func CreateContrato(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateContrato")

		var req domain.CreateContratoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		contrato, err := service.CreateContrato(&req)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao cadastrar contrato")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(contrato); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListContratos lista os contratos de uma obra
func ListContratos(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra não fornecido", nil)
			return
		}

		contratos, err := service.ListContratosByObra(obraID)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao buscar contratos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(contratos); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateContrato atualiza um contrato
func UpdateContrato(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateContrato")

		id, ok := pathID(w, r, "ID do contrato inválido")
		if !ok {
			return
		}

		var contrato *domain.Contrato
		if err := json.NewDecoder(r.Body).Decode(&contrato); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		contrato.ID = id

		if err := service.UpdateContrato(contrato); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao atualizar contrato")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteContrato remove um contrato
func DeleteContrato(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteContrato")

		id, ok := pathID(w, r, "ID do contrato inválido")
		if !ok {
			return
		}

		if err := service.DeleteContrato(id); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao remover contrato")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
