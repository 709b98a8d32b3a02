package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// CreateProposta cadastra uma proposta comercial
func CreateProposta(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProposta")

		var proposta *domain.Proposta
		if err := json.NewDecoder(r.Body).Decode(&proposta); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		proposta, err := service.CreateProposta(proposta)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao cadastrar proposta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(proposta); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProposta retorna uma proposta pelo ID
func GetProposta(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "ID da proposta inválido")
		if !ok {
			return
		}

		proposta, err := service.GetProposta(id)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao buscar proposta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(proposta); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListPropostas lista as propostas, opcionalmente filtradas por cliente
// via query string
func ListPropostas(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clienteID := r.URL.Query().Get("cliente_id")

		propostas, err := service.ListPropostas(clienteID)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao buscar propostas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(propostas); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateProposta atualiza uma proposta
func UpdateProposta(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProposta")

		id, ok := pathID(w, r, "ID da proposta inválido")
		if !ok {
			return
		}

		var proposta *domain.Proposta
		if err := json.NewDecoder(r.Body).Decode(&proposta); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		proposta.ID = id

		if err := service.UpdateProposta(proposta); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao atualizar proposta")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteProposta remove uma proposta
func DeleteProposta(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProposta")

		id, ok := pathID(w, r, "ID da proposta inválido")
		if !ok {
			return
		}

		if err := service.DeleteProposta(id); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao remover proposta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
