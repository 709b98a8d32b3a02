package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// CreateEvento cadastra um compromisso na agenda
func CreateEvento(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvento")

		var evento *domain.Evento
		if err := json.NewDecoder(r.Body).Decode(&evento); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		evento, err := service.CreateEvento(evento)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao cadastrar evento")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(evento); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListEventos lista os eventos de um período. Os parâmetros inicio e
// fim são obrigatórios no formato YYYY-MM-DD; user_id é opcional e
// restringe a listagem a um usuário.
func ListEventos(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		inicioStr := query.Get("inicio")
		fimStr := query.Get("fim")
		if inicioStr == "" || fimStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Os parâmetros inicio e fim são obrigatórios", nil)
			return
		}

		inicio, err := time.Parse("2006-01-02", inicioStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida, use YYYY-MM-DD", nil)
			return
		}

		fim, err := time.Parse("2006-01-02", fimStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida, use YYYY-MM-DD", nil)
			return
		}
		// O fim do período é inclusivo no dia informado
		fim = fim.Add(24*time.Hour - time.Second)

		var userID int
		if userIDStr := query.Get("user_id"); userIDStr != "" {
			userID, err = strconv.Atoi(userIDStr)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de usuário inválido", nil)
				return
			}
		}

		eventos, err := service.ListEventos(userID, inicio, fim)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao buscar eventos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(eventos); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateEvento atualiza um evento da agenda
func UpdateEvento(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateEvento")

		id, ok := pathID(w, r, "ID do evento inválido")
		if !ok {
			return
		}

		var evento *domain.Evento
		if err := json.NewDecoder(r.Body).Decode(&evento); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		evento.ID = id

		if err := service.UpdateEvento(evento); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao atualizar evento")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteEvento remove um evento da agenda
func DeleteEvento(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteEvento")

		id, ok := pathID(w, r, "ID do evento inválido")
		if !ok {
			return
		}

		if err := service.DeleteEvento(id); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao remover evento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
