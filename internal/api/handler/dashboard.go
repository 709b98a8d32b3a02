package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// GetDashboard retorna o resumo consolidado do painel inicial
func GetDashboard(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumo, err := service.GetResumoDashboard()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resumo); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
