package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/usecases/reporting"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
)

// RelatorioGerencialRequest é o corpo do pedido de geração do relatório
// gerencial de uma obra
type RelatorioGerencialRequest struct {
	ObraID string `json:"obra_id"`
}

// GenerateRelatorioGerencial gera o relatório gerencial consolidado de
// uma obra. Os erros deste endpoint saem no formato {"error": "..."}.
func GenerateRelatorioGerencial(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateRelatorioGerencial")

		var req RelatorioGerencialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteMessage(w, http.StatusBadRequest, "Corpo da requisição inválido")
			return
		}

		if req.ObraID == "" {
			apiErrors.WriteMessage(w, http.StatusBadRequest, "O campo obra_id é obrigatório")
			return
		}

		relatorio, err := service.GenerateReport(req.ObraID)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, reporting.ErrObraNaoEncontrada):
				apiErrors.WriteMessage(w, http.StatusNotFound, "Obra não encontrada")
			case errors.Is(err, reporting.ErrClienteNaoEncontrado):
				apiErrors.WriteMessage(w, http.StatusNotFound, "Cliente não encontrado")
			default:
				apiErrors.WriteMessage(w, http.StatusInternalServerError, "Erro ao gerar relatório gerencial")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(relatorio); err != nil {
			logrus.Error(err)
			apiErrors.WriteMessage(w, http.StatusInternalServerError, "Erro ao enviar resposta")
			return
		}
	}
}
