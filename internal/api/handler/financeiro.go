package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/obrativa/obras-manager-api/internal/usecases/registry"
	"github.com/obrativa/obras-manager-api/pkg/apiErrors"
	"github.com/obrativa/obras-manager-api/pkg/utils"
)

// FinanceiroResponse agrupa os lançamentos de custo e receita de uma
// obra, com os totais já somados
type FinanceiroResponse struct {
	Custos   []*domain.LancamentoCusto   `json:"custos"`
	Receitas []*domain.LancamentoReceita `json:"receitas"`
	Totais   FinanceiroTotais            `json:"totais"`
}

type FinanceiroTotais struct {
	CustoPrevisto   float64 `json:"custo_previsto"`
	CustoReal       float64 `json:"custo_real"`
	ReceitaPrevista float64 `json:"receita_prevista"`
	ReceitaReal     float64 `json:"receita_real"`
}

func somarFinanceiro(custos []*domain.LancamentoCusto, receitas []*domain.LancamentoReceita) FinanceiroTotais {
	var totais FinanceiroTotais
	for _, custo := range custos {
		totais.CustoPrevisto += custo.ValorPrevisto
		totais.CustoReal += custo.ValorReal
	}
	for _, receita := range receitas {
		totais.ReceitaPrevista += receita.ValorPrevisto
		totais.ReceitaReal += receita.ValorReal
	}

	totais.CustoPrevisto = utils.RoundWithTwoDecimalPlace(totais.CustoPrevisto)
	totais.CustoReal = utils.RoundWithTwoDecimalPlace(totais.CustoReal)
	totais.ReceitaPrevista = utils.RoundWithTwoDecimalPlace(totais.ReceitaPrevista)
	totais.ReceitaReal = utils.RoundWithTwoDecimalPlace(totais.ReceitaReal)
	return totais
}

// ListFinanceiro lista os lançamentos financeiros de uma obra
func ListFinanceiro(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra não fornecido", nil)
			return
		}

		custos, receitas, err := service.ListFinanceiroByObra(obraID)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao buscar lançamentos financeiros")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		resp := FinanceiroResponse{
			Custos:   custos,
			Receitas: receitas,
			Totais:   somarFinanceiro(custos, receitas),
		}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateCusto cadastra um lançamento de custo em uma obra
func CreateCusto(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCusto")

		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra não fornecido", nil)
			return
		}

		var custo *domain.LancamentoCusto
		if err := json.NewDecoder(r.Body).Decode(&custo); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		custo.ObraID = obraID

		custo, err := service.CreateCusto(custo)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao cadastrar custo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(custo); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateCusto atualiza um lançamento de custo
func UpdateCusto(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCusto")

		id, ok := pathID(w, r, "ID do custo inválido")
		if !ok {
			return
		}

		var custo *domain.LancamentoCusto
		if err := json.NewDecoder(r.Body).Decode(&custo); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		custo.ID = id

		if err := service.UpdateCusto(custo); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao atualizar custo")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteCusto remove um lançamento de custo
func DeleteCusto(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCusto")

		id, ok := pathID(w, r, "ID do custo inválido")
		if !ok {
			return
		}

		if err := service.DeleteCusto(id); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao remover custo")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CreateReceita cadastra um lançamento de receita em uma obra
func CreateReceita(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateReceita")

		obraID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if obraID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da obra não fornecido", nil)
			return
		}

		var receita *domain.LancamentoReceita
		if err := json.NewDecoder(r.Body).Decode(&receita); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		receita.ObraID = obraID

		receita, err := service.CreateReceita(receita)
		if err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao cadastrar receita")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(receita); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateReceita atualiza um lançamento de receita
func UpdateReceita(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateReceita")

		id, ok := pathID(w, r, "ID da receita inválido")
		if !ok {
			return
		}

		var receita *domain.LancamentoReceita
		if err := json.NewDecoder(r.Body).Decode(&receita); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		receita.ID = id

		if err := service.UpdateReceita(receita); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao atualizar receita")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	}
}

// DeleteReceita remove um lançamento de receita
func DeleteReceita(service registry.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteReceita")

		id, ok := pathID(w, r, "ID da receita inválido")
		if !ok {
			return
		}

		if err := service.DeleteReceita(id); err != nil {
			logrus.Error(err)
			writeRegistryError(w, err, "Erro ao remover receita")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
