package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/heliogrid/heliogrid-web/infrastructure/integrator/telemetry"
	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/internal/usecases/mocking"
	"github.com/heliogrid/heliogrid-web/pkg/apiErrors"
	"github.com/heliogrid/heliogrid-web/pkg/log"
	"github.com/heliogrid/heliogrid-web/pkg/utils"
)

// GetEnergySummary retorna o resumo de geração da usina
func GetEnergySummary(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetEnergySummary(r.Context())
		if err != nil {
			writeFetchError(r.Context(), w, err)
			return
		}

		writeJSON(w, summary)
	})
}

// GetSalesSummary retorna o resumo de comercialização e payout
func GetSalesSummary(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSalesSummary(r.Context())
		if err != nil {
			writeFetchError(r.Context(), w, err)
			return
		}

		writeJSON(w, summary)
	})
}

// GetBatterySummary retorna o estado do banco de baterias
func GetBatterySummary(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetBatterySummary(r.Context())
		if err != nil {
			writeFetchError(r.Context(), w, err)
			return
		}

		writeJSON(w, summary)
	})
}

// GetPriceHistory retorna a série de preços, com filtro opcional de período
// via query params start_date/end_date (YYYY-MM-DD).
func GetPriceHistory(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := historyFiltersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", err.Error())
			return
		}

		history, err := service.GetPriceHistory(r.Context(), filters)
		if err != nil {
			writeFetchError(r.Context(), w, err)
			return
		}

		writeJSON(w, history)
	})
}

// GetUpcomingActions retorna a fila de ações planejadas pelos agentes
func GetUpcomingActions(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actions, err := service.GetUpcomingActions(r.Context())
		if err != nil {
			writeFetchError(r.Context(), w, err)
			return
		}

		writeJSON(w, actions)
	})
}

// GetExplanations retorna as justificativas de decisão, com filtro
// opcional ?persona=operations|markets|maintenance|governance.
func GetExplanations(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		persona := domain.Persona(r.URL.Query().Get("persona"))

		explanations, err := service.GetExplanations(r.Context(), persona)
		if err != nil {
			writeFetchError(r.Context(), w, err)
			return
		}

		writeJSON(w, explanations)
	})
}

func historyFiltersFromQuery(r *http.Request) (*domain.HistoryFilters, error) {
	query := r.URL.Query()
	startStr := query.Get("start_date")
	endStr := query.Get("end_date")

	if startStr == "" && endStr == "" {
		return nil, nil
	}

	filters := &domain.HistoryFilters{}

	if startStr != "" {
		start, err := utils.ParseDate(startStr)
		if err != nil {
			return nil, errors.Wrap(err, "start_date inválida")
		}
		filters.StartDate = start
	}

	if endStr != "" {
		end, err := utils.ParseDate(endStr)
		if err != nil {
			return nil, errors.Wrap(err, "end_date inválida")
		}
		filters.EndDate = end
	}

	return filters, nil
}

// writeFetchError traduz os erros da camada de dados para o envelope da API.
func writeFetchError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mocking.ErrInvalidPeriod), errors.Is(err, mocking.ErrUnknownPersona):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, telemetry.ErrNotImplemented):
		apiErrors.WriteError(w, apiErrors.ErrNotImplemented, "A API de telemetria real nunca foi implantada. Habilite USE_MOCKS.", nil)
	case errors.Is(err, context.Canceled):
		// Cliente desistiu durante a latência artificial; nada a responder.
	default:
		log.ForContext(ctx).WithError(err).Error("Falha ao buscar dados do dashboard")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar dados do dashboard", nil)
	}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Falha ao serializar resposta")
	}
}
