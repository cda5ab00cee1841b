package handler

import (
	"net/http"

	"github.com/heliogrid/heliogrid-web/internal/usecases/mocking"
	"github.com/heliogrid/heliogrid-web/internal/web/pages"
	"github.com/heliogrid/heliogrid-web/pkg/apiErrors"
	"github.com/heliogrid/heliogrid-web/pkg/log"
)

// LandingPage serve a página de marketing.
func LandingPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pages.Landing().Render(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Falha ao renderizar a landing page")
		}
	})
}

// DashboardPage monta a página do dashboard com os dados da camada de mocks.
// A renderização é server-side; o websocket só atualiza o preço depois.
func DashboardPage(service mocking.Fetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		energy, err := service.GetEnergySummary(ctx)
		if err != nil {
			writePageError(w, r, err)
			return
		}

		sales, err := service.GetSalesSummary(ctx)
		if err != nil {
			writePageError(w, r, err)
			return
		}

		battery, err := service.GetBatterySummary(ctx)
		if err != nil {
			writePageError(w, r, err)
			return
		}

		history, err := service.GetPriceHistory(ctx, nil)
		if err != nil {
			writePageError(w, r, err)
			return
		}

		actions, err := service.GetUpcomingActions(ctx)
		if err != nil {
			writePageError(w, r, err)
			return
		}

		explanations, err := service.GetExplanations(ctx, "")
		if err != nil {
			writePageError(w, r, err)
			return
		}

		data := pages.DashboardData{
			Energy:       energy,
			Sales:        sales,
			Battery:      battery,
			History:      history,
			Actions:      actions,
			Explanations: explanations,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pages.Dashboard(data).Render(w); err != nil {
			log.ForContext(ctx).WithError(err).Error("Falha ao renderizar o dashboard")
		}
	})
}

func writePageError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Falha ao montar a página do dashboard")
	apiErrors.WriteError(w, apiErrors.ErrRenderFailure, "Não foi possível montar a página agora", nil)
}
