package handler

import (
	"net/http"

	"github.com/heliogrid/heliogrid-web/internal/api/handler/router"
	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/usecases/mocking"
	"github.com/heliogrid/heliogrid-web/internal/usecases/sessioning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Pages retorna as rotas públicas do site renderizado no servidor.
func Pages(service mocking.Fetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: LandingPage(),
		},
		{
			Path:    "/dashboard",
			Method:  http.MethodGet,
			Handler: DashboardPage(service),
		},
	}
}

// SceneryAssets retorna as rotas dos fundos decorativos gerados.
func SceneryAssets(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/assets/scenery/hex.svg",
			Method:  http.MethodGet,
			Handler: SceneryHexGrid(cfg),
		},
		{
			Path:    "/assets/scenery/field.svg",
			Method:  http.MethodGet,
			Handler: SceneryParticleField(cfg),
		},
	}
}

// Dashboard retorna as rotas de dados do demo. Todas exigem a sessão
// de demonstração (aplicada pelo middleware de sessão, por prefixo).
func Dashboard(service mocking.Fetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/energy",
			Method:  http.MethodGet,
			Handler: GetEnergySummary(service),
		},
		{
			Path:    "/v1/dashboard/sales",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
		{
			Path:    "/v1/dashboard/battery",
			Method:  http.MethodGet,
			Handler: GetBatterySummary(service),
		},
		{
			Path:    "/v1/dashboard/price-history",
			Method:  http.MethodGet,
			Handler: GetPriceHistory(service),
		},
		{
			Path:    "/v1/dashboard/actions",
			Method:  http.MethodGet,
			Handler: GetUpcomingActions(service),
		},
		{
			Path:    "/v1/dashboard/explanations",
			Method:  http.MethodGet,
			Handler: GetExplanations(service),
		},
	}
}

// DemoSession retorna a rota de emissão da sessão de demonstração.
func DemoSession(service sessioning.Sessioner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/demo/session",
			Method:  http.MethodPost,
			Handler: StartDemoSession(service),
		},
	}
}

// TickStream retorna a rota do websocket de ticks de preço.
func TickStream(hub *StreamHub) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stream",
			Method:  http.MethodGet,
			Handler: Stream(hub),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
