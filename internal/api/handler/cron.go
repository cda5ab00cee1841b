package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/heliogrid/heliogrid-web/internal/scheduler"
	"github.com/heliogrid/heliogrid-web/pkg/apiErrors"
	"github.com/heliogrid/heliogrid-web/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMarketTick      = "market-tick"
	CronJobTypeActionsRotation = "actions-rotation"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MarketTickService      *scheduler.MarketTickService
	ActionsRotationService *scheduler.ActionsRotationService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeMarketTick:
			if services.MarketTickService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ticks de preço não disponível", nil)
				return
			}
			services.MarketTickService.TriggerManualSync()

		case CronJobTypeActionsRotation:
			if services.ActionsRotationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de rotação de ações não disponível", nil)
				return
			}
			services.ActionsRotationService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MarketTickService != nil {
				services.MarketTickService.TriggerManualSync()
			}
			if services.ActionsRotationService != nil {
				services.ActionsRotationService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: market-tick, actions-rotation, all", nil)
			return
		}

		writeJSON(w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		if services.MarketTickService != nil {
			status["market-tick"] = services.MarketTickService.GetStatus()
		}
		if services.ActionsRotationService != nil {
			status["actions-rotation"] = services.ActionsRotationService.GetStatus()
		}

		writeJSON(w, status)
	})
}
