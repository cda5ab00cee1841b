package handler

import (
	"net/http"

	"github.com/heliogrid/heliogrid-web/internal/usecases/sessioning"
	"github.com/heliogrid/heliogrid-web/pkg/apiErrors"
	"github.com/heliogrid/heliogrid-web/pkg/log"
)

// StartDemoSession emite o token de curta duração que libera as rotas
// de dados do demo. Não há usuários: qualquer visitante pode pedir um.
func StartDemoSession(service sessioning.Sessioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := service.Issue()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Falha ao emitir sessão de demonstração")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Não foi possível iniciar a sessão de demonstração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, session)
	})
}
