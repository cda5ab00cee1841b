package handler

import (
	"net/http"

	"github.com/olahol/melody"

	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/pkg/log"
)

// StreamHub distribui os ticks de preço para os navegadores conectados
// ao websocket do dashboard. Implementa scheduler.TickBroadcaster.
type StreamHub struct {
	melody *melody.Melody
}

// NewStreamHub cria o hub de websocket do demo.
func NewStreamHub() *StreamHub {
	m := melody.New()

	m.HandleConnect(func(s *melody.Session) {
		log.L.WithField("remote_addr", s.Request.RemoteAddr).Debug("Cliente conectado ao stream de ticks")
	})

	m.HandleDisconnect(func(s *melody.Session) {
		log.L.WithField("remote_addr", s.Request.RemoteAddr).Debug("Cliente desconectado do stream de ticks")
	})

	return &StreamHub{melody: m}
}

// BroadcastTick publica o ponto de preço para todas as sessões abertas.
func (h *StreamHub) BroadcastTick(point domain.PricePoint) error {
	payload, err := json.Marshal(point)
	if err != nil {
		return err
	}

	log.L.WithField("clients", h.Clients()).Debug("Tick publicado no stream")
	return h.melody.Broadcast(payload)
}

// Clients informa quantas sessões estão conectadas.
func (h *StreamHub) Clients() int {
	return h.melody.Len()
}

// Stream faz o upgrade da conexão HTTP para websocket.
func Stream(hub *StreamHub) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.melody.HandleRequest(w, r); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Falha no upgrade do websocket")
		}
	})
}
