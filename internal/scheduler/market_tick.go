// Package scheduler contém os jobs que mantêm os dados fictícios do
// dashboard em movimento: o tick de preço e a rotação da fila de ações.
package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/heliogrid/heliogrid-web/infrastructure/fixtures"
	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/internal/usecases/ledgering"
	"github.com/heliogrid/heliogrid-web/pkg/utils"
)

// TickBroadcaster publica o tick para os clientes conectados ao stream.
type TickBroadcaster interface {
	BroadcastTick(point domain.PricePoint) error
}

// MarketTickConfig representa a configuração do job de ticks de preço
type MarketTickConfig struct {
	CronSchedule  string
	VolatilityPct float64
	Enabled       bool
	HistoryLimit  int
}

// MarketTickService gera pontos de preço por passeio aleatório e os
// publica no stream. É o que dá a sensação de "mercado vivo" na demo.
type MarketTickService struct {
	scheduler           *gocron.Scheduler
	config              MarketTickConfig
	store               fixtures.Store
	broadcaster         TickBroadcaster
	rng                 *rand.Rand
	syncRunning         bool
	syncMutex           sync.Mutex
	lastTickStartedAt   time.Time
	lastTickCompletedAt time.Time
}

// NewMarketTickService cria o serviço de ticks de preço
func NewMarketTickService(
	store fixtures.Store,
	broadcaster TickBroadcaster,
	appConfig *config.Config,
) *MarketTickService {
	tickConfig := MarketTickConfig{
		CronSchedule:  appConfig.MarketTick.CronSchedule,
		VolatilityPct: appConfig.MarketTick.VolatilityPct,
		Enabled:       appConfig.MarketTick.Enabled,
		HistoryLimit:  appConfig.Mocks.PriceHistoryLimit,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  tickConfig.CronSchedule,
		"volatility_pct": tickConfig.VolatilityPct,
		"history_limit":  tickConfig.HistoryLimit,
		"enabled":        tickConfig.Enabled,
	}).Info("Configuração do agendador de ticks de preço carregada")

	return &MarketTickService{
		scheduler:   scheduler,
		config:      tickConfig,
		store:       store,
		broadcaster: broadcaster,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start inicia o agendador
func (s *MarketTickService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Ticks de preço desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ticks de preço")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runTick()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ticks de preço: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ticks de preço")
		s.scheduler.Stop()
	}()

	return nil
}

// runTick gera um novo ponto de preço e o publica no stream
func (s *MarketTickService) runTick() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de preço já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastTickStartedAt = time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	point, err := s.nextPoint()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar tick de preço")
		return
	}

	s.store.AppendPricePoint(point, s.config.HistoryLimit)

	if s.broadcaster != nil {
		if err := s.broadcaster.BroadcastTick(point); err != nil {
			logrus.WithError(err).Warn("Erro ao publicar tick de preço no stream")
		}
	}

	logrus.WithFields(logrus.Fields{
		"usd_per_mwh": point.USDPerMWh,
		"tx_ref":      point.TxRef,
	}).Debug("Tick de preço gerado")

	s.lastTickCompletedAt = time.Now()
}

// nextPoint faz o passeio aleatório a partir do último ponto da série.
func (s *MarketTickService) nextPoint() (domain.PricePoint, error) {
	history := s.store.PriceHistory()

	// A fixture garante série não vazia, mas o job não confia nisso.
	lastPrice := 50.0
	if last := history.Last(); last != nil {
		lastPrice = last.USDPerMWh
	}

	volatility := s.config.VolatilityPct / 100
	step := (s.rng.Float64()*2 - 1) * volatility * lastPrice

	price := lastPrice + step
	if price < 1 {
		price = 1
	}

	txRef, err := ledgering.TxHash()
	if err != nil {
		return domain.PricePoint{}, err
	}

	return domain.PricePoint{
		At:        time.Now().UTC(),
		USDPerMWh: utils.RoundWithTwoDecimalPlace(price),
		TxRef:     txRef,
	}, nil
}

// TriggerManualSync dispara um tick fora do cronograma
func (s *MarketTickService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tick de preço já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Disparando tick de preço manual")
	go s.runTick()
}

// GetStatus retorna o status atual do agendador
func (s *MarketTickService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"volatility_pct":         s.config.VolatilityPct,
		"history_limit":          s.config.HistoryLimit,
		"last_tick_started_at":   s.lastTickStartedAt,
		"last_tick_completed_at": s.lastTickCompletedAt,
	}
}
