package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliogrid/heliogrid-web/infrastructure/fixtures/mocks"
	"github.com/heliogrid/heliogrid-web/internal/domain"
)

type captureBroadcaster struct {
	points []domain.PricePoint
}

func (c *captureBroadcaster) BroadcastTick(point domain.PricePoint) error {
	c.points = append(c.points, point)
	return nil
}

func TestMarketTickService_runTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	broadcaster := &captureBroadcaster{}

	service := &MarketTickService{
		config: MarketTickConfig{
			VolatilityPct: 5,
			HistoryLimit:  288,
		},
		store:       mockStore,
		broadcaster: broadcaster,
		rng:         rand.New(rand.NewSource(1)),
	}

	lastPrice := 60.0
	mockStore.EXPECT().PriceHistory().Return(domain.PriceHistory{
		Market: "CAISO-DEMO",
		Points: []domain.PricePoint{{At: time.Now(), USDPerMWh: lastPrice}},
	})

	var appended domain.PricePoint
	mockStore.EXPECT().
		AppendPricePoint(gomock.Any(), 288).
		Do(func(point domain.PricePoint, limit int) {
			appended = point
		})

	service.runTick()

	// O passeio aleatório fica dentro da banda de volatilidade.
	assert.InDelta(t, lastPrice, appended.USDPerMWh, lastPrice*0.05+0.01)
	assert.True(t, appended.USDPerMWh > 0)
	assert.Contains(t, appended.TxRef, "0x")
	assert.False(t, appended.At.IsZero())

	// O mesmo ponto acrescentado à série foi publicado no stream.
	require.Len(t, broadcaster.points, 1)
	assert.Equal(t, appended, broadcaster.points[0])
}

func TestMarketTickService_runTickWithEmptyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)

	service := &MarketTickService{
		config: MarketTickConfig{VolatilityPct: 4, HistoryLimit: 10},
		store:  mockStore,
		rng:    rand.New(rand.NewSource(2)),
	}

	mockStore.EXPECT().PriceHistory().Return(domain.PriceHistory{Market: "CAISO-DEMO"})

	var appended domain.PricePoint
	mockStore.EXPECT().
		AppendPricePoint(gomock.Any(), 10).
		Do(func(point domain.PricePoint, limit int) {
			appended = point
		})

	service.runTick()

	// Sem histórico, o passeio parte do preço base.
	assert.InDelta(t, 50.0, appended.USDPerMWh, 50.0*0.04+0.01)
}

func TestMarketTickService_GetStatus(t *testing.T) {
	service := &MarketTickService{
		config: MarketTickConfig{
			Enabled:      true,
			CronSchedule: "*/5 * * * *",
		},
	}

	status := service.GetStatus()
	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "*/5 * * * *", status["cron"])
}
