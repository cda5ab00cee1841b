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

func TestActionsRotationService_rotate(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  []domain.UpcomingAction
		minQueue int
		validate func(t *testing.T, result []domain.UpcomingAction)
	}{
		{
			name: "ações vencidas são descartadas e a fila é completada",
			current: []domain.UpcomingAction{
				{ID: "act-old001", Persona: domain.PersonaMarkets, ScheduledAt: now.Add(-2 * time.Hour)},
				{ID: "act-keep01", Persona: domain.PersonaOperations, ScheduledAt: now.Add(3 * time.Hour)},
			},
			minQueue: 4,
			validate: func(t *testing.T, result []domain.UpcomingAction) {
				require.Len(t, result, 4)

				ids := make(map[string]bool)
				for _, action := range result {
					ids[action.ID] = true
					assert.True(t, action.ScheduledAt.After(now), "ação %s no passado", action.ID)
					assert.True(t, action.Persona.Valid())
				}

				assert.False(t, ids["act-old001"], "ação vencida deveria ter sido descartada")
				assert.True(t, ids["act-keep01"], "ação futura deveria ter sido mantida")
			},
		},
		{
			name: "fila cheia de ações futuras fica intacta",
			current: []domain.UpcomingAction{
				{ID: "act-a", Persona: domain.PersonaMarkets, ScheduledAt: now.Add(1 * time.Hour)},
				{ID: "act-b", Persona: domain.PersonaGovernance, ScheduledAt: now.Add(2 * time.Hour)},
				{ID: "act-c", Persona: domain.PersonaMaintenance, ScheduledAt: now.Add(3 * time.Hour)},
				{ID: "act-d", Persona: domain.PersonaOperations, ScheduledAt: now.Add(4 * time.Hour)},
			},
			minQueue: 4,
			validate: func(t *testing.T, result []domain.UpcomingAction) {
				require.Len(t, result, 4)
				assert.Equal(t, "act-a", result[0].ID)
				assert.Equal(t, "act-d", result[3].ID)
			},
		},
		{
			name:     "fila vazia é regenerada do zero em ordem cronológica",
			current:  nil,
			minQueue: 3,
			validate: func(t *testing.T, result []domain.UpcomingAction) {
				require.Len(t, result, 3)
				for i := 1; i < len(result); i++ {
					assert.False(t, result[i].ScheduledAt.Before(result[i-1].ScheduledAt),
						"fila deve estar ordenada por horário")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			mockStore.EXPECT().Actions().Return(tt.current)

			var result []domain.UpcomingAction
			mockStore.EXPECT().
				SetActions(gomock.Any()).
				Do(func(actions []domain.UpcomingAction) {
					result = actions
				})

			service := &ActionsRotationService{
				config: ActionsRotationConfig{MinQueue: tt.minQueue},
				store:  mockStore,
				rng:    rand.New(rand.NewSource(7)),
				now:    func() time.Time { return now },
			}

			service.rotate()
			tt.validate(t, result)
		})
	}
}
