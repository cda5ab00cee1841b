// Package fixtures carrega e serve os dados de demonstração do dashboard.
// As fixtures são YAML embutidos no binário; tudo vive em memória e não há
// nenhuma camada de persistência por trás.
package fixtures

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/heliogrid/heliogrid-web/internal/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Store é a fonte em memória das fixtures exibidas no dashboard.
// Os getters devolvem cópias; os mutadores existem para os jobs de
// atualização dos dados gerados (ticks de preço e rotação de ações).
type Store interface {
	Energy() domain.EnergySummary
	Sales() domain.SalesSummary
	Battery() domain.BatterySummary
	PriceHistory() domain.PriceHistory
	Actions() []domain.UpcomingAction
	Explanations() []domain.Explanation

	AppendPricePoint(point domain.PricePoint, limit int)
	SetActions(actions []domain.UpcomingAction)
}

type memoryStore struct {
	mu           sync.RWMutex
	energy       domain.EnergySummary
	sales        domain.SalesSummary
	battery      domain.BatterySummary
	priceHistory domain.PriceHistory
	actions      []domain.UpcomingAction
	explanations []domain.Explanation
}

// Load lê as fixtures embutidas e monta o store em memória.
func Load() (Store, error) {
	store := &memoryStore{}

	if err := unmarshalFixture("energy.yaml", &store.energy); err != nil {
		return nil, err
	}
	if err := unmarshalFixture("sales.yaml", &store.sales); err != nil {
		return nil, err
	}
	if err := unmarshalFixture("battery.yaml", &store.battery); err != nil {
		return nil, err
	}
	if err := unmarshalFixture("price_history.yaml", &store.priceHistory); err != nil {
		return nil, err
	}
	if err := unmarshalFixture("actions.yaml", &store.actions); err != nil {
		return nil, err
	}
	if err := unmarshalFixture("explanations.yaml", &store.explanations); err != nil {
		return nil, err
	}

	if err := store.validate(); err != nil {
		return nil, err
	}

	return store, nil
}

func unmarshalFixture(name string, out any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return errors.Wrapf(err, "erro ao ler a fixture %s", name)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "erro ao interpretar a fixture %s", name)
	}

	return nil
}

// validate garante que as fixtures autoradas respeitam o modelo mínimo.
func (s *memoryStore) validate() error {
	if len(s.priceHistory.Points) == 0 {
		return errors.New("fixture de preços sem pontos")
	}

	for _, action := range s.actions {
		if !action.Persona.Valid() {
			return fmt.Errorf("ação %q com persona desconhecida: %s", action.ID, action.Persona)
		}
	}

	for _, explanation := range s.explanations {
		if !explanation.Persona.Valid() {
			return fmt.Errorf("explicação %q com persona desconhecida: %s", explanation.ID, explanation.Persona)
		}
	}

	return nil
}

func (s *memoryStore) Energy() domain.EnergySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.energy
}

func (s *memoryStore) Sales() domain.SalesSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sales
}

func (s *memoryStore) Battery() domain.BatterySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.battery
}

func (s *memoryStore) PriceHistory() domain.PriceHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := make([]domain.PricePoint, len(s.priceHistory.Points))
	copy(points, s.priceHistory.Points)

	return domain.PriceHistory{
		Market: s.priceHistory.Market,
		Points: points,
	}
}

func (s *memoryStore) Actions() []domain.UpcomingAction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	actions := make([]domain.UpcomingAction, len(s.actions))
	copy(actions, s.actions)
	return actions
}

func (s *memoryStore) Explanations() []domain.Explanation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	explanations := make([]domain.Explanation, len(s.explanations))
	copy(explanations, s.explanations)
	return explanations
}

// AppendPricePoint acrescenta um tick à série, descartando o início quando
// a série passa do limite configurado.
func (s *memoryStore) AppendPricePoint(point domain.PricePoint, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.priceHistory.Points = append(s.priceHistory.Points, point)

	if limit > 0 && len(s.priceHistory.Points) > limit {
		overflow := len(s.priceHistory.Points) - limit
		s.priceHistory.Points = append([]domain.PricePoint(nil), s.priceHistory.Points[overflow:]...)
	}
}

func (s *memoryStore) SetActions(actions []domain.UpcomingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = make([]domain.UpcomingAction, len(actions))
	copy(s.actions, actions)
}
