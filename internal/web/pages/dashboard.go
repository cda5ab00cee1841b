package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/internal/web"
	"github.com/heliogrid/heliogrid-web/internal/web/components"
	"github.com/heliogrid/heliogrid-web/pkg/format"
	"github.com/heliogrid/heliogrid-web/pkg/svgpath"
)

// DashboardData agrega tudo que a página do dashboard precisa renderizar.
type DashboardData struct {
	Energy       *domain.EnergySummary
	Sales        *domain.SalesSummary
	Battery      *domain.BatterySummary
	History      *domain.PriceHistory
	Actions      []domain.UpcomingAction
	Explanations []domain.Explanation
}

// pontos do diagrama decorativo usina → bateria → rede → payout.
var flowNodes = []svgpath.Point{
	{X: 40, Y: 110},
	{X: 250, Y: 40},
	{X: 460, Y: 120},
	{X: 680, Y: 60},
}

// streamScript mantém o valor de preço do topo sincronizado com o
// websocket de ticks. Falha de conexão é silenciosa: a página continua
// válida com o último valor renderizado no servidor.
const streamScript = `
(function () {
  var el = document.getElementById('live-price');
  if (!el || !('WebSocket' in window)) return;
  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/v1/stream');
  ws.onmessage = function (ev) {
    try {
      var tick = JSON.parse(ev.data);
      if (typeof tick.usd_per_mwh === 'number') {
        el.textContent = '$' + tick.usd_per_mwh.toFixed(2) + ' /MWh';
      }
    } catch (_) {}
  };
})();
`

// Dashboard é a página de demonstração ao vivo.
func Dashboard(data DashboardData) g.Node {
	return web.Page("HelioGrid — live demo dashboard",
		components.PageSection("Farm right now",
			Div(append([]g.Node{Class("grid cols-4")}, statTiles(data)...)...),
		),
		components.PageSection("Spot price — "+data.History.Market,
			components.GlassCard(
				Div(ID("live-price"), Class("value"), StyleAttr("font-size: 1.4rem; font-weight: 700; color: #f8fafc; margin-bottom: 12px;"),
					g.Text(lastPriceLabel(data.History)),
				),
				components.SparklineSVG(priceValues(data.History), 720, 120),
			),
		),
		components.PageSection("Energy flow",
			components.GlassCard(
				components.FlowDiagram(flowNodes, svgpath.ModeCubic, 720, 160),
				P(Class("mono"), g.Text("farm → battery → grid → payout")),
			),
		),
		components.PageSection("Upcoming agent actions",
			Div(append([]g.Node{Class("grid cols-2")}, actionCards(data.Actions)...)...),
		),
		components.PageSection("Why the agents decided",
			personaLegend(),
			Div(append([]g.Node{Class("grid cols-2")}, explanationCards(data.Explanations)...)...),
		),
		web.PageFooter(),
		Script(g.Raw(streamScript)),
	)
}

// personaLegend lista as quatro personas na ordem de exibição, para o
// leitor associar as cores dos cartões aos agentes.
func personaLegend() g.Node {
	chips := make([]g.Node, 0, 5)
	chips = append(chips, StyleAttr("display: flex; gap: 8px; margin-bottom: 16px;"))
	for _, persona := range domain.AllPersonas() {
		chips = append(chips, components.PersonaChip(persona))
	}
	return Div(chips...)
}

func statTiles(data DashboardData) []g.Node {
	batteryDelta := "charging"
	if data.Battery.PowerMW < 0 {
		batteryDelta = "discharging"
	}

	return []g.Node{
		components.StatTile("Generated today", format.Energy(data.Energy.GeneratedTodayKWh),
			format.Percent(data.Energy.CapacityFactor, false)+" capacity factor"),
		components.StatTile("Revenue today", format.Currency(data.Sales.RevenueTodayUSD),
			format.Compact(data.Sales.SoldTodayMWh)+" MWh sold"),
		components.StatTile("Battery", fmt.Sprintf("%.1f%% SoC", data.Battery.SocPct),
			fmt.Sprintf("%s · %s MW", batteryDelta, format.Compact(data.Battery.PowerMW))),
		components.StatTile("Investor payout (month)", format.Currency(data.Sales.PayoutMonthUSD),
			format.Compact(data.Energy.CO2AvoidedTonnes)+" t CO₂ avoided"),
	}
}

func actionCards(actions []domain.UpcomingAction) []g.Node {
	cards := make([]g.Node, 0, len(actions))
	for _, action := range actions {
		cards = append(cards, components.GlassCard(
			components.PersonaChip(action.Persona),
			H3(StyleAttr("margin: 12px 0 6px; color: #f8fafc; font-size: 1rem;"), g.Text(action.Title)),
			P(StyleAttr("color: #cbd5e1; font-size: 0.88rem;"), g.Text(action.ExpectedImpact)),
			P(Class("mono"),
				g.Text(action.ScheduledAt.Format("Jan 2, 15:04 MST")+" · proof "),
				components.TxRefLabel(action.ProofID),
			),
		))
	}
	return cards
}

func explanationCards(explanations []domain.Explanation) []g.Node {
	cards := make([]g.Node, 0, len(explanations))
	for _, expl := range explanations {
		cards = append(cards, components.GlassCard(
			components.PersonaChip(expl.Persona),
			H3(StyleAttr("margin: 12px 0 6px; color: #f8fafc; font-size: 1rem;"), g.Text(expl.Summary)),
			P(StyleAttr("color: #cbd5e1; font-size: 0.88rem;"), g.Text(expl.Detail)),
			P(Class("mono"),
				g.Text(format.Percent(expl.Confidence, false)+" confidence · tx "),
				components.TxRefLabel(expl.TxHash),
			),
		))
	}
	return cards
}

func priceValues(history *domain.PriceHistory) []float64 {
	values := make([]float64, 0, len(history.Points))
	for _, point := range history.Points {
		values = append(values, point.USDPerMWh)
	}
	return values
}

func lastPriceLabel(history *domain.PriceHistory) string {
	last := history.Last()
	if last == nil {
		return format.Placeholder
	}
	return format.Currency(last.USDPerMWh) + " /MWh"
}
