// Package pages monta as páginas completas do site a partir da
// biblioteca de componentes.
package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/internal/web"
	"github.com/heliogrid/heliogrid-web/internal/web/components"
)

type feature struct {
	title   string
	body    string
	persona domain.Persona
}

var features = []feature{
	{
		title:   "Autonomous dispatch",
		body:    "Four cooperating agents decide when to generate, store and sell — every decision logged with a plain-language explanation.",
		persona: domain.PersonaOperations,
	},
	{
		title:   "Market-aware trading",
		body:    "The markets agent watches spot prices around the clock and times battery discharge to the most profitable window.",
		persona: domain.PersonaMarkets,
	},
	{
		title:   "Predictive maintenance",
		body:    "Panel degradation and inverter anomalies are caught before they cost a kilowatt-hour.",
		persona: domain.PersonaMaintenance,
	},
	{
		title:   "On-chain receipts",
		body:    "Every sale and payout is anchored with a verifiable proof reference, so returns are auditable end to end.",
		persona: domain.PersonaGovernance,
	},
}

// Landing é a página de marketing pública.
func Landing() g.Node {
	cards := make([]g.Node, 0, len(features))
	for _, f := range features {
		cards = append(cards, components.GlassCard(
			components.PersonaChip(f.persona),
			H3(StyleAttr("margin: 14px 0 8px; color: #f8fafc;"), g.Text(f.title)),
			P(StyleAttr("color: #cbd5e1; font-size: 0.92rem;"), g.Text(f.body)),
		))
	}

	return web.Page("HelioGrid — the AI-managed solar farm",
		Div(Class("container hero"),
			H1(g.Text("Own a slice of sunlight.")),
			P(g.Text("HelioGrid is a 40 MW solar farm run end to end by AI agents. They generate, store, trade and pay out — you just watch the dashboard.")),
			A(Class("btn"), Href("/dashboard"), g.Text("Open the live demo")),
		),
		components.PageSection("How the farm runs itself",
			Div(append([]g.Node{Class("grid cols-2")}, cards...)...),
		),
		components.PageSection("Built to be watched",
			components.GlassCard(
				P(StyleAttr("color: #cbd5e1;"), g.Text("The demo dashboard streams simulated ticks from the farm's market agent. Prices, battery state and upcoming decisions update live — no signup, no wallet, no strings.")),
				A(Class("btn"), Href("/dashboard"), g.Text("See it working")),
			),
		),
		web.PageFooter(),
	)
}
