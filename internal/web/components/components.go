// Package components é a biblioteca de componentes visuais do site:
// cartões "glass", badges, chips de persona e blocos de estatística.
package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/pkg/format"
	"github.com/heliogrid/heliogrid-web/pkg/svgpath"
)

// GlassCard é o painel translúcido que dá identidade visual ao site.
func GlassCard(children ...g.Node) g.Node {
	return Div(append([]g.Node{Class("glass-card")}, children...)...)
}

// Badge é um selo colorido de destaque.
func Badge(text, color string) g.Node {
	return Span(
		Class("badge"),
		StyleAttr(fmt.Sprintf("background: %s22; color: %s; border: 1px solid %s55;", color, color, color)),
		g.Text(text),
	)
}

// PersonaChip identifica o agente responsável por uma decisão.
func PersonaChip(persona domain.Persona) g.Node {
	return Badge(persona.Label(), persona.Color())
}

// StatTile mostra um indicador com rótulo, valor formatado e variação.
func StatTile(label, value, delta string) g.Node {
	nodes := []g.Node{
		Div(Class("label"), g.Text(label)),
		Div(Class("value"), g.Text(value)),
	}
	if delta != "" {
		color := "#34d399"
		if strings.HasPrefix(delta, "-") || strings.HasPrefix(delta, "−") {
			color = "#f87171"
		}
		nodes = append(nodes, Div(Class("delta"), StyleAttr("color: "+color), g.Text(delta)))
	}

	return Div(append([]g.Node{Class("glass-card stat")}, nodes...)...)
}

// PageSection agrupa um bloco da página com título.
func PageSection(title string, children ...g.Node) g.Node {
	return Div(
		append([]g.Node{Class("container section"), H2(g.Text(title))}, children...)...,
	)
}

// SparklineSVG desenha a série como um sparkline embutido na página.
func SparklineSVG(values []float64, width, height float64) g.Node {
	points := svgpath.Sparkline(values, width, height)

	return g.El("svg",
		g.Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", width, height)),
		g.Attr("width", "100%"),
		g.Attr("preserveAspectRatio", "none"),
		g.El("polyline",
			g.Attr("points", points),
			g.Attr("fill", "none"),
			g.Attr("stroke", "#22d3ee"),
			g.Attr("stroke-width", "2"),
		),
	)
}

// FlowDiagram desenha o fluxo decorativo de energia entre os nós dados.
func FlowDiagram(points []svgpath.Point, mode svgpath.Mode, width, height float64) g.Node {
	path := svgpath.FlowLine(points, mode)

	nodes := []g.Node{
		g.Attr("viewBox", fmt.Sprintf("0 0 %.0f %.0f", width, height)),
		g.Attr("width", "100%"),
		g.El("path",
			g.Attr("d", path),
			g.Attr("fill", "none"),
			g.Attr("stroke", "#38bdf8"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-dasharray", "6 10"),
		),
	}

	for _, p := range points {
		nodes = append(nodes, g.El("circle",
			g.Attr("cx", fmt.Sprintf("%.1f", p.X)),
			g.Attr("cy", fmt.Sprintf("%.1f", p.Y)),
			g.Attr("r", "5"),
			g.Attr("fill", "#0ea5e9"),
		))
	}

	return g.El("svg", nodes...)
}

// TxRefLabel encurta o pseudo-hash para exibição.
func TxRefLabel(txRef string) g.Node {
	return Span(Class("mono"), g.Text(format.TruncateAddress(txRef)))
}
