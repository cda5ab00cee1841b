// Package web renderiza as páginas do site e o dashboard de demonstração
// com gomponents. O visual segue o tema "glass": painéis translúcidos
// sobre os fundos procedurais servidos em /assets/scenery.
package web

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const baseCSS = `
:root { color-scheme: dark; }
* { box-sizing: border-box; margin: 0; }
body {
  font-family: 'Inter', system-ui, sans-serif;
  background: #0b1220 url('/assets/scenery/hex.svg') center / cover no-repeat fixed;
  color: #e2e8f0;
  min-height: 100vh;
}
a { color: #7dd3fc; text-decoration: none; }
.container { max-width: 1080px; margin: 0 auto; padding: 0 24px; }
.nav { display: flex; justify-content: space-between; align-items: center; padding: 24px 0; }
.nav .brand { font-weight: 700; font-size: 1.2rem; color: #f8fafc; }
.glass-card {
  background: rgba(15, 23, 42, 0.55);
  border: 1px solid rgba(148, 163, 184, 0.18);
  border-radius: 16px;
  padding: 24px;
  backdrop-filter: blur(14px);
  -webkit-backdrop-filter: blur(14px);
}
.badge {
  display: inline-block;
  padding: 2px 10px;
  border-radius: 999px;
  font-size: 0.72rem;
  font-weight: 600;
  letter-spacing: 0.04em;
  text-transform: uppercase;
}
.grid { display: grid; gap: 20px; }
.grid.cols-2 { grid-template-columns: repeat(2, 1fr); }
.grid.cols-3 { grid-template-columns: repeat(3, 1fr); }
.grid.cols-4 { grid-template-columns: repeat(4, 1fr); }
.stat .label { font-size: 0.78rem; color: #94a3b8; text-transform: uppercase; letter-spacing: 0.06em; }
.stat .value { font-size: 1.7rem; font-weight: 700; margin-top: 6px; color: #f8fafc; }
.stat .delta { font-size: 0.8rem; margin-top: 4px; }
.hero { padding: 96px 0 64px; text-align: center; }
.hero h1 { font-size: 2.6rem; color: #f8fafc; }
.hero p { margin-top: 16px; color: #cbd5e1; max-width: 560px; margin-inline: auto; }
.btn {
  display: inline-block; margin-top: 28px; padding: 12px 28px; border-radius: 10px;
  background: linear-gradient(120deg, #0ea5e9, #22d3ee); color: #0b1220; font-weight: 700;
}
.section { margin: 56px 0; }
.section h2 { margin-bottom: 20px; color: #f8fafc; }
.mono { font-family: 'JetBrains Mono', monospace; font-size: 0.8rem; color: #94a3b8; }
footer { padding: 48px 0; color: #64748b; font-size: 0.85rem; }
@media (max-width: 840px) {
  .grid.cols-2, .grid.cols-3, .grid.cols-4 { grid-template-columns: 1fr; }
}
`

// Page monta o documento HTML5 com o tema e a navegação padrão.
func Page(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: "HelioGrid — usina solar gerida por IA, da geração ao payout",
		Language:    "en",
		Head: []g.Node{
			StyleEl(g.Raw(baseCSS)),
		},
		Body: append([]g.Node{nav()}, body...),
	})
}

func nav() g.Node {
	return Div(Class("container nav"),
		A(Class("brand"), Href("/"), g.Text("HelioGrid")),
		Div(
			A(Href("/dashboard"), g.Text("Live dashboard")),
		),
	)
}

// PageFooter fecha as páginas com o aviso de que tudo aqui é demonstração.
func PageFooter() g.Node {
	return Div(Class("container"),
		g.El("footer",
			P(g.Text("HelioGrid is a product demo. All dashboard data is simulated; nothing on this site is investment advice.")),
			P(Class("mono"), g.Text("© 2026 HelioGrid Labs")),
		),
	)
}
