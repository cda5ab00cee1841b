package handler

import (
	"net/http"
	"strconv"

	"github.com/heliogrid/heliogrid-web/internal/config"
	"github.com/heliogrid/heliogrid-web/internal/scenery"
)

// SceneryHexGrid serve a malha hexagonal decorativa como SVG.
// Query params: w, h (dimensões), seed (determinismo) e static=1
// (desliga a animação SMIL, o análogo de prefers-reduced-motion).
func SceneryHexGrid(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := sceneryParamsFromQuery(r, cfg)
		writeSVG(w, scenery.HexGridSVG(params))
	})
}

// SceneryParticleField serve o campo de partículas guiado por ruído.
func SceneryParticleField(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := sceneryParamsFromQuery(r, cfg)
		writeSVG(w, scenery.ParticleFieldSVG(params))
	})
}

func sceneryParamsFromQuery(r *http.Request, cfg *config.Config) scenery.Params {
	query := r.URL.Query()

	params := scenery.Params{
		Animated: !cfg.Scenery.StaticOnly,
	}

	if v, err := strconv.Atoi(query.Get("w")); err == nil {
		params.Width = v
	}
	if v, err := strconv.Atoi(query.Get("h")); err == nil {
		params.Height = v
	}
	if v, err := strconv.ParseInt(query.Get("seed"), 10, 64); err == nil {
		params.Seed = v
	}
	if query.Get("static") == "1" {
		params.Animated = false
	}

	return params
}

func writeSVG(w http.ResponseWriter, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(svg))
}
