package scenery

import (
	"math"

	"github.com/heliogrid/heliogrid-web/pkg/svgpath"
)

// HexCell é uma célula da malha hexagonal com seu centro no espaço do SVG.
type HexCell struct {
	Col    int
	Row    int
	Center svgpath.Point
}

// HexLattice gera as células de uma malha hexagonal "pointy-top" em
// coordenadas offset, com linhas ímpares deslocadas meio passo.
func HexLattice(cols, rows int, radius float64) []HexCell {
	if cols <= 0 || rows <= 0 || radius <= 0 {
		return nil
	}

	cells := make([]HexCell, 0, cols*rows)
	stepX := radius * math.Sqrt(3)
	stepY := radius * 1.5

	for row := 0; row < rows; row++ {
		offset := 0.0
		if row%2 == 1 {
			offset = stepX / 2
		}

		for col := 0; col < cols; col++ {
			cells = append(cells, HexCell{
				Col: col,
				Row: row,
				Center: svgpath.Point{
					X: float64(col)*stepX + offset,
					Y: float64(row) * stepY,
				},
			})
		}
	}

	return cells
}

// Vertices devolve os seis vértices do hexágono da célula.
func (c HexCell) Vertices(radius float64) []svgpath.Point {
	vertices := make([]svgpath.Point, 6)
	for i := 0; i < 6; i++ {
		// Vértices a cada 60°, começando em -30° para o topo pontudo.
		angle := math.Pi / 180 * (60*float64(i) - 30)
		vertices[i] = svgpath.Point{
			X: c.Center.X + radius*math.Cos(angle),
			Y: c.Center.Y + radius*math.Sin(angle),
		}
	}
	return vertices
}
