//go:build ebiten

package render

import (
	"image/color"

	"cat-yarn/internal/core"
	"cat-yarn/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxIndices keeps a batch inside DrawTriangles' uint16 index range.
const maxIndices = 6 * 8192

// Painter draws a session frame as flat-shaded triangles.
type Painter struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPainter allocates the shared 1x1 source image.
func NewPainter() *Painter {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Painter{white: white}
}

// Draw projects f onto screen.
func (p *Painter) Draw(screen *ebiten.Image, f session.Frame) {
	b := screen.Bounds()
	quads := Scene(f, core.Size{W: b.Dx(), H: b.Dy()})

	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
	for _, q := range quads {
		if len(p.indices)+6 > maxIndices {
			p.flush(screen)
		}
		base := uint16(len(p.vertices))
		r := float32(q.Color.R) / 255
		g := float32(q.Color.G) / 255
		bl := float32(q.Color.B) / 255
		a := float32(q.Color.A) / 255
		for _, pt := range q.Points {
			p.vertices = append(p.vertices, ebiten.Vertex{
				DstX: pt[0], DstY: pt[1],
				SrcX: 0.5, SrcY: 0.5,
				ColorR: r, ColorG: g, ColorB: bl, ColorA: a,
			})
		}
		p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
	}
	p.flush(screen)
}

func (p *Painter) flush(screen *ebiten.Image) {
	if len(p.indices) == 0 {
		return
	}
	screen.DrawTriangles(p.vertices, p.indices, p.white, &ebiten.DrawTrianglesOptions{})
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}
