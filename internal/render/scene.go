package render

import (
	"image/color"
	"slices"

	"cat-yarn/internal/core"
	"cat-yarn/internal/session"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind tags which object a quad belongs to.
type Kind int

const (
	KindIsland Kind = iota
	KindYarn
	KindCat
)

// Quad is one projected cube face in screen pixels.
type Quad struct {
	Points [4][2]float32
	Depth  float64
	Color  color.RGBA
	Kind   Kind
}

type face struct {
	corners [4]mgl64.Vec3
	normal  mgl64.Vec3
	shade   float64
}

// unitCube spans [-0.5, 0.5] on every axis. Corners are listed
// counter-clockwise seen from outside.
var unitCube = []face{
	{[4]mgl64.Vec3{{-.5, .5, -.5}, {-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}}, mgl64.Vec3{0, 1, 0}, 1.0},
	{[4]mgl64.Vec3{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}, mgl64.Vec3{0, -1, 0}, 0.45},
	{[4]mgl64.Vec3{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}, mgl64.Vec3{0, 0, 1}, 0.8},
	{[4]mgl64.Vec3{{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}, mgl64.Vec3{0, 0, -1}, 0.7},
	{[4]mgl64.Vec3{{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}}, mgl64.Vec3{1, 0, 0}, 0.65},
	{[4]mgl64.Vec3{{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}}, mgl64.Vec3{-1, 0, 0}, 0.6},
}

var (
	islandBase = color.RGBA{R: 96, G: 168, B: 88, A: 255}
	yarnBase   = color.RGBA{R: 214, G: 64, B: 96, A: 255}
	catBase    = color.RGBA{R: 236, G: 150, B: 60, A: 255}
)

// minW rejects vertices on or behind the camera plane.
const minW = 1e-6

// Project maps a world point through mvp to screen pixels. ok is false when
// the point lies behind the camera.
func Project(mvp mgl64.Mat4, p mgl64.Vec3, size core.Size) (x, y, w float64, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w = clip.W()
	if w <= minW {
		return 0, 0, w, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	x = (nx + 1) / 2 * float64(size.W)
	y = (1 - ny) / 2 * float64(size.H)
	return x, y, w, true
}

// Shade scales c by f, clamped to [0, 1].
func Shade(c color.RGBA, f float64) color.RGBA {
	f = mgl64.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// IslandColor tints islands by their relative height.
func IslandColor(brightness float64) color.RGBA {
	return Shade(islandBase, brightness)
}

// Scene converts a session frame into depth-sorted quads, farthest first.
// The cat is only drawn from the overhead camera.
func Scene(f session.Frame, size core.Size) []Quad {
	vp := f.Projection.Mul4(f.View)
	eye := f.View.Inv().Col(3).Vec3()

	quads := make([]Quad, 0, (len(f.Islands)+2)*3)
	for _, isl := range f.Islands {
		model := mgl64.Translate3D(isl.Center.X(), isl.Center.Y(), isl.Center.Z()).
			Mul4(mgl64.Scale3D(isl.Size, isl.Size, isl.Size))
		quads = appendCube(quads, vp, model, eye, size, IslandColor(isl.Brightness()), KindIsland)
	}
	quads = appendCube(quads, vp, f.YarnModel, eye, size, yarnBase, KindYarn)
	if !f.FirstPerson {
		quads = appendCube(quads, vp, f.CatModel, eye, size, catBase, KindCat)
	}

	slices.SortStableFunc(quads, func(a, b Quad) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
	return quads
}

func appendCube(dst []Quad, vp, model mgl64.Mat4, eye mgl64.Vec3, size core.Size, base color.RGBA, kind Kind) []Quad {
	mvp := vp.Mul4(model)
	normalM := model.Mat3().Inv().Transpose()
outer:
	for _, fc := range unitCube {
		normal := normalM.Mul3x1(fc.normal).Normalize()
		mid := fc.corners[0].Add(fc.corners[2]).Mul(0.5)
		worldMid := model.Mul4x1(mid.Vec4(1)).Vec3()
		if normal.Dot(eye.Sub(worldMid)) <= 0 {
			continue
		}

		q := Quad{Color: Shade(base, fc.shade), Kind: kind}
		for i, c := range fc.corners {
			x, y, w, ok := Project(mvp, c, size)
			if !ok {
				continue outer
			}
			q.Points[i] = [2]float32{float32(x), float32(y)}
			q.Depth += w / 4
		}
		dst = append(dst, q)
	}
	return dst
}
