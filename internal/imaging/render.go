package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/maze-solver/internal/maze"
)

// SolutionColor is the default path colour: opaque red.
var SolutionColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// NewCanvas returns a writable copy of img with its origin moved to (0,0),
// so canvas pixel (x,y) lines up with grid cell (x,y). The source image is
// never modified, which keeps cached images safe to reuse.
func NewCanvas(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// DrawPath paints every cell of path onto dst in colour c.
//
// Path coordinates are grid coordinates and are offset by dst.Bounds().Min.
// Cells outside dst are skipped.
func DrawPath(dst draw.Image, path maze.Path, c color.Color) {
	bounds := dst.Bounds()
	for _, p := range path {
		x := bounds.Min.X + int(p.X)
		y := bounds.Min.Y + int(p.Y)
		if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		dst.Set(x, y, c)
	}
}

// RenderSolution copies img and draws path on the copy in colour c.
func RenderSolution(img image.Image, path maze.Path, c color.Color) *image.NRGBA {
	canvas := NewCanvas(img)
	DrawPath(canvas, path, c)
	return canvas
}
