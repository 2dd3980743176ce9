package maze

import (
	"fmt"
	"image"
	"image/color"
)

// CellKind tags the state of a grid cell.
type CellKind uint8

const (
	// CellUnvisited is open floor the wave has not reached yet.
	CellUnvisited CellKind = iota
	// CellVisited is open floor with a settled distance from the start.
	CellVisited
	// CellWall is impassable and never changes.
	CellWall
)

// Cell is one grid entry: a wall, an unvisited floor cell, or a visited floor
// cell carrying its distance. The distance is only meaningful for CellVisited.
type Cell struct {
	kind CellKind
	dist uint32
}

// Wall returns an impassable cell.
func Wall() Cell { return Cell{kind: CellWall} }

// Unvisited returns an open cell without a distance.
func Unvisited() Cell { return Cell{kind: CellUnvisited} }

// Visited returns an open cell settled at distance d.
func Visited(d int) Cell { return Cell{kind: CellVisited, dist: uint32(d)} }

// Kind reports the cell state.
func (c Cell) Kind() CellKind { return c.kind }

// IsWall reports whether the cell is impassable.
func (c Cell) IsWall() bool { return c.kind == CellWall }

// Distance returns the settled distance and true, or 0 and false when the
// cell is a wall or has not been reached.
func (c Cell) Distance() (int, bool) {
	if c.kind != CellVisited {
		return 0, false
	}
	return int(c.dist), true
}

// Grid is a flat, row-major occupancy and distance field for one query.
type Grid struct {
	Width, Height uint
	cells         []Cell
}

// NewGrid returns a width x height grid with every cell unvisited.
func NewGrid(width, height uint) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.X < g.Width && c.Y < g.Height
}

// Index maps c to its row-major position: y*Width + x.
func (g *Grid) Index(c Coord) int {
	return int(c.Y*g.Width + c.X)
}

// At returns the cell at c. c must lie inside the grid.
func (g *Grid) At(c Coord) Cell {
	return g.cells[g.Index(c)]
}

// SetWall marks c as impassable. It is meant for building grids from sources
// other than images; Flood never creates walls.
func (g *Grid) SetWall(c Coord) {
	g.cells[g.Index(c)] = Wall()
}

// SetOpen marks c as unvisited floor, overriding the classifier. Marker
// pixels painted over a wall use it before flooding.
func (g *Grid) SetOpen(c Coord) {
	g.cells[g.Index(c)] = Unvisited()
}

// settle records distance d at c. Callers guarantee c is unvisited.
func (g *Grid) settle(c Coord, d int) {
	g.cells[g.Index(c)] = Visited(d)
}

// Channel selects which colour component the classifier compares against
// the threshold.
type Channel int

const (
	// ChannelRed reads the red component.
	ChannelRed Channel = iota
	// ChannelGreen reads the green component.
	ChannelGreen
	// ChannelBlue reads the blue component.
	ChannelBlue
	// ChannelLuma reads ITU-R BT.601 luminance (0.299R + 0.587G + 0.114B).
	ChannelLuma
)

var channelNames = map[Channel]string{
	ChannelRed:   "red",
	ChannelGreen: "green",
	ChannelBlue:  "blue",
	ChannelLuma:  "luma",
}

// String returns the lower-case channel name.
func (ch Channel) String() string {
	if name, ok := channelNames[ch]; ok {
		return name
	}
	return fmt.Sprintf("channel(%d)", int(ch))
}

// ParseChannel maps "red", "green", "blue" or "luma" to a Channel.
func ParseChannel(name string) (Channel, error) {
	for ch, n := range channelNames {
		if n == name {
			return ch, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

// Config holds the wall classifier thresholds.
//
// A pixel is a wall when its selected channel is at most ChannelThreshold and
// its alpha is at least 255-AlphaThreshold. With AlphaThreshold at 255 every
// pixel passes the alpha test and only the channel decides.
type Config struct {
	Channel          Channel
	ChannelThreshold uint8
	AlphaThreshold   uint8
}

// DefaultConfig classifies on the red channel with a cutoff of 100 and
// ignores alpha.
func DefaultConfig() Config {
	return Config{
		Channel:          ChannelRed,
		ChannelThreshold: 100,
		AlphaThreshold:   255,
	}
}

// Validate rejects configurations the classifier cannot apply.
func (cfg Config) Validate() error {
	if _, ok := channelNames[cfg.Channel]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownChannel, int(cfg.Channel))
	}
	return nil
}

// IsWall applies the classification rule to a single colour.
// Channels are read without alpha premultiplication.
func (cfg Config) IsWall(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	var v uint8
	switch cfg.Channel {
	case ChannelGreen:
		v = n.G
	case ChannelBlue:
		v = n.B
	case ChannelLuma:
		v = uint8((299*uint32(n.R) + 587*uint32(n.G) + 114*uint32(n.B)) / 1000)
	default:
		v = n.R
	}

	return v <= cfg.ChannelThreshold && n.A >= 255-cfg.AlphaThreshold
}

// Build classifies every pixel of img and returns a fresh grid where dark
// pixels are walls and all others are unvisited floor.
//
// Grid cell (0,0) corresponds to img.Bounds().Min, so images with a non-zero
// origin are handled. Build returns ErrBuild for a nil or empty image and
// ErrUnknownChannel for an invalid Config; it has no other failure modes.
func Build(img image.Image, cfg Config) (*Grid, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrBuild)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image has no pixels (%dx%d)", ErrBuild, bounds.Dx(), bounds.Dy())
	}

	g := NewGrid(uint(bounds.Dx()), uint(bounds.Dy()))
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if cfg.IsWall(img.At(x, y)) {
				g.cells[i] = Wall()
			}
			i++
		}
	}

	return g, nil
}
