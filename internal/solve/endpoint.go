package solve

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/ironsheep/maze-solver/internal/imaging"
	"github.com/ironsheep/maze-solver/internal/maze"
)

var (
	// ErrBadCoordinate indicates an endpoint argument that is neither "x,y" nor a hex colour.
	ErrBadCoordinate = errors.New("solve: bad coordinate")
	// ErrMarkerNotFound indicates no pixel of the requested marker colour exists in the image.
	ErrMarkerNotFound = errors.New("solve: marker colour not found")
)

// Endpoint is a start or end position as given by the user: either a fixed
// coordinate or a marker colour to look up in the image.
type Endpoint struct {
	Coord    maze.Coord
	Marker   color.NRGBA
	IsMarker bool
	raw      string
}

// String returns the endpoint as it was written.
func (e Endpoint) String() string {
	if e.raw != "" {
		return e.raw
	}
	if e.IsMarker {
		return imaging.HexString(e.Marker)
	}
	return e.Coord.String()
}

// At returns a fixed-coordinate endpoint.
func At(x, y uint) Endpoint {
	return Endpoint{Coord: maze.Coord{X: x, Y: y}}
}

// ParseEndpoint accepts "x,y" with unsigned decimal components, or a marker
// colour written as "#RRGGBB". Marker endpoints resolve to the first pixel of
// that colour in row-major order.
func ParseEndpoint(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := imaging.ParseHexColor(s)
		if err != nil {
			return Endpoint{}, fmt.Errorf("%w: %v", ErrBadCoordinate, err)
		}
		return Endpoint{Marker: c, IsMarker: true, raw: s}, nil
	}

	xs, ys, found := strings.Cut(s, ",")
	if !found || strings.Contains(ys, ",") {
		return Endpoint{}, fmt.Errorf("%w: %q is not in x,y form", ErrBadCoordinate, s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: x in %q: %v", ErrBadCoordinate, s, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: y in %q: %v", ErrBadCoordinate, s, err)
	}

	e := At(uint(x), uint(y))
	e.raw = s
	return e, nil
}

// Resolve turns e into a grid coordinate for img. Fixed coordinates are
// returned as is; bounds are checked later by the flood.
func (e Endpoint) Resolve(img image.Image) (maze.Coord, error) {
	if !e.IsMarker {
		return e.Coord, nil
	}
	x, y, ok := imaging.FindPixel(img, e.Marker)
	if !ok {
		return maze.Coord{}, fmt.Errorf("%w: %s", ErrMarkerNotFound, e)
	}
	return maze.Coord{X: uint(x), Y: uint(y)}, nil
}
