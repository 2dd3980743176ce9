// Package solve runs one maze query end to end: decode the input image,
// resolve the endpoints, build and flood the grid, trace the path, draw it on
// a copy of the image and write the result.
//
// Every query builds its own grid, so a shared ImageCache is the only state
// carried between calls.
package solve

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ironsheep/maze-solver/internal/imaging"
	"github.com/ironsheep/maze-solver/internal/maze"
)

// Query describes one solve request.
type Query struct {
	Input  string
	Output string
	Start  Endpoint
	End    Endpoint
	Config maze.Config
	// PathColor is the colour drawn on path cells. A zero value means
	// imaging.SolutionColor.
	PathColor color.NRGBA
}

// Timings records how long each phase took.
type Timings struct {
	Load  time.Duration `json:"load"`
	Build time.Duration `json:"build"`
	Flood time.Duration `json:"flood"`
	Trace time.Duration `json:"trace"`
	Draw  time.Duration `json:"draw"`
	Save  time.Duration `json:"save"`
}

// Result is the outcome of a successful query.
type Result struct {
	Width    uint       `json:"width"`
	Height   uint       `json:"height"`
	Start    maze.Coord `json:"start"`
	End      maze.Coord `json:"end"`
	Distance int        `json:"distance"`
	Path     maze.Path  `json:"path"`
	Output   string     `json:"output"`
	Timings  Timings    `json:"timings"`
}

// Run executes q. Images are loaded through cache, which must not be nil.
//
// Errors from the maze package (ErrInvalidEndpoint, ErrNoPathFound,
// ErrBuild) pass through wrapped, so callers can classify them with
// errors.Is. When Output is empty the path is computed but nothing is drawn
// or written.
func Run(cache *imaging.ImageCache, q Query) (*Result, error) {
	res := &Result{Output: q.Output}

	if q.Output != "" {
		// Fail on an unsupported output format before doing any work.
		if _, err := imaging.EncoderFor(q.Output); err != nil {
			return nil, err
		}
	}

	t := time.Now()
	img, err := cache.Load(q.Input)
	if err != nil {
		return nil, err
	}
	res.Timings.Load = time.Since(t)

	start, err := q.Start.Resolve(img)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := q.End.Resolve(img)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	res.Start, res.End = start, end

	t = time.Now()
	g, err := maze.Build(img, q.Config)
	if err != nil {
		return nil, err
	}
	res.Width, res.Height = g.Width, g.Height
	if q.Start.IsMarker && g.Contains(start) {
		g.SetOpen(start)
	}
	if q.End.IsMarker && g.Contains(end) {
		g.SetOpen(end)
	}
	res.Timings.Build = time.Since(t)

	t = time.Now()
	if err := maze.Flood(g, start, end); err != nil {
		return nil, err
	}
	res.Timings.Flood = time.Since(t)

	t = time.Now()
	path, err := maze.Trace(g, start, end)
	if err != nil {
		return nil, err
	}
	res.Timings.Trace = time.Since(t)
	res.Path = path
	res.Distance = path.Len() - 1

	if q.Output == "" {
		return res, nil
	}

	pathColor := q.PathColor
	if pathColor == (color.NRGBA{}) {
		pathColor = imaging.SolutionColor
	}

	t = time.Now()
	canvas := imaging.RenderSolution(img, path, pathColor)
	res.Timings.Draw = time.Since(t)

	t = time.Now()
	if err := imaging.Save(q.Output, canvas); err != nil {
		return nil, err
	}
	res.Timings.Save = time.Since(t)

	return res, nil
}
