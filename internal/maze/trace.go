package maze

import "fmt"

// Path is an ordered list of 4-adjacent coordinates. Paths returned by Trace
// run from the end cell to the start cell.
type Path []Coord

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Reverse returns a copy of p in the opposite order.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}

// Trace reconstructs the path from end back to start on a grid settled by Flood.
//
// From the current cell at distance d it takes the first neighbour, in
// Directions order, whose distance is exactly d-1. The walk therefore finishes
// after exactly D steps, where D is the distance recorded at end, and the
// returned path holds D+1 coordinates. When D is 0 the path is just [end].
func Trace(g *Grid, start, end Coord) (Path, error) {
	if !g.Contains(start) || !g.Contains(end) {
		return nil, fmt.Errorf("%w: %s or %s outside %dx%d grid", ErrInvalidEndpoint, start, end, g.Width, g.Height)
	}

	d, ok := g.At(end).Distance()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFlooded, end)
	}

	path := make(Path, 0, d+1)
	path = append(path, end)

	cur := end
	for d > 0 {
		prev, found := predecessor(g, cur, d)
		if !found {
			return nil, fmt.Errorf("%w: no neighbour of %s at distance %d", ErrBrokenField, cur, d-1)
		}
		cur = prev
		d--
		path = append(path, cur)
	}

	if cur != start {
		return nil, fmt.Errorf("%w: walk ended at %s, not %s", ErrBrokenField, cur, start)
	}

	return path, nil
}

func predecessor(g *Grid, c Coord, d int) (Coord, bool) {
	for _, dir := range Directions {
		n, ok := Move(c, dir, g.Width, g.Height)
		if !ok {
			continue
		}
		if nd, visited := g.At(n).Distance(); visited && nd == d-1 {
			return n, true
		}
	}
	return c, false
}

// Solve floods g from start and traces the path back from end.
// Flood errors are returned unchanged and tracing is skipped.
func Solve(g *Grid, start, end Coord) (Path, error) {
	if err := Flood(g, start, end); err != nil {
		return nil, err
	}
	return Trace(g, start, end)
}
