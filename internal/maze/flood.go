package maze

import "fmt"

// Flood writes shortest distances from start into g, one round per distance.
//
// Round r expands every coordinate in the current frontier, visiting
// neighbours in Directions order. A neighbour that is inside the grid, not a
// wall and still unvisited is settled at distance r and joins the next
// frontier. Settled cells are never written again.
//
// Flood returns as soon as end is settled; cells beyond that wave front keep
// CellUnvisited. When start equals end it returns right after settling start
// at 0.
//
// # Errors
//
//   - ErrInvalidEndpoint if start or end is outside the grid or on a wall.
//     Nothing is written in that case.
//   - ErrNoPathFound if the frontier empties before end is reached.
func Flood(g *Grid, start, end Coord) error {
	if err := checkEndpoint(g, "start", start); err != nil {
		return err
	}
	if err := checkEndpoint(g, "end", end); err != nil {
		return err
	}

	g.settle(start, 0)
	if start == end {
		return nil
	}

	current := []Coord{start}
	next := make([]Coord, 0, 4)

	for r := 1; ; r++ {
		for _, c := range current {
			for _, d := range Directions {
				n, ok := Move(c, d, g.Width, g.Height)
				if !ok {
					continue
				}
				if g.At(n).Kind() != CellUnvisited {
					continue
				}
				g.settle(n, r)
				if n == end {
					return nil
				}
				next = append(next, n)
			}
		}

		current, next = next, current
		next = next[:0]

		if len(current) == 0 {
			return fmt.Errorf("%w: %s is unreachable from %s", ErrNoPathFound, end, start)
		}
	}
}

func checkEndpoint(g *Grid, role string, c Coord) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s %s outside %dx%d grid", ErrInvalidEndpoint, role, c, g.Width, g.Height)
	}
	if g.At(c).IsWall() {
		return fmt.Errorf("%w: %s %s is a wall", ErrInvalidEndpoint, role, c)
	}
	return nil
}
