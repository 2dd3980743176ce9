package maze

import "fmt"

// Coord is a cell position. Both axes are bounded by the grid dimensions.
type Coord struct {
	X uint `json:"x"`
	Y uint `json:"y"`
}

// String formats the coordinate as "x,y", the form accepted on the command line.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Direction is a signed unit step along exactly one axis.
type Direction struct {
	DX, DY int
}

// Directions lists the four orthogonal steps in tie-break order.
// Flood and Trace both consult neighbours in this order.
var Directions = [4]Direction{
	{0, 1},
	{1, 0},
	{-1, 0},
	{0, -1},
}

// Move applies d to c and reports whether the result lies inside a
// width x height grid.
//
// A negative step is rejected when its magnitude exceeds the current
// coordinate, so the unsigned axes never wrap. A positive step is rejected when
// it reaches width or height. Every neighbour computation in this package goes
// through Move.
func Move(c Coord, d Direction, width, height uint) (Coord, bool) {
	x, ok := step(c.X, d.DX, width)
	if !ok {
		return c, false
	}
	y, ok := step(c.Y, d.DY, height)
	if !ok {
		return c, false
	}
	return Coord{X: x, Y: y}, true
}

func step(v uint, delta int, limit uint) (uint, bool) {
	if delta < 0 {
		mag := uint(-delta)
		if mag > v {
			return v, false
		}
		return v - mag, true
	}
	next := v + uint(delta)
	if next >= limit || next < v {
		return v, false
	}
	return next, true
}
