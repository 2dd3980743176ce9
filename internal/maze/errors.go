package maze

import "errors"

var (
	// ErrInvalidEndpoint indicates the start or end cell is out of bounds or a wall.
	ErrInvalidEndpoint = errors.New("maze: invalid endpoint")
	// ErrNoPathFound indicates the wave expansion ran out of cells before reaching the end.
	ErrNoPathFound = errors.New("maze: no path found")
	// ErrBuild indicates the input image cannot be turned into a grid.
	ErrBuild = errors.New("maze: cannot build grid")
	// ErrNotFlooded indicates Trace was called on a grid whose end cell has no distance.
	ErrNotFlooded = errors.New("maze: end cell has no distance")
	// ErrBrokenField indicates a visited cell without a predecessor one step closer to the start.
	ErrBrokenField = errors.New("maze: distance field is inconsistent")
	// ErrUnknownChannel indicates a Config names a channel the classifier does not support.
	ErrUnknownChannel = errors.New("maze: unknown channel")
)
