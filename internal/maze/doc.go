// Package maze finds the shortest orthogonal path between two cells of a
// raster maze.
//
// The pipeline has three stages that share one exclusively owned Grid:
//
//  1. Build classifies every pixel of a decoded image as a wall or open floor.
//  2. Flood runs a round-based breadth-first wave from the start cell, writing
//     the discovered distance into each cell it reaches. It stops as soon as
//     the end cell is settled, so cells outside the shortest-path cone stay
//     unvisited.
//  3. Trace walks the distance field back from the end cell to the start cell.
//
// # Coordinates
//
// Coordinates are unsigned. (0,0) is the top-left cell, X grows rightward and
// Y grows downward. All neighbour arithmetic goes through Move, which rejects
// steps that would underflow zero or reach the grid width or height.
//
// # Tie-breaking
//
// Neighbours are always visited in the order of Directions: down, right, left,
// up. Among several shortest paths the one returned by Trace is fully
// determined by that order, so results are reproducible.
//
// # Errors
//
// Failures are returned, never raised:
//   - ErrInvalidEndpoint: start or end lies outside the grid or on a wall
//   - ErrNoPathFound: the end cell is disconnected from the start cell
//   - ErrBuild: the input image is nil or has no pixels
//
// # Concurrency
//
// A Grid carries the state of exactly one query. Functions in this package
// keep no shared state, so independent queries may run concurrently as long
// as each owns its own Grid.
package maze
