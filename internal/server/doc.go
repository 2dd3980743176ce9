// Package server implements the MCP (Model Context Protocol) server for maze solving.
//
// This package provides a JSON-RPC 2.0 server that exposes the maze solver
// through the MCP protocol, so MCP-compatible clients can solve maze images
// without shelling out to the command-line tool.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - maze_load: Load a maze image and get metadata
//   - maze_dimensions: Get width and height (the grid size)
//   - maze_solve: Find the shortest path between two cells and optionally
//     write the solved image
//
// Endpoints are given as "x,y" or as a "#RRGGBB" marker colour. The
// classifier defaults to the server's configuration and can be overridden
// per call with channel, channel_threshold and alpha_threshold.
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path.
// A maze_load followed by several maze_solve calls decodes the file once.
// Solving never mutates the cached image; each call builds its own grid.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. "maze: no path found"
//
// # Usage
//
// The server is started by the maze-solve binary with --mcp:
//
//	srv := server.New(server.WithConfig(cfg))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
