package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/maze-solver/internal/imaging"
	"github.com/ironsheep/maze-solver/internal/maze"
	"github.com/ironsheep/maze-solver/internal/solve"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "maze_load", "maze_solve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "maze_load":
		return s.handleMazeLoad(args)
	case "maze_dimensions":
		return s.handleMazeDimensions(args)
	case "maze_solve":
		return s.handleMazeSolve(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type mazeLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleMazeLoad(args json.RawMessage) (interface{}, error) {
	var a mazeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleMazeDimensions(args json.RawMessage) (interface{}, error) {
	var a mazeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type mazeSolveArgs struct {
	Path             string `json:"path"`
	Start            string `json:"start"`
	End              string `json:"end"`
	OutputPath       string `json:"output_path"`
	Channel          string `json:"channel"`
	ChannelThreshold *int   `json:"channel_threshold"`
	AlphaThreshold   *int   `json:"alpha_threshold"`
	PathColor        string `json:"path_color"`
	IncludePath      bool   `json:"include_path"`
}

// mazeSolveResult is the maze_solve payload. Durations are in seconds.
type mazeSolveResult struct {
	Width      uint       `json:"width"`
	Height     uint       `json:"height"`
	Start      maze.Coord `json:"start"`
	End        maze.Coord `json:"end"`
	Distance   int        `json:"distance"`
	PathLength int        `json:"path_length"`
	Path       maze.Path  `json:"path,omitempty"`
	OutputPath string     `json:"output_path,omitempty"`
	PathColor  string     `json:"path_color,omitempty"`
	Timings    struct {
		Flood float64 `json:"flood_seconds"`
		Trace float64 `json:"trace_seconds"`
		Save  float64 `json:"save_seconds"`
	} `json:"timings"`
}

// queryFromArgs applies per-call overrides on top of the server defaults.
func (s *Server) queryFromArgs(a mazeSolveArgs) (solve.Query, error) {
	q := solve.Query{
		Input:     a.Path,
		Output:    a.OutputPath,
		Config:    s.config,
		PathColor: s.pathColor,
	}

	var err error
	if q.Start, err = solve.ParseEndpoint(a.Start); err != nil {
		return q, fmt.Errorf("start: %w", err)
	}
	if q.End, err = solve.ParseEndpoint(a.End); err != nil {
		return q, fmt.Errorf("end: %w", err)
	}

	if a.Channel != "" {
		if q.Config.Channel, err = maze.ParseChannel(a.Channel); err != nil {
			return q, err
		}
	}
	if a.ChannelThreshold != nil {
		if *a.ChannelThreshold < 0 || *a.ChannelThreshold > 255 {
			return q, fmt.Errorf("channel_threshold %d out of range 0-255", *a.ChannelThreshold)
		}
		q.Config.ChannelThreshold = uint8(*a.ChannelThreshold)
	}
	if a.AlphaThreshold != nil {
		if *a.AlphaThreshold < 0 || *a.AlphaThreshold > 255 {
			return q, fmt.Errorf("alpha_threshold %d out of range 0-255", *a.AlphaThreshold)
		}
		q.Config.AlphaThreshold = uint8(*a.AlphaThreshold)
	}
	if a.PathColor != "" {
		if q.PathColor, err = imaging.ParseHexColor(a.PathColor); err != nil {
			return q, err
		}
	}

	return q, nil
}

func (s *Server) handleMazeSolve(args json.RawMessage) (interface{}, error) {
	var a mazeSolveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	q, err := s.queryFromArgs(a)
	if err != nil {
		return nil, err
	}

	res, err := solve.Run(s.cache, q)
	if err != nil {
		return nil, err
	}

	out := &mazeSolveResult{
		Width:      res.Width,
		Height:     res.Height,
		Start:      res.Start,
		End:        res.End,
		Distance:   res.Distance,
		PathLength: res.Path.Len(),
		OutputPath: res.Output,
	}
	if a.IncludePath {
		out.Path = res.Path
	}
	if res.Output != "" {
		out.PathColor = imaging.HexString(q.PathColor)
	}
	out.Timings.Flood = res.Timings.Flood.Seconds()
	out.Timings.Trace = res.Timings.Trace.Seconds()
	out.Timings.Save = res.Timings.Save.Seconds()

	return out, nil
}
