package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// endpointSchema describes a start or end argument.
func endpointSchema(which string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "The " + which + " cell as \"x,y\" (0-based, top-left origin), or a marker colour \"#RRGGBB\" whose first pixel is used",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "maze_load",
			Description: "Load a maze image and return its dimensions, format and whether it has an alpha channel. The decoded image is cached for later maze_solve calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze image",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_dimensions",
			Description: "Get the width and height of a maze image, which are also the grid dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze image",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "maze_solve",
			Description: "Find the shortest 4-connected path between two cells of a maze image (dark pixels are walls). Optionally writes a copy of the image with the path drawn in the solution colour.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the maze image",
					},
					"start": endpointSchema("start"),
					"end":   endpointSchema("end"),
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file to write the solved image to (.png, .jpg or .bmp)",
					},
					"channel": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"red", "green", "blue", "luma"},
						"description": "Colour channel compared against channel_threshold. Default red",
					},
					"channel_threshold": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     255,
						"description": "Pixels whose channel value is at or below this are walls. Default 100",
					},
					"alpha_threshold": map[string]interface{}{
						"type":        "integer",
						"minimum":     0,
						"maximum":     255,
						"description": "Only pixels with alpha >= 255-alpha_threshold can be walls. Default 255 (alpha ignored)",
					},
					"path_color": map[string]interface{}{
						"type":        "string",
						"description": "Solution colour as hex. Default #FF0000",
					},
					"include_path": map[string]interface{}{
						"type":        "boolean",
						"description": "Return every path coordinate (end to start). Default false",
						"default":     false,
					},
				},
				"required": []string{"path", "start", "end"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
