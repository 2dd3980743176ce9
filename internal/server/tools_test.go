package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"maze_load",
		"maze_dimensions",
		"maze_solve",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || props == nil {
				t.Fatal("InputSchema properties missing")
			}

			// Every required field must be declared as a property
			required, _ := tool.InputSchema["required"].([]string)
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required field %q has no property definition", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RequiredPath(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			requiredList, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			hasPath := false
			for _, r := range requiredList {
				if r == "path" {
					hasPath = true
					break
				}
			}
			if !hasPath {
				t.Errorf("Tool %s should require 'path' parameter", tool.Name)
			}
		})
	}
}

func TestToolDefinitions_SolveRequiresEndpoints(t *testing.T) {
	var solveTool *Tool
	for _, tool := range GetToolDefinitions() {
		if tool.Name == "maze_solve" {
			tool := tool
			solveTool = &tool
		}
	}
	if solveTool == nil {
		t.Fatal("maze_solve not defined")
	}

	required := solveTool.InputSchema["required"].([]string)
	want := map[string]bool{"path": false, "start": false, "end": false}
	for _, r := range required {
		if _, ok := want[r]; ok {
			want[r] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("maze_solve should require %q", name)
		}
	}
}
