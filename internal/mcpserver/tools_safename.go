package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/invoxy/spec-mesh/internal/naming"
)

type safeNameInput struct {
	Name string `json:"name" jsonschema:"The service name to sanitize"`
}

type safeNameOutput struct {
	SafeName    string `json:"safe_name"`
	DisplayName string `json:"display_name"`
	// Empty is true when sanitization removed every character; callers
	// should fall back to a generated name.
	Empty bool `json:"empty"`
}

func handleSafeName(_ context.Context, _ *mcp.CallToolRequest, input safeNameInput) (*mcp.CallToolResult, safeNameOutput, error) {
	if input.Name == "" {
		return errResult(fmt.Errorf("name must not be empty")), safeNameOutput{}, nil
	}

	safe := naming.SafeName(input.Name)
	return nil, safeNameOutput{
		SafeName:    safe,
		DisplayName: naming.DisplayName(safe),
		Empty:       safe == "",
	}, nil
}
