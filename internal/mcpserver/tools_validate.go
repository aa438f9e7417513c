package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/invoxy/spec-mesh/validator"
)

type validateInput struct {
	Spec specInput `json:"spec" jsonschema:"The OpenAPI document to check"`
}

type validateIssue struct {
	Path     string `json:"path"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type validateOutput struct {
	Valid  bool            `json:"valid"`
	Issues []validateIssue `json:"issues,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	doc, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result := validator.Validate(doc)

	output := validateOutput{Valid: result.Valid}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, validateIssue{
			Path:     issue.Path,
			Message:  issue.Message,
			Severity: issue.Severity.String(),
		})
	}
	return nil, output, nil
}
