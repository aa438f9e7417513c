// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes spec-mesh capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	specmesh "github.com/invoxy/spec-mesh"
)

const serverInstructions = `spec-mesh MCP server — merges, validates, and names multi-service OpenAPI documents.

Configuration: All defaults are configurable via SPECMESH_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SPECMESH_MERGE_GROUPING (default: true) — prefix operation tags with the service name by default
- SPECMESH_MERGE_VALIDATE (default: true) — exclude structurally invalid sources from merges by default
- SPECMESH_PROXY_PATH_PREFIX (default: /proxy) — path prefix for proxy-mode server URLs
- SPECMESH_MAX_INLINE_SIZE (default: 4MB) — maximum inline spec content size
- SPECMESH_FETCH_TIMEOUT (default: 30s) — per-URL fetch timeout
- SPECMESH_ALLOW_PRIVATE_IPS (default: false) — allow fetching specs from private/loopback addresses`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specmesh", Version: specmesh.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge multiple OpenAPI documents into one. Each source has a name, an optional base URL (injected as the per-operation server), and a spec given as a file path, URL, or inline content. Colliding paths and schemas are disambiguated by suffixing the source name. Tag grouping and source validation defaults are configurable via SPECMESH_MERGE_GROUPING and SPECMESH_MERGE_VALIDATE env vars.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Check that an OpenAPI document has the minimal structure required for merging: a version marker, an info block with title and version, and a paths mapping. Returns the issues found with their locations.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "safe_name",
		Description: "Sanitize a service name into the identifier used in proxy paths and collision suffixes, and return its human-readable display form.",
	}, handleSafeName)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
