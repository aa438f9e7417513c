package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/invoxy/spec-mesh/merger"
)

type mergeSource struct {
	Name string    `json:"name,omitempty" jsonschema:"Service name used in tag prefixes and collision suffixes"`
	URL  string    `json:"url,omitempty"  jsonschema:"Base URL of the service, injected as the server for its operations"`
	Spec specInput `json:"spec"           jsonschema:"The service's OpenAPI document"`
}

type mergeInput struct {
	Sources         []mergeSource `json:"sources"                     jsonschema:"The documents to merge, in precedence order (first writer keeps bare keys)"`
	Title           string        `json:"title,omitempty"             jsonschema:"info.title for the merged document (default: Merged API)"`
	Description     string        `json:"description,omitempty"       jsonschema:"info.description for the merged document"`
	Version         string        `json:"version,omitempty"           jsonschema:"info.version for the merged document (default: 1.0.0)"`
	Grouping        *bool         `json:"grouping,omitempty"          jsonschema:"Prefix tags with the service name (default from SPECMESH_MERGE_GROUPING)"`
	ProxyMode       bool          `json:"proxy_mode,omitempty"        jsonschema:"Inject proxy-path server URLs instead of direct service URLs"`
	ProxyPathPrefix string        `json:"proxy_path_prefix,omitempty" jsonschema:"Path prefix for proxy-mode server URLs (default from SPECMESH_PROXY_PATH_PREFIX)"`
	Validate        *bool         `json:"validate,omitempty"          jsonschema:"Exclude structurally invalid sources (default from SPECMESH_MERGE_VALIDATE)"`
}

type mergeOutput struct {
	Merged         string   `json:"merged"`
	SourceCount    int      `json:"source_count"`
	CollisionCount int      `json:"collision_count"`
	Warnings       []string `json:"warnings,omitempty"`
}

func handleMerge(ctx context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	grouping := cfg.Grouping
	if input.Grouping != nil {
		grouping = *input.Grouping
	}
	validate := cfg.ValidateSources
	if input.Validate != nil {
		validate = *input.Validate
	}
	prefix := input.ProxyPathPrefix
	if prefix == "" {
		prefix = cfg.ProxyPathPrefix
	}

	sources := make([]merger.Source, 0, len(input.Sources))
	for _, src := range input.Sources {
		doc, err := src.Spec.resolve(ctx)
		if err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		sources = append(sources, merger.Source{
			Name:     src.Name,
			URL:      src.URL,
			Document: doc,
			Enabled:  true,
		})
	}

	result, err := merger.MergeWithOptions(
		merger.WithSources(sources...),
		merger.WithGrouping(grouping),
		merger.WithProxyMode(input.ProxyMode),
		merger.WithProxyPathPrefix(prefix),
		merger.WithValidation(validate),
	)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	title := input.Title
	if title == "" {
		title = merger.DefaultTitle
	}
	version := input.Version
	if version == "" {
		version = merger.DefaultVersion
	}
	if err := merger.UpdateMetadata(result.Document, title, input.Description, version); err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	data, err := yaml.Marshal(result.Document)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	return nil, mergeOutput{
		Merged:         string(data),
		SourceCount:    result.SourceCount,
		CollisionCount: result.CollisionCount,
		Warnings:       result.Warnings,
	}, nil
}
