// Command specmesh merges multi-service OpenAPI documents into a single
// gateway document.
package main

import (
	"fmt"
	"os"

	specmesh "github.com/invoxy/spec-mesh"
	"github.com/invoxy/spec-mesh/cmd/specmesh/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("specmesh v%s\n", specmesh.Version())
	case "help", "-h", "--help":
		printUsage()
	case "merge":
		if err := commands.HandleMerge(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "safe-name":
		if err := commands.HandleSafeName(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("specmesh v%s - multi-service OpenAPI document merger\n\n", specmesh.Version())
	fmt.Println("Usage:")
	fmt.Println("  specmesh <command> [flags] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  merge       Fetch configured service schemas and merge them into one document")
	fmt.Println("  validate    Check that a document has the structure required for merging")
	fmt.Println("  safe-name   Print the sanitized identifier for a service name")
	fmt.Println("  mcp         Start an MCP server over stdio")
	fmt.Println("  version     Show version information")
	fmt.Println("  help        Show this help message")
	fmt.Println()
	fmt.Println("Use 'specmesh <command> -h' for command-specific help.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  specmesh merge -c mesh.yaml -o merged.yaml")
	fmt.Println("  specmesh validate https://users.internal/openapi.json")
	fmt.Println("  specmesh safe-name \"My Service! 2.0\"")
}
