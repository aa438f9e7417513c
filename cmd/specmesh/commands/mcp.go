package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/invoxy/spec-mesh/internal/cliutil"
	"github.com/invoxy/spec-mesh/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specmesh mcp\n\n")
		cliutil.Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "merge, validate, and safe_name tools.\n\n")
		cliutil.Writef(fs.Output(), "Defaults are configured through SPECMESH_* environment variables; see the\n")
		cliutil.Writef(fs.Output(), "server instructions reported to the client for the full list.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
