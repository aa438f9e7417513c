package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	specmesh "github.com/invoxy/spec-mesh"
	"github.com/invoxy/spec-mesh/internal/cliutil"
	"github.com/invoxy/spec-mesh/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format string
	Quiet  bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages, exit status carries the result")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages, exit status carries the result")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specmesh validate [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Check that a document has the minimal OpenAPI structure required for merging.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  specmesh validate openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  specmesh validate https://users.internal/openapi.json\n")
		cliutil.Writef(fs.Output(), "  specmesh merge -c mesh.yaml -q | specmesh validate -q -\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Document is mergeable\n")
		cliutil.Writef(fs.Output(), "  1    Document failed validation\n")
	}

	return fs, flags
}

// validateReport is the structured output shape for json/yaml formats.
type validateReport struct {
	Source string   `json:"source" yaml:"source"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Issues []string `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or URL")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)

	startTime := time.Now()
	doc, err := LoadDocument(context.Background(), specPath)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	result := validator.Validate(doc)
	totalTime := time.Since(startTime)

	if flags.Format != FormatText {
		report := validateReport{
			Source: cliutil.FormatSourcePath(specPath),
			Valid:  result.Valid,
		}
		for _, issue := range result.Issues {
			report.Issues = append(report.Issues, issue.String())
		}
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "specmesh version: %s\n", specmesh.Version())
		cliutil.Writef(os.Stderr, "Document: %s\n", cliutil.FormatSourcePath(specPath))
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)
	}

	if len(result.Issues) > 0 && !flags.Quiet {
		cliutil.Writef(os.Stderr, "Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(os.Stderr, "  %s\n", issue.String())
		}
		cliutil.Writef(os.Stderr, "\n")
	}

	if result.Valid {
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "✓ Document is mergeable\n")
		}
		return nil
	}

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "✗ Validation failed: %d issue(s)\n", len(result.Issues))
	}
	os.Exit(1)
	return nil
}
