package commands

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	specmesh "github.com/invoxy/spec-mesh"
	"github.com/invoxy/spec-mesh/config"
	"github.com/invoxy/spec-mesh/fetcher"
	"github.com/invoxy/spec-mesh/internal/cliutil"
	"github.com/invoxy/spec-mesh/merger"
	"github.com/invoxy/spec-mesh/probe"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Config     string
	Output     string
	JSON       bool
	Quiet      bool
	Verbose    bool
	NoValidate bool
	NoProbe    bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Config, "c", "", "configuration file path (required)")
	fs.StringVar(&flags.Config, "config", "", "configuration file path (required)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.JSON, "json", false, "write the merged document as JSON instead of YAML")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages (for pipelining)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log each fetch to stderr")
	fs.BoolVar(&flags.NoValidate, "no-validate", false, "merge sources without the structural validation gate")
	fs.BoolVar(&flags.NoProbe, "no-probe", false, "skip the proxy reachability probe (inject direct server URLs)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specmesh merge [flags]\n\n")
		cliutil.Writef(fs.Output(), "Fetch every configured service schema and merge them into one OpenAPI document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  specmesh merge -c mesh.yaml -o merged.yaml\n")
		cliutil.Writef(fs.Output(), "  specmesh merge -c mesh.yaml --json -o merged.json\n")
		cliutil.Writef(fs.Output(), "  specmesh merge -c mesh.yaml -q > merged.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Unreachable sources are reported and skipped; the merge continues\n")
		cliutil.Writef(fs.Output(), "  - Proxy-mode server URLs are used when the configured proxy answers a TCP probe\n")
		cliutil.Writef(fs.Output(), "  - When -o is specified, file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Config == "" {
		fs.Usage()
		return fmt.Errorf("configuration file is required (use -c or --config)")
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("merge command takes no positional arguments")
	}

	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := cliutil.ValidateOutputPath(flags.Output, []string{flags.Config}); err != nil {
			return err
		}
		if err := cliutil.RejectSymlinkOutput(flags.Output); err != nil {
			return err
		}
	}

	ctx := context.Background()
	startTime := time.Now()

	f := fetcher.New()
	if flags.Verbose && !flags.Quiet {
		f.Logger = fetcher.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sources, sourceErrs := f.FetchAll(ctx, cfg.Sources)
	for _, srcErr := range sourceErrs {
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Warning: skipping %s\n", srcErr.Error())
		}
	}
	if len(sources) == 0 && len(sourceErrs) > 0 {
		return fmt.Errorf("no sources could be fetched (%d failed)", len(sourceErrs))
	}

	proxyMode := false
	if cfg.Proxy.Enabled && !flags.NoProbe {
		proxyMode = probe.New(cfg.Proxy.Address).Available(ctx)
	}

	result, err := merger.MergeWithOptions(
		merger.WithSources(sources...),
		merger.WithGrouping(cfg.Settings.GroupingEnabled()),
		merger.WithProxyMode(proxyMode),
		merger.WithProxyPathPrefix(cfg.Proxy.PathPrefix),
		merger.WithValidation(!flags.NoValidate),
	)
	if err != nil {
		return fmt.Errorf("merging sources: %w", err)
	}

	title := cfg.Settings.Title
	if title == "" {
		title = merger.DefaultTitle
	}
	version := cfg.Settings.Version
	if version == "" {
		version = merger.DefaultVersion
	}
	if err := merger.UpdateMetadata(result.Document, title, cfg.Settings.Description, version); err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}

	totalTime := time.Since(startTime)

	if flags.Output != "" {
		if err := merger.WriteResult(result, flags.Output, flags.JSON); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	} else {
		data, err := marshalMerged(result, flags.JSON)
		if err != nil {
			return fmt.Errorf("marshaling merged document: %w", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing merged document to stdout: %w", err)
		}
	}

	if flags.Quiet {
		return nil
	}

	cliutil.Writef(os.Stderr, "specmesh version: %s\n", specmesh.Version())
	cliutil.Writef(os.Stderr, "Sources merged: %d\n", result.SourceCount)
	if len(sourceErrs) > 0 {
		cliutil.Writef(os.Stderr, "Sources failed: %d\n", len(sourceErrs))
	}
	cliutil.Writef(os.Stderr, "Proxy mode: %v\n", proxyMode)
	if flags.Output != "" {
		cliutil.Writef(os.Stderr, "Output: %s\n", flags.Output)
	}
	cliutil.Writef(os.Stderr, "Total Time: %v\n", totalTime)

	if result.CollisionCount > 0 {
		cliutil.Writef(os.Stderr, "Collisions resolved: %d\n", result.CollisionCount)
	}
	if len(result.Warnings) > 0 {
		cliutil.Writef(os.Stderr, "\nWarnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			cliutil.Writef(os.Stderr, "  - %s\n", warning)
		}
	}

	cliutil.Writef(os.Stderr, "\n✓ Merge completed successfully!\n")
	return nil
}

// marshalMerged marshals the merged document for stdout output.
func marshalMerged(result *merger.MergeResult, asJSON bool) ([]byte, error) {
	if asJSON {
		return json.MarshalIndent(result.Document, "", "  ")
	}
	return yaml.Marshal(result.Document)
}
