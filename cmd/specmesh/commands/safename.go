package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/invoxy/spec-mesh/internal/cliutil"
	"github.com/invoxy/spec-mesh/internal/naming"
)

// SafeNameFlags contains flags for the safe-name command
type SafeNameFlags struct {
	Fallback bool
}

// SetupSafeNameFlags creates and configures a FlagSet for the safe-name command.
func SetupSafeNameFlags() (*flag.FlagSet, *SafeNameFlags) {
	fs := flag.NewFlagSet("safe-name", flag.ContinueOnError)
	flags := &SafeNameFlags{}

	fs.BoolVar(&flags.Fallback, "fallback", false, "emit a generated name when sanitization leaves nothing")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: specmesh safe-name [flags] <name>\n\n")
		cliutil.Writef(fs.Output(), "Print the sanitized identifier used for a service name in proxy paths\n")
		cliutil.Writef(fs.Output(), "and collision suffixes.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  specmesh safe-name \"My Service! 2.0\"\n")
		cliutil.Writef(fs.Output(), "  specmesh safe-name --fallback \"!!!\"\n")
	}

	return fs, flags
}

// HandleSafeName executes the safe-name command
func HandleSafeName(args []string) error {
	fs, flags := SetupSafeNameFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("safe-name command requires exactly one name argument")
	}

	safe := naming.SafeName(fs.Arg(0))
	if safe == "" && flags.Fallback {
		safe = naming.FallbackName()
	}

	cliutil.Writef(os.Stdout, "%s\n", safe)
	return nil
}
