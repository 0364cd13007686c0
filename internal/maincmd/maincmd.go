// Package maincmd wires the interpreter's command-line surface (§6) onto
// github.com/mna/mainer's Cmd/Stdio/ExitCode convention, the same shape the
// teacher uses for its own compiler-tool entrypoint (the original Cmd struct
// and mainer.Parser usage), generalized from a multi-subcommand compiler CLI
// to this interpreter's flat set of flags.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/ipp22/ippvm/internal/ippvm"
)

const binName = "ippvm"

var longUsage = fmt.Sprintf(`usage: %s [--source=FILE] [--input=FILE] [--insts] [--vars] [--hot] [--stats=FILE]
       %[1]s -h|--help

Interpreter for the IPPcode22 intermediate language.

Valid flag options are:
       -h --help                 Show this help and exit.
       --source=FILE             XML source of the program. If omitted, read
                                 from standard input.
       --input=FILE              Input data for READ. If omitted, read from
                                 standard input.
       --insts                   Report the number of executed instructions.
       --vars                    Report the maximum number of initialized
                                 variables observed.
       --hot                     Report the order of the most frequently
                                 executed instruction.
       --stats=FILE              Statistics output file. Required if any of
                                 --insts, --vars or --hot is given.
`, binName)

// Cmd holds the parsed command-line flags, plus the bookkeeping that
// mainer's struct-tag binding alone cannot express: the raw-argument scan
// recording the relative order of --insts/--vars/--hot (§6 requires their
// output to follow command-line order).
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help   bool   `flag:"h,help"`
	Source string `flag:"source"`
	Input  string `flag:"input"`
	Insts  bool   `flag:"insts"`
	Vars   bool   `flag:"vars"`
	Hot    bool   `flag:"hot"`
	Stats  string `flag:"stats"`

	args      []string
	flags     map[string]bool
	statOrder []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

// Validate enforces the flag-combination rules from §6 that a flat
// flag-to-field binding cannot express on its own.
func (c *Cmd) Validate() error {
	if c.Help {
		if len(c.flags) > 1 || len(c.args) > 0 {
			return fmt.Errorf("--help must be the only argument")
		}
		return nil
	}

	if len(c.args) > 0 {
		return fmt.Errorf("unexpected argument: %s", c.args[0])
	}

	if c.Source == "" && c.Input == "" {
		return fmt.Errorf("at least one of --source or --input must be given")
	}

	if (c.Insts || c.Vars || c.Hot) && c.Stats == "" {
		return fmt.Errorf("--stats is required when --insts, --vars or --hot is given")
	}

	return nil
}

// Main is the process entrypoint: parse flags, validate, and run the
// interpreter. Every error is written to stderr as `ERROR - <message>` and
// translated to the matching exit code (§6): an *ippvm.Error exits with its
// own Code, any other error with the internal-error code (99).
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	var scanArgs []string
	if len(args) > 1 {
		scanArgs = args[1:]
	}
	order, err := scanStatOrder(scanArgs)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "ERROR - %s\n", err)
		return mainer.ExitCode(ippvm.ParameterErr)
	}
	c.statOrder = order

	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: "IPPVM_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "ERROR - %s\n", err)
		return mainer.ExitCode(ippvm.ParameterErr)
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.ExitCode(ippvm.Success)
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	code, err := c.run(ctx, stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "ERROR - %s\n", err)
		if ierr, ok := err.(*ippvm.Error); ok {
			return mainer.ExitCode(ierr.Code)
		}
		return mainer.ExitCode(ippvm.InternalErr)
	}
	return mainer.ExitCode(code)
}
