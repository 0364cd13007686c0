package machine

import (
	"io"
	"os"

	"github.com/ipp22/ippvm/internal/ioline"
	"github.com/ipp22/ippvm/lang/stats"
)

// LineReader supplies one line of program input at a time, fed to READ. A
// file-backed reader and a stdin-backed reader each implement it
// (internal/ioline).
type LineReader interface {
	// ReadLine returns the next line with its trailing newline stripped, and
	// ok == false once the input is exhausted.
	ReadLine() (line string, ok bool)
}

// Machine holds one execution's configuration and mutable runtime state:
// the standard I/O abstractions, the step budget, and the optional
// statistics collector. A zero Machine is usable; unset Stdout/Stderr/Input
// fall back to the process's own stdout/stderr/stdin.
type Machine struct {
	// Name is an optional name for the machine. The machine itself does not
	// read it.
	Name string

	// Stdout receives WRITE output. Stderr is kept alongside it, but no
	// instruction writes to it. If nil, os.Stdout and os.Stderr are used.
	Stdout io.Writer
	Stderr io.Writer

	// Input supplies lines for READ. If nil, stdin is read one line at a
	// time.
	Input LineReader

	// StatsOutput receives the flushed statistics report when Stats is
	// non-nil (§4.6). The CLI layer opens this from the `--stats=FILE` flag.
	StatsOutput io.Writer

	// MaxSteps bounds the number of instructions the machine will execute
	// before aborting with an internal error. A value <= 0 means no limit.
	MaxSteps int

	// Stats, if non-nil, is fed one observation per executed instruction and
	// flushed once the program terminates (§4.6). Nil disables statistics
	// collection entirely, matching a run with no `--insts`/`--vars`/`--hot`
	// flags on the command line.
	Stats *stats.Collector

	steps, maxSteps uint64
	stdout          io.Writer
	stderr          io.Writer
}

func (m *Machine) init() {
	if m.MaxSteps <= 0 {
		m.maxSteps-- // wraps to MaxUint64: effectively unlimited
	} else {
		m.maxSteps = uint64(m.MaxSteps)
	}
	if m.Stdout != nil {
		m.stdout = m.Stdout
	} else {
		m.stdout = os.Stdout
	}
	if m.Stderr != nil {
		m.stderr = m.Stderr
	} else {
		m.stderr = os.Stderr
	}
}

func (m *Machine) readLine() (string, bool) {
	if m.Input == nil {
		m.Input = ioline.NewStream(os.Stdin)
	}
	return m.Input.ReadLine()
}
