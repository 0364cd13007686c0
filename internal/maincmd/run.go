package maincmd

import (
	"context"
	"os"

	"github.com/mna/mainer"

	"github.com/ipp22/ippvm/internal/ioline"
	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/loader"
	"github.com/ipp22/ippvm/lang/machine"
	"github.com/ipp22/ippvm/lang/stats"
)

func (c *Cmd) run(ctx context.Context, stdio mainer.Stdio) (int, error) {
	sourceR := stdio.Stdin
	if c.Source != "" {
		f, err := os.Open(c.Source)
		if err != nil {
			return 0, ippvm.InputFilef("could not open source file: %s", err)
		}
		defer f.Close()
		sourceR = f
	}

	prog, err := loader.Load(sourceR)
	if err != nil {
		return 0, err
	}

	var input machine.LineReader
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return 0, ippvm.InputFilef("could not open input file: %s", err)
		}
		defer f.Close()
		q, err := ioline.NewQueue(f)
		if err != nil {
			return 0, ippvm.InputFilef("could not read input file: %s", err)
		}
		input = q
	} else {
		input = ioline.NewStream(stdio.Stdin)
	}

	m := &machine.Machine{
		Name:   binName,
		Stdout: stdio.Stdout,
		Stderr: stdio.Stderr,
		Input:  input,
	}

	if len(c.statOrder) > 0 {
		collector := stats.New(statMetrics(c.statOrder))
		out, err := os.Create(c.Stats)
		if err != nil {
			return 0, ippvm.OutputFilef("could not create statistics output file: %s", err)
		}
		defer out.Close()
		m.Stats = collector
		m.StatsOutput = out
	}

	return m.Run(ctx, prog.Instructions, prog.Labels)
}
