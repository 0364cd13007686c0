// Package stats implements the interpreter's optional execution statistics
// (§4.6): count of executed instructions, the most-frequently-executed
// instruction's declared order, and the high-water mark of initialized
// variables.
package stats

import (
	"io"
	"sort"
	"strconv"
	"strings"
)

// Metric names one of the three statistics the CLI can request.
type Metric string

const (
	Insts Metric = "insts"
	Vars  Metric = "vars"
	Hot   Metric = "hot"
)

// Collector accumulates statistics over a single program execution and
// renders them, one metric per line, in the order the caller requested them
// (the CLI's `--insts`/`--vars`/`--hot` flags, in the order given on the
// command line).
type Collector struct {
	order []Metric

	insts int
	hot   map[int]int
	vars  int
}

// New returns a Collector that will report the given metrics, in order, when
// Flush is called.
func New(order []Metric) *Collector {
	return &Collector{order: order, hot: make(map[int]int)}
}

// Observe records one executed instruction: its declared order (for `hot`)
// and the current count of initialized variables (for `vars`'s high-water
// mark). excluded must be true for LABEL, DPRINT and BREAK, which are not
// counted at all (§4.6).
func (c *Collector) Observe(order int, excluded bool, initializedVars int) {
	if excluded {
		return
	}
	c.insts++
	c.hot[order]++
	if initializedVars > c.vars {
		c.vars = initializedVars
	}
}

// ObserveExit records a successful EXIT. The reference implementation's
// Exit.exec bumps the instruction counter directly and never reaches
// Stats.countIn (the process exits first), so EXIT counts toward insts but
// never toward hot or vars.
func (c *Collector) ObserveExit() {
	c.insts++
}

// hottest returns the declared order with the highest execution count,
// breaking ties in favor of the lowest order.
func (c *Collector) hottest() int {
	orders := make([]int, 0, len(c.hot))
	for o := range c.hot {
		orders = append(orders, o)
	}
	sort.Ints(orders)

	best, bestCount := 0, -1
	for _, o := range orders {
		if c.hot[o] > bestCount {
			best, bestCount = o, c.hot[o]
		}
	}
	return best
}

// Flush writes the requested metrics to w, one per line, in the order given
// to New.
func (c *Collector) Flush(w io.Writer) error {
	var b strings.Builder
	for _, m := range c.order {
		switch m {
		case Insts:
			b.WriteString(strconv.Itoa(c.insts))
		case Hot:
			b.WriteString(strconv.Itoa(c.hottest()))
		case Vars:
			b.WriteString(strconv.Itoa(c.vars))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
