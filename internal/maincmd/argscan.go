package maincmd

import (
	"fmt"

	"github.com/ipp22/ippvm/lang/stats"
)

// scanStatOrder walks the raw command-line arguments (before mainer's
// struct-tag binding, which has no notion of argument order) and records the
// order --insts/--vars/--hot were given in, so the statistics report can
// follow it (§6). A repeated form is rejected here as a parameter error,
// since mainer's flag binding only tracks presence, not count.
func scanStatOrder(args []string) ([]string, error) {
	seen := make(map[string]bool, 3)
	var order []string
	for _, arg := range args {
		name := ""
		switch arg {
		case "--insts":
			name = "insts"
		case "--vars":
			name = "vars"
		case "--hot":
			name = "hot"
		default:
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicated flag: --%s", name)
		}
		seen[name] = true
		order = append(order, name)
	}
	return order, nil
}

// statMetrics converts the recorded flag order to stats.Metric values.
func statMetrics(order []string) []stats.Metric {
	out := make([]stats.Metric, len(order))
	for i, name := range order {
		out[i] = stats.Metric(name)
	}
	return out
}
