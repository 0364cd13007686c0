package loader

import (
	"golang.org/x/exp/slices"

	"github.com/ipp22/ippvm/lang/program"
)

// sortByOrder re-expresses the decoded document as the executable vector,
// keyed by each instruction's declared order (§4.5).
func sortByOrder(instrs []program.Instruction) {
	slices.SortFunc(instrs, func(a, b program.Instruction) int {
		return a.Order - b.Order
	})
}
