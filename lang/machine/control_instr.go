package machine

import (
	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/frame"
	"github.com/ipp22/ippvm/lang/label"
	"github.com/ipp22/ippvm/lang/program"
)

func (m *Machine) jumpIf(instr program.Instruction, fs *frame.Set, labels *label.Table, wantEqual bool) (idx int, jump bool, err error) {
	args := instr.Args
	x, err := args[1].Symb.Resolve(fs)
	if err != nil {
		return 0, false, err
	}
	y, err := args[2].Symb.Resolve(fs)
	if err != nil {
		return 0, false, err
	}
	eq, err := equal(x, y)
	if err != nil {
		return 0, false, err
	}
	if bool(eq) != wantEqual {
		return 0, false, nil
	}
	idx, err = labels.Resolve(args[0].Label)
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

func (m *Machine) exit(instr program.Instruction, fs *frame.Set) (int, error) {
	v, err := instr.Args[0].Symb.Resolve(fs)
	if err != nil {
		return 0, err
	}
	n, err := asInt(v)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 49 {
		return 0, ippvm.WrongValuef("EXIT: %d is outside the accepted range [0,49]", n)
	}
	return int(n), nil
}
