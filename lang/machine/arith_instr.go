package machine

import (
	"github.com/ipp22/ippvm/lang/frame"
	"github.com/ipp22/ippvm/lang/program"
	"github.com/ipp22/ippvm/lang/value"
)

func (m *Machine) binaryArith(instr program.Instruction, fs *frame.Set) error {
	args := instr.Args
	x, err := args[1].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	y, err := args[2].Symb.Resolve(fs)
	if err != nil {
		return err
	}

	var opCh rune
	switch instr.Op {
	case program.ADD:
		opCh = '+'
	case program.SUB:
		opCh = '-'
	case program.MUL:
		opCh = '*'
	case program.IDIV:
		opCh = 'i'
	case program.DIV:
		opCh = 'd'
	}

	z, err := arith(opCh, x, y)
	if err != nil {
		return err
	}
	return fs.Update(args[0].Var.Kind, args[0].Var.Name, z)
}

func (m *Machine) comparison(instr program.Instruction, fs *frame.Set, less bool) error {
	args := instr.Args
	x, err := args[1].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	y, err := args[2].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	b, err := order(less, x, y)
	if err != nil {
		return err
	}
	return fs.Update(args[0].Var.Kind, args[0].Var.Name, b)
}

func (m *Machine) eqInstr(instr program.Instruction, fs *frame.Set) error {
	args := instr.Args
	x, err := args[1].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	y, err := args[2].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	b, err := equal(x, y)
	if err != nil {
		return err
	}
	return fs.Update(args[0].Var.Kind, args[0].Var.Name, b)
}

func (m *Machine) logic(instr program.Instruction, fs *frame.Set) error {
	args := instr.Args
	x, err := args[1].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	y, err := args[2].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	a, err := asBool(x)
	if err != nil {
		return err
	}
	b, err := asBool(y)
	if err != nil {
		return err
	}

	var result bool
	if instr.Op == program.AND {
		result = bool(a) && bool(b)
	} else {
		result = bool(a) || bool(b)
	}
	return fs.Update(args[0].Var.Kind, args[0].Var.Name, value.Bool(result))
}

func (m *Machine) not(instr program.Instruction, fs *frame.Set) error {
	args := instr.Args
	x, err := args[1].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	a, err := asBool(x)
	if err != nil {
		return err
	}
	return fs.Update(args[0].Var.Kind, args[0].Var.Name, value.Bool(!bool(a)))
}
