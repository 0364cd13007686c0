// Package machine implements the IPPcode22 execution loop: a single
// sequential pass over the loaded instruction vector, dispatching each
// instruction by its static Opcode (program.Opcode) against the frame model,
// the call and data stacks, and the label table (§4.4, §5).
//
// This replaces the reference implementation's per-opcode class hierarchy,
// each dispatched through Python's dynamic method lookup, with a single
// switch keyed by Opcode — the same shape as the teacher's own bytecode
// dispatch loop (the original lang/machine/machine.go, grounded on
// starlark-go), generalized from a stack-machine-with-locals to
// IPPcode22's frame-and-stack model.
package machine

import (
	"context"
	"io"

	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/frame"
	"github.com/ipp22/ippvm/lang/label"
	"github.com/ipp22/ippvm/lang/program"
	"github.com/ipp22/ippvm/lang/value"
)

// state is the machine's mutable runtime state for one Run: the frame model,
// the data and call stacks. It exists only to keep dispatch's parameter list
// manageable; it carries no behavior of its own.
type state struct {
	fs        *frame.Set
	dataStack []value.Value
	callStack []int
}

// Run executes vec to completion: either by running off its end (exit code
// 0) or by a successful EXIT (exit code given by the instruction). A runtime
// error aborts execution and is returned as an *ippvm.Error; its Code is the
// process's intended exit status.
func (m *Machine) Run(ctx context.Context, vec []program.Instruction, labels *label.Table) (int, error) {
	m.init()

	st := &state{fs: frame.New()}

	pc := 0
	for pc < len(vec) {
		select {
		case <-ctx.Done():
			return 0, ippvm.Internalf("execution cancelled: %s", ctx.Err())
		default:
		}

		m.steps++
		if m.steps > m.maxSteps {
			return 0, ippvm.Internalf("exceeded maximum instruction budget")
		}

		instr := vec[pc]

		next, exitCode, exited, err := m.dispatch(instr, pc, st, labels)
		if err != nil {
			return 0, err
		}
		if exited {
			if m.Stats != nil {
				m.Stats.ObserveExit()
			}
			if err := m.flushStats(); err != nil {
				return 0, err
			}
			return exitCode, nil
		}
		if m.Stats != nil {
			m.Stats.Observe(instr.Order, instr.Op.ExcludedFromStats(), st.fs.CountInitialized())
		}
		pc = next
	}

	if err := m.flushStats(); err != nil {
		return 0, err
	}
	return 0, nil
}

func (m *Machine) flushStats() error {
	if m.Stats == nil {
		return nil
	}
	out := m.StatsOutput
	if out == nil {
		out = io.Discard
	}
	if err := m.Stats.Flush(out); err != nil {
		return ippvm.OutputFilef("%s", err)
	}
	return nil
}

// dispatch executes one instruction and returns the next program counter
// (pc+1, or a jump target), along with EXIT's outcome if this instruction
// was EXIT.
func (m *Machine) dispatch(instr program.Instruction, pc int, st *state, labels *label.Table) (next, exitCode int, exited bool, err error) {
	args := instr.Args
	fs := st.fs

	switch instr.Op {
	case program.MOVE:
		v, err := args[1].Symb.Resolve(fs)
		if err != nil {
			return 0, 0, false, err
		}
		return pc + 1, 0, false, fs.Update(args[0].Var.Kind, args[0].Var.Name, v)

	case program.CREATEFRAME:
		fs.CreateFrame()
		return pc + 1, 0, false, nil

	case program.PUSHFRAME:
		return pc + 1, 0, false, fs.PushFrame()

	case program.POPFRAME:
		return pc + 1, 0, false, fs.PopFrame()

	case program.DEFVAR:
		return pc + 1, 0, false, fs.Define(args[0].Var.Kind, args[0].Var.Name)

	case program.CALL:
		idx, err := labels.Resolve(args[0].Label)
		if err != nil {
			return 0, 0, false, err
		}
		st.callStack = append(st.callStack, pc+1)
		return idx, 0, false, nil

	case program.RETURN:
		if len(st.callStack) == 0 {
			return 0, 0, false, ippvm.MissingValuef("RETURN: call stack is empty")
		}
		n := len(st.callStack) - 1
		target := st.callStack[n]
		st.callStack = st.callStack[:n]
		return target, 0, false, nil

	case program.PUSHS:
		v, err := args[0].Symb.Resolve(fs)
		if err != nil {
			return 0, 0, false, err
		}
		st.dataStack = append(st.dataStack, v)
		return pc + 1, 0, false, nil

	case program.POPS:
		if len(st.dataStack) == 0 {
			return 0, 0, false, ippvm.MissingValuef("POPS: data stack is empty")
		}
		n := len(st.dataStack) - 1
		v := st.dataStack[n]
		st.dataStack = st.dataStack[:n]
		return pc + 1, 0, false, fs.Update(args[0].Var.Kind, args[0].Var.Name, v)

	case program.ADD, program.SUB, program.MUL, program.IDIV, program.DIV:
		return pc + 1, 0, false, m.binaryArith(instr, fs)

	case program.LT, program.GT:
		return pc + 1, 0, false, m.comparison(instr, fs, instr.Op == program.LT)

	case program.EQ:
		return pc + 1, 0, false, m.eqInstr(instr, fs)

	case program.AND, program.OR:
		return pc + 1, 0, false, m.logic(instr, fs)

	case program.NOT:
		return pc + 1, 0, false, m.not(instr, fs)

	case program.INT2CHAR:
		return pc + 1, 0, false, m.int2char(instr, fs)

	case program.STRI2INT:
		return pc + 1, 0, false, m.stri2int(instr, fs)

	case program.INT2FLOAT:
		return pc + 1, 0, false, m.int2float(instr, fs)

	case program.FLOAT2INT:
		return pc + 1, 0, false, m.float2int(instr, fs)

	case program.READ:
		return pc + 1, 0, false, m.read(instr, fs)

	case program.WRITE:
		return pc + 1, 0, false, m.write(instr, fs)

	case program.CONCAT:
		return pc + 1, 0, false, m.concat(instr, fs)

	case program.STRLEN:
		return pc + 1, 0, false, m.strlen(instr, fs)

	case program.GETCHAR:
		return pc + 1, 0, false, m.getchar(instr, fs)

	case program.SETCHAR:
		return pc + 1, 0, false, m.setchar(instr, fs)

	case program.TYPE:
		return pc + 1, 0, false, m.typeOf(instr, fs)

	case program.LABEL:
		return pc + 1, 0, false, nil

	case program.JUMP:
		idx, err := labels.Resolve(args[0].Label)
		if err != nil {
			return 0, 0, false, err
		}
		return idx, 0, false, nil

	case program.JUMPIFEQ, program.JUMPIFNEQ:
		idx, jump, err := m.jumpIf(instr, fs, labels, instr.Op == program.JUMPIFEQ)
		if err != nil {
			return 0, 0, false, err
		}
		if jump {
			return idx, 0, false, nil
		}
		return pc + 1, 0, false, nil

	case program.EXIT:
		code, err := m.exit(instr, fs)
		if err != nil {
			return 0, 0, false, err
		}
		return 0, code, true, nil

	case program.DPRINT, program.BREAK:
		return pc + 1, 0, false, nil

	default:
		return 0, 0, false, ippvm.Internalf("unimplemented opcode %s", instr.Op)
	}
}
