package machine

import (
	"io"

	"github.com/ipp22/ippvm/internal/ippvm"
	"github.com/ipp22/ippvm/lang/frame"
	"github.com/ipp22/ippvm/lang/program"
	"github.com/ipp22/ippvm/lang/value"
)

// read consumes one logical line from the input collaborator. Input
// exhaustion (EOF on stdin, or an empty file-backed queue) yields an empty
// line rather than a distinguished sentinel, matching the reference
// implementation's ReadInput.getLine: the exhausted-input case and a
// genuinely blank input line are parsed identically (e.g. an expected Bool
// becomes False, not Nil, on either).
func (m *Machine) read(instr program.Instruction, fs *frame.Set) error {
	args := instr.Args
	line, _ := m.readLine()
	v := value.ParseUserInput(args[1].Type, line)
	return fs.Update(args[0].Var.Kind, args[0].Var.Name, v)
}

func (m *Machine) write(instr program.Instruction, fs *frame.Set) error {
	args := instr.Args
	v, err := args[0].Symb.Resolve(fs)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(m.stdout, v.String()); err != nil {
		return ippvm.Internalf("WRITE: %s", err)
	}
	return nil
}
