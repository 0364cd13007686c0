package program

import "github.com/ipp22/ippvm/lang/value"

// Arg is one argument of an Instruction. Exactly one of its fields is
// meaningful, selected by Kind (which must match the corresponding entry of
// the owning Opcode's profile).
type Arg struct {
	Kind ArgKind

	Var   VarRef        // Kind == KindVar
	Symb  Symb          // Kind == KindSymb
	Label string        // Kind == KindLabel
	Type  value.TypeTag // Kind == KindType
}

// Instruction is one parsed, validated IPPcode22 instruction: its declared
// order, its opcode, and its arguments in declaration order.
type Instruction struct {
	Order int
	Op    Opcode
	Args  []Arg
}

// No terminating sentinel instruction (§3, "Terminating sentinel") is
// appended to the vector: the execution loop's termination check is a single
// uniform comparison against len(vector), so the machine treats reaching an
// index equal to the vector length as termination.
