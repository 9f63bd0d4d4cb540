package cfg

import (
	"github.com/verikit/cfglower/internal/ast"
)

// Successor describes how control leaves a basic block. The variant set is
// closed: the lowering translation handles every variant and fails loudly
// on anything else.
type Successor interface {
	isSuccessor()

	// targets returns every block index the successor references
	targets() []BlockIndex
}

// Unreachable marks a block that control never legitimately leaves.
// It lowers to a runtime-checked false assertion. Blocks default to this
// until a successor is explicitly wired.
type Unreachable struct{}

func (Unreachable) isSuccessor() {}

func (Unreachable) targets() []BlockIndex { return nil }

// Return transfers control to the procedure's single exit
type Return struct{}

func (Return) isSuccessor() {}

func (Return) targets() []BlockIndex { return nil }

// Goto is an unconditional jump to one other block
type Goto struct {
	Target BlockIndex
}

func (Goto) isSuccessor() {}

func (s Goto) targets() []BlockIndex { return []BlockIndex{s.Target} }

// GotoIf is a two-way branch
type GotoIf struct {
	Cond ast.Expr
	Then BlockIndex
	Else BlockIndex
}

func (GotoIf) isSuccessor() {}

func (s GotoIf) targets() []BlockIndex { return []BlockIndex{s.Then, s.Else} }

// SwitchCase is one guarded arm of a GotoSwitch
type SwitchCase struct {
	Cond   ast.Expr
	Target BlockIndex
}

// GotoSwitch is an ordered, first-match-wins multi-way branch with a
// mandatory default. Case conditions are tested in list order; they need
// not be exhaustive or mutually exclusive.
type GotoSwitch struct {
	Cases   []SwitchCase
	Default BlockIndex
}

func (GotoSwitch) isSuccessor() {}

func (s GotoSwitch) targets() []BlockIndex {
	indices := make([]BlockIndex, 0, len(s.Cases)+1)
	for _, c := range s.Cases {
		indices = append(indices, c.Target)
	}
	return append(indices, s.Default)
}
