package cfg

import (
	"fmt"

	"github.com/verikit/cfglower/domain"
	"github.com/verikit/cfglower/internal/ast"
)

// Lower flattens the graph into a single structured statement sequence and
// consumes the builder: after a successful call the method must not be used
// again.
//
// Blocks are emitted in creation order. Each block becomes a compound
// statement holding its label marker (with invariants), its body, and the
// translated successor, and contributes one label declaration. A trailing
// terminal label guarantees Return successors always have a valid target.
// Lowering is a pure function of the graph's final state.
func (m *Method) Lower() (*ast.Method, error) {
	if m.consumed {
		return nil, domain.NewGraphConsumedError(m.name)
	}
	m.consumed = true

	stmts := make([]ast.Stmt, 0, len(m.blocks)+1)
	decls := make([]ast.Declaration, 0, len(m.locals)+len(m.blocks)+1)

	for _, local := range m.locals {
		decls = append(decls, local)
	}

	for i, block := range m.blocks {
		blockStmt, err := m.blockToStmt(block, i)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, blockStmt)
		decls = append(decls, ast.LabelDecl{Name: m.labels[i]})
	}

	stmts = append(stmts, &ast.Label{Name: ReturnLabel})
	decls = append(decls, ast.LabelDecl{Name: ReturnLabel})

	return &ast.Method{
		Name:          m.name,
		FormalArgs:    m.formalArgs,
		FormalReturns: m.formalReturns,
		Body: &ast.Seqn{
			Stmts: stmts,
			Decls: decls,
		},
	}, nil
}

// blockToStmt emits one block as label marker, body, and translated
// successor
func (m *Method) blockToStmt(block *basicBlock, index int) (ast.Stmt, error) {
	successorStmt, err := m.successorToStmt(block.successor)
	if err != nil {
		return nil, err
	}
	return &ast.Seqn{
		Stmts: []ast.Stmt{
			&ast.Label{Name: m.labels[index], Invs: block.invs},
			block.stmt,
			successorStmt,
		},
	}, nil
}

// successorToStmt translates a successor into jump statements. Every
// variant of the closed set is handled here; an unknown variant is an
// internal invariant violation, never a recoverable condition.
func (m *Method) successorToStmt(successor Successor) (ast.Stmt, error) {
	switch s := successor.(type) {
	case Unreachable:
		// Trap: if this is dynamically reached, something upstream
		// produced an unsound graph.
		return &ast.Assert{Cond: ast.FalseLit()}, nil

	case Return:
		return &ast.Goto{Target: ReturnLabel}, nil

	case Goto:
		return &ast.Goto{Target: m.labels[s.Target.position]}, nil

	case GotoIf:
		return &ast.If{
			Cond: s.Cond,
			Then: &ast.Goto{Target: m.labels[s.Then.position]},
			Else: &ast.Goto{Target: m.labels[s.Else.position]},
		}, nil

	case GotoSwitch:
		// First true condition wins: each arm is an independent one-armed
		// conditional that jumps away, and the trailing goto only runs if
		// no arm fired.
		stmts := make([]ast.Stmt, 0, len(s.Cases)+1)
		for _, c := range s.Cases {
			stmts = append(stmts, &ast.If{
				Cond: c.Cond,
				Then: &ast.Goto{Target: m.labels[c.Target.position]},
				Else: ast.Skip(),
			})
		}
		stmts = append(stmts, &ast.Goto{Target: m.labels[s.Default.position]})
		return &ast.Seqn{Stmts: stmts}, nil

	default:
		return nil, domain.NewDomainError(domain.ErrCodeInvalidInput,
			fmt.Sprintf("unhandled successor variant %T", successor), nil)
	}
}
