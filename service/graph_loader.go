package service

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/verikit/cfglower/internal/ast"
	"github.com/verikit/cfglower/internal/cfg"
)

// GraphDocument is the YAML description of one procedure graph
type GraphDocument struct {
	Name    string      `yaml:"name"`
	Args    []VarSpec   `yaml:"args"`
	Returns []VarSpec   `yaml:"returns"`
	Locals  []VarSpec   `yaml:"locals"`
	Blocks  []BlockSpec `yaml:"blocks"`
}

// VarSpec describes a formal argument, formal return, or local variable
type VarSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// BlockSpec describes one basic block. Successor targets reference other
// blocks by label, so forward references are allowed.
type BlockSpec struct {
	Label      string         `yaml:"label"`
	Invariants []string       `yaml:"invariants"`
	Body       []string       `yaml:"body"`
	Successor  *SuccessorSpec `yaml:"successor"`
}

// SuccessorSpec describes how control leaves a block. Kind selects the
// variant; the other fields apply per kind.
type SuccessorSpec struct {
	Kind    string     `yaml:"kind"`
	Target  string     `yaml:"target"`
	Cond    string     `yaml:"cond"`
	Then    string     `yaml:"then"`
	Else    string     `yaml:"else"`
	Cases   []CaseSpec `yaml:"cases"`
	Default string     `yaml:"default"`
}

// CaseSpec is one guarded arm of a switch successor
type CaseSpec struct {
	Cond   string `yaml:"cond"`
	Target string `yaml:"target"`
}

// Successor kinds accepted in graph documents
const (
	SuccessorKindUnreachable = "unreachable"
	SuccessorKindReturn      = "return"
	SuccessorKindGoto        = "goto"
	SuccessorKindGotoIf      = "goto_if"
	SuccessorKindSwitch      = "switch"
)

// GraphLoader parses graph description documents and replays them through
// the builder API
type GraphLoader struct{}

// NewGraphLoader creates a new graph loader
func NewGraphLoader() *GraphLoader {
	return &GraphLoader{}
}

// Parse decodes a YAML graph document
func (l *GraphLoader) Parse(content []byte) (*GraphDocument, error) {
	var doc GraphDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("graph document is missing a procedure name")
	}
	return &doc, nil
}

// BuildMethod constructs a CFG builder from a parsed document. Blocks are
// added in document order, then successors are wired in a second pass so
// targets may reference blocks declared later.
func (l *GraphLoader) BuildMethod(doc *GraphDocument) (*cfg.Method, error) {
	args, err := varDecls(doc.Args)
	if err != nil {
		return nil, err
	}
	returns, err := varDecls(doc.Returns)
	if err != nil {
		return nil, err
	}
	locals, err := varDecls(doc.Locals)
	if err != nil {
		return nil, err
	}

	method := cfg.NewMethod(doc.Name, args, returns, locals)
	indices := make(map[string]cfg.BlockIndex, len(doc.Blocks))

	for _, spec := range doc.Blocks {
		index, err := method.AddBlock(spec.Label, invariants(spec.Invariants), body(spec.Body))
		if err != nil {
			return nil, err
		}
		indices[spec.Label] = index
	}

	for _, spec := range doc.Blocks {
		if spec.Successor == nil {
			continue
		}
		successor, err := l.buildSuccessor(spec.Successor, indices)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", spec.Label, err)
		}
		if err := method.SetSuccessor(indices[spec.Label], successor); err != nil {
			return nil, err
		}
	}

	return method, nil
}

func (l *GraphLoader) buildSuccessor(spec *SuccessorSpec, indices map[string]cfg.BlockIndex) (cfg.Successor, error) {
	switch spec.Kind {
	case SuccessorKindUnreachable:
		return cfg.Unreachable{}, nil

	case SuccessorKindReturn:
		return cfg.Return{}, nil

	case SuccessorKindGoto:
		target, err := resolve(indices, spec.Target)
		if err != nil {
			return nil, err
		}
		return cfg.Goto{Target: target}, nil

	case SuccessorKindGotoIf:
		if spec.Cond == "" {
			return nil, fmt.Errorf("goto_if successor requires a cond")
		}
		thenTarget, err := resolve(indices, spec.Then)
		if err != nil {
			return nil, err
		}
		elseTarget, err := resolve(indices, spec.Else)
		if err != nil {
			return nil, err
		}
		return cfg.GotoIf{
			Cond: ast.RawExpr{Text: spec.Cond},
			Then: thenTarget,
			Else: elseTarget,
		}, nil

	case SuccessorKindSwitch:
		cases := make([]cfg.SwitchCase, 0, len(spec.Cases))
		for i, c := range spec.Cases {
			if c.Cond == "" {
				return nil, fmt.Errorf("switch case %d requires a cond", i)
			}
			target, err := resolve(indices, c.Target)
			if err != nil {
				return nil, err
			}
			cases = append(cases, cfg.SwitchCase{
				Cond:   ast.RawExpr{Text: c.Cond},
				Target: target,
			})
		}
		defaultTarget, err := resolve(indices, spec.Default)
		if err != nil {
			return nil, err
		}
		return cfg.GotoSwitch{Cases: cases, Default: defaultTarget}, nil

	default:
		return nil, fmt.Errorf("unknown successor kind: %q", spec.Kind)
	}
}

func resolve(indices map[string]cfg.BlockIndex, label string) (cfg.BlockIndex, error) {
	if label == "" {
		return cfg.BlockIndex{}, fmt.Errorf("successor is missing a target label")
	}
	index, ok := indices[label]
	if !ok {
		return cfg.BlockIndex{}, fmt.Errorf("successor targets unknown block %q", label)
	}
	return index, nil
}

func varDecls(specs []VarSpec) ([]ast.LocalVarDecl, error) {
	decls := make([]ast.LocalVarDecl, 0, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("variable declaration is missing a name")
		}
		if spec.Type == "" {
			return nil, fmt.Errorf("variable %q is missing a type", spec.Name)
		}
		decls = append(decls, ast.LocalVarDecl{Name: spec.Name, Type: ast.Type(spec.Type)})
	}
	return decls, nil
}

func invariants(texts []string) []ast.Expr {
	if len(texts) == 0 {
		return nil
	}
	invs := make([]ast.Expr, 0, len(texts))
	for _, text := range texts {
		invs = append(invs, ast.RawExpr{Text: text})
	}
	return invs
}

// body packages the body lines as a single statement: no lines is a skip,
// one line stays bare, more become a compound statement
func body(lines []string) ast.Stmt {
	switch len(lines) {
	case 0:
		return ast.Skip()
	case 1:
		return &ast.RawStmt{Text: lines[0]}
	default:
		stmts := make([]ast.Stmt, 0, len(lines))
		for _, line := range lines {
			stmts = append(stmts, &ast.RawStmt{Text: line})
		}
		return &ast.Seqn{Stmts: stmts}
	}
}
