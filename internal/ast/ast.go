package ast

// Type represents an atomic type in the emitted procedure language
type Type string

const (
	TypeInt  Type = "Int"
	TypeBool Type = "Bool"
	TypeRef  Type = "Ref"
	TypePerm Type = "Perm"
)

// Expr represents an expression in the emitted procedure language.
// Conditions attached to branches and invariants are expressions.
type Expr interface {
	isExpr()
	String() string
}

// RawExpr is an opaque expression carried through emission verbatim.
// Branch conditions and block invariants supplied by the encoding layer
// are raw expressions; this component never inspects them.
type RawExpr struct {
	Text string
}

func (RawExpr) isExpr() {}

func (e RawExpr) String() string {
	return e.Text
}

// BoolLit is a boolean literal expression
type BoolLit struct {
	Value bool
}

func (BoolLit) isExpr() {}

func (e BoolLit) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// FalseLit returns the literal false expression
func FalseLit() Expr {
	return BoolLit{Value: false}
}

// Declaration represents a scoped declaration inside a compound statement.
// Local variables and labels are declarable.
type Declaration interface {
	isDeclaration()
}

// LocalVarDecl declares a local variable, formal argument, or formal return
type LocalVarDecl struct {
	Name string
	Type Type
}

func (LocalVarDecl) isDeclaration() {}

// LabelDecl declares a label so it is resolvable as a jump target
// regardless of where its marker statement appears
type LabelDecl struct {
	Name string
}

func (LabelDecl) isDeclaration() {}

// Stmt represents a statement in the emitted procedure language
type Stmt interface {
	isStmt()
}

// RawStmt is an opaque body statement carried through emission verbatim
type RawStmt struct {
	Text string
}

func (*RawStmt) isStmt() {}

// Label is a statement-level jump target marker carrying the invariant
// annotations attached to it
type Label struct {
	Name string
	Invs []Expr
}

func (*Label) isStmt() {}

// Goto transfers control to the statement marked by the named label
type Goto struct {
	Target string
}

func (*Goto) isStmt() {}

// Assert checks a condition at runtime
type Assert struct {
	Cond Expr
}

func (*Assert) isStmt() {}

// If is a two-branch conditional statement
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*If) isStmt() {}

// Seqn is a compound statement: a sequence of statements plus the
// declarations scoped to it
type Seqn struct {
	Stmts []Stmt
	Decls []Declaration
}

func (*Seqn) isStmt() {}

// Skip returns an empty compound statement
func Skip() *Seqn {
	return &Seqn{}
}

// IsEmpty returns true if the compound statement has no statements
// and no declarations
func (s *Seqn) IsEmpty() bool {
	return s != nil && len(s.Stmts) == 0 && len(s.Decls) == 0
}

// Method is a procedure declaration wrapping a body with its formal
// arguments and formal returns
type Method struct {
	Name          string
	FormalArgs    []LocalVarDecl
	FormalReturns []LocalVarDecl
	Body          *Seqn
}

// LabelDeclCount returns the number of label declarations in the method body
func (m *Method) LabelDeclCount() int {
	if m.Body == nil {
		return 0
	}
	count := 0
	for _, decl := range m.Body.Decls {
		if _, ok := decl.(LabelDecl); ok {
			count++
		}
	}
	return count
}

// LocalDeclCount returns the number of local variable declarations in the
// method body
func (m *Method) LocalDeclCount() int {
	if m.Body == nil {
		return 0
	}
	count := 0
	for _, decl := range m.Body.Decls {
		if _, ok := decl.(LocalVarDecl); ok {
			count++
		}
	}
	return count
}
