package ast

import (
	"fmt"
	"strings"
)

// PrintOptions controls the textual rendering of emitted procedures
type PrintOptions struct {
	// IndentWidth is the number of spaces per nesting level
	IndentWidth int

	// BlankLineBetweenBlocks inserts an empty line between the top-level
	// statements of a method body
	BlankLineBetweenBlocks bool
}

// DefaultPrintOptions returns the default rendering options
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		IndentWidth:            2,
		BlankLineBetweenBlocks: false,
	}
}

// printer renders AST nodes as procedure-language text
type printer struct {
	builder strings.Builder
	indent  string
}

// Format renders the method using the given options
func (m *Method) Format(opts PrintOptions) string {
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = DefaultPrintOptions().IndentWidth
	}

	p := &printer{indent: strings.Repeat(" ", opts.IndentWidth)}

	p.builder.WriteString("method ")
	p.builder.WriteString(m.Name)
	p.builder.WriteString("(")
	p.writeVarDecls(m.FormalArgs)
	p.builder.WriteString(")")
	if len(m.FormalReturns) > 0 {
		p.builder.WriteString(" returns (")
		p.writeVarDecls(m.FormalReturns)
		p.builder.WriteString(")")
	}
	p.builder.WriteString("\n{\n")

	if m.Body != nil {
		for _, decl := range m.Body.Decls {
			// Label declarations are implied by their marker statements
			// and are not rendered separately
			if local, ok := decl.(LocalVarDecl); ok {
				p.writeLine(1, fmt.Sprintf("var %s: %s", local.Name, local.Type))
			}
		}
		for i, stmt := range m.Body.Stmts {
			if opts.BlankLineBetweenBlocks && i > 0 {
				p.builder.WriteString("\n")
			}
			p.writeStmt(stmt, 1)
		}
	}

	p.builder.WriteString("}\n")
	return p.builder.String()
}

// String renders the method with default options
func (m *Method) String() string {
	return m.Format(DefaultPrintOptions())
}

func (p *printer) writeVarDecls(decls []LocalVarDecl) {
	for i, decl := range decls {
		if i > 0 {
			p.builder.WriteString(", ")
		}
		p.builder.WriteString(decl.Name)
		p.builder.WriteString(": ")
		p.builder.WriteString(string(decl.Type))
	}
}

func (p *printer) writeLine(level int, text string) {
	for i := 0; i < level; i++ {
		p.builder.WriteString(p.indent)
	}
	p.builder.WriteString(text)
	p.builder.WriteString("\n")
}

func (p *printer) writeStmt(stmt Stmt, level int) {
	switch s := stmt.(type) {
	case *RawStmt:
		p.writeLine(level, s.Text)

	case *Label:
		p.writeLine(level, "label "+s.Name)
		for _, inv := range s.Invs {
			p.writeLine(level+1, "invariant "+inv.String())
		}

	case *Goto:
		p.writeLine(level, "goto "+s.Target)

	case *Assert:
		p.writeLine(level, "assert "+s.Cond.String())

	case *If:
		p.writeLine(level, fmt.Sprintf("if (%s) {", s.Cond.String()))
		p.writeBranch(s.Then, level)
		if !isSkip(s.Else) {
			p.writeLine(level, "} else {")
			p.writeBranch(s.Else, level)
		}
		p.writeLine(level, "}")

	case *Seqn:
		p.writeLine(level, "{")
		for _, decl := range s.Decls {
			if local, ok := decl.(LocalVarDecl); ok {
				p.writeLine(level+1, fmt.Sprintf("var %s: %s", local.Name, local.Type))
			}
		}
		for _, inner := range s.Stmts {
			p.writeStmt(inner, level+1)
		}
		p.writeLine(level, "}")

	default:
		p.writeLine(level, fmt.Sprintf("// unknown statement %T", stmt))
	}
}

// writeBranch renders a branch body one level deeper, flattening a
// compound statement so branches read as plain blocks
func (p *printer) writeBranch(stmt Stmt, level int) {
	if stmt == nil {
		return
	}
	if seqn, ok := stmt.(*Seqn); ok {
		for _, inner := range seqn.Stmts {
			p.writeStmt(inner, level+1)
		}
		return
	}
	p.writeStmt(stmt, level+1)
}

func isSkip(stmt Stmt) bool {
	if stmt == nil {
		return true
	}
	seqn, ok := stmt.(*Seqn)
	return ok && seqn.IsEmpty()
}
