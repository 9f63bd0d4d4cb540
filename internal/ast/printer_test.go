package ast

import (
	"strings"
	"testing"
)

func TestMethodFormat(t *testing.T) {
	t.Run("HeaderWithSignature", func(t *testing.T) {
		m := &Method{
			Name:          "max",
			FormalArgs:    []LocalVarDecl{{Name: "a", Type: TypeInt}, {Name: "b", Type: TypeInt}},
			FormalReturns: []LocalVarDecl{{Name: "r", Type: TypeInt}},
			Body:          &Seqn{},
		}

		text := m.String()
		if !strings.HasPrefix(text, "method max(a: Int, b: Int) returns (r: Int)\n{\n") {
			t.Errorf("Unexpected header:\n%s", text)
		}
		if !strings.HasSuffix(text, "}\n") {
			t.Errorf("Missing closing brace:\n%s", text)
		}
	})

	t.Run("OmitsEmptyReturns", func(t *testing.T) {
		m := &Method{Name: "go_on", Body: &Seqn{}}

		text := m.String()
		if strings.Contains(text, "returns") {
			t.Errorf("Empty returns clause should be omitted:\n%s", text)
		}
	})

	t.Run("LocalDeclsRendered", func(t *testing.T) {
		m := &Method{
			Name: "locals",
			Body: &Seqn{
				Decls: []Declaration{
					LocalVarDecl{Name: "i", Type: TypeInt},
					LabelDecl{Name: "entry"},
				},
			},
		}

		text := m.String()
		if !strings.Contains(text, "var i: Int\n") {
			t.Errorf("Local declaration not rendered:\n%s", text)
		}
		// Label declarations are structural only
		if strings.Contains(text, "entry") {
			t.Errorf("Label declaration should not be rendered:\n%s", text)
		}
	})

	t.Run("LabelWithInvariants", func(t *testing.T) {
		m := &Method{
			Name: "inv",
			Body: &Seqn{
				Stmts: []Stmt{
					&Label{Name: "loop_head", Invs: []Expr{RawExpr{Text: "0 <= i"}, RawExpr{Text: "i <= n"}}},
				},
			},
		}

		text := m.Format(PrintOptions{IndentWidth: 2})
		if !strings.Contains(text, "  label loop_head\n    invariant 0 <= i\n    invariant i <= n\n") {
			t.Errorf("Label invariants not rendered as expected:\n%s", text)
		}
	})

	t.Run("IfWithSkipElseElided", func(t *testing.T) {
		m := &Method{
			Name: "guard",
			Body: &Seqn{
				Stmts: []Stmt{
					&If{Cond: RawExpr{Text: "c"}, Then: &Goto{Target: "t"}, Else: Skip()},
				},
			},
		}

		text := m.String()
		if !strings.Contains(text, "if (c) {\n") {
			t.Errorf("Conditional header missing:\n%s", text)
		}
		if strings.Contains(text, "else") {
			t.Errorf("Skip else branch should be elided:\n%s", text)
		}
	})

	t.Run("IfWithBothBranches", func(t *testing.T) {
		m := &Method{
			Name: "branch",
			Body: &Seqn{
				Stmts: []Stmt{
					&If{Cond: RawExpr{Text: "a > b"}, Then: &Goto{Target: "l"}, Else: &Goto{Target: "r"}},
				},
			},
		}

		text := m.String()
		for _, fragment := range []string{"if (a > b) {", "goto l", "} else {", "goto r"} {
			if !strings.Contains(text, fragment) {
				t.Errorf("Missing %q in:\n%s", fragment, text)
			}
		}
	})

	t.Run("BlankLineBetweenBlocks", func(t *testing.T) {
		m := &Method{
			Name: "spaced",
			Body: &Seqn{
				Stmts: []Stmt{
					&Goto{Target: "a"},
					&Goto{Target: "b"},
				},
			},
		}

		text := m.Format(PrintOptions{IndentWidth: 2, BlankLineBetweenBlocks: true})
		if !strings.Contains(text, "goto a\n\n") {
			t.Errorf("Expected blank line between top-level statements:\n%s", text)
		}
	})

	t.Run("DeterministicOutput", func(t *testing.T) {
		m := &Method{
			Name: "same",
			Body: &Seqn{
				Stmts: []Stmt{
					&Assert{Cond: FalseLit()},
					&Seqn{Stmts: []Stmt{&RawStmt{Text: "x := 1"}, &Goto{Target: "out"}}},
				},
			},
		}

		if m.String() != m.String() {
			t.Error("Formatting the same method twice produced different output")
		}
	})
}

func TestExprString(t *testing.T) {
	if FalseLit().String() != "false" {
		t.Errorf("Expected 'false', got %q", FalseLit().String())
	}
	if (BoolLit{Value: true}).String() != "true" {
		t.Errorf("Expected 'true', got %q", BoolLit{Value: true}.String())
	}
	if (RawExpr{Text: "a + b"}).String() != "a + b" {
		t.Errorf("Raw expression text not preserved")
	}
}

func TestSkip(t *testing.T) {
	if !Skip().IsEmpty() {
		t.Error("Skip should be an empty compound statement")
	}
	nonEmpty := &Seqn{Stmts: []Stmt{&Goto{Target: "x"}}}
	if nonEmpty.IsEmpty() {
		t.Error("Compound with statements should not be empty")
	}
}

func TestDeclCounts(t *testing.T) {
	m := &Method{
		Name: "counts",
		Body: &Seqn{
			Decls: []Declaration{
				LocalVarDecl{Name: "i", Type: TypeInt},
				LabelDecl{Name: "a"},
				LabelDecl{Name: "b"},
				LocalVarDecl{Name: "j", Type: TypeBool},
			},
		},
	}

	if m.LabelDeclCount() != 2 {
		t.Errorf("Expected 2 label declarations, got %d", m.LabelDeclCount())
	}
	if m.LocalDeclCount() != 2 {
		t.Errorf("Expected 2 local declarations, got %d", m.LocalDeclCount())
	}

	empty := &Method{Name: "empty"}
	if empty.LabelDeclCount() != 0 || empty.LocalDeclCount() != 0 {
		t.Error("Nil body should count zero declarations")
	}
}
