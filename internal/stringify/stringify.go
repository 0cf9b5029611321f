// Package stringify renders an AST back to Racket source text, following
// mracket/reader/stringify.py's Stringifier. It is pure: given the same
// tree it always produces the same string, and re-parsing that string
// produces a structurally identical tree (spec.md §4.4 idempotence
// guarantee). The mutation applier (internal/mutation/applier) uses it to
// render the whole program after swapping a replacement node into the tree.
package stringify

import (
	"strings"

	"github.com/mracket/mracket-go/internal/ast"
)

// String renders n as Racket source text.
func String(n ast.Node) string {
	return n.Accept(&stringifier{}).(string)
}

type stringifier struct {
	ast.BaseVisitor
}

func (s *stringifier) visit(n ast.Node) string {
	return n.Accept(s).(string)
}

func (s *stringifier) VisitProgram(n *ast.Program) any {
	var b strings.Builder
	b.WriteString(s.visit(n.Directive))
	for _, stmt := range n.Statements {
		b.WriteByte('\n')
		b.WriteString(s.visit(stmt))
	}
	return b.String()
}

func (s *stringifier) VisitReaderDirective(n *ast.ReaderDirective) any {
	return n.Token.Source
}

func (s *stringifier) VisitNameDefinition(n *ast.NameDefinition) any {
	return "(define " + s.visit(n.Name) + " " + s.visit(n.Expression) + ")"
}

func (s *stringifier) VisitStructureDefinition(n *ast.StructureDefinition) any {
	fields := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = s.visit(f)
	}
	return "(define-struct " + s.visit(n.Name) + " (" + strings.Join(fields, " ") + "))"
}

func (s *stringifier) VisitLiteral(n *ast.Literal) any {
	return n.Token.Source
}

func (s *stringifier) VisitName(n *ast.Name) any {
	return n.Token.Source
}

func (s *stringifier) VisitCond(n *ast.Cond) any {
	branches := make([]string, len(n.Branches))
	for i, branch := range n.Branches {
		branches[i] = "(" + s.visit(branch.Condition) + " " + s.visit(branch.Expression) + ")"
	}
	return "(cond " + strings.Join(branches, " ") + ")"
}

func (s *stringifier) VisitLambda(n *ast.Lambda) any {
	variables := make([]string, len(n.Variables))
	for i, v := range n.Variables {
		variables[i] = s.visit(v)
	}
	return "(lambda (" + strings.Join(variables, " ") + ") " + s.visit(n.Body) + ")"
}

func (s *stringifier) VisitLet(n *ast.Let) any {
	bindings := make([]string, len(n.Bindings))
	for i, b := range n.Bindings {
		bindings[i] = "(" + s.visit(b.Name) + " " + s.visit(b.Expression) + ")"
	}
	return "(" + n.Kind.String() + " (" + strings.Join(bindings, " ") + ") " + s.visit(n.Body) + ")"
}

func (s *stringifier) VisitLocal(n *ast.Local) any {
	defs := make([]string, len(n.Definitions))
	for i, d := range n.Definitions {
		defs[i] = s.visit(d)
	}
	return "(local (" + strings.Join(defs, " ") + ") " + s.visit(n.Body) + ")"
}

func (s *stringifier) VisitProcedureApplication(n *ast.ProcedureApplication) any {
	exprs := make([]string, len(n.Expressions))
	for i, e := range n.Expressions {
		exprs[i] = s.visit(e)
	}
	return "(" + strings.Join(exprs, " ") + ")"
}

func (s *stringifier) VisitTestCase(n *ast.TestCase) any {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = s.visit(a)
	}
	return "(" + n.Kind.String() + " " + strings.Join(args, " ") + ")"
}

func (s *stringifier) VisitLibraryRequire(n *ast.LibraryRequire) any {
	return "(require " + s.visit(n.Library) + ")"
}
