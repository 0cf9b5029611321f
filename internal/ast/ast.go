// Package ast declares the structures used to represent Racket syntax
// trees, following the teacher's node-set idiom (akhil.cc/mexdown/ast.Node:
// a closed interface with an unexported marker method) generalized from a
// lightweight markup AST to the richer sum type spec.md §3 requires, with
// double-dispatch visiting restored per spec.md §4.2 (ported from
// mracket/reader/syntax.py's RacketASTVisitor).
package ast

import "github.com/mracket/mracket-go/internal/token"

// Visitor provides one handler per node variant (double dispatch). A
// default no-op BaseVisitor is embedded by consumers that only care about a
// handful of variants (spec.md §4.2: "generators can opt out of any
// variant").
type Visitor interface {
	VisitProgram(*Program) any
	VisitReaderDirective(*ReaderDirective) any
	VisitNameDefinition(*NameDefinition) any
	VisitStructureDefinition(*StructureDefinition) any
	VisitLiteral(*Literal) any
	VisitName(*Name) any
	VisitCond(*Cond) any
	VisitLambda(*Lambda) any
	VisitLet(*Let) any
	VisitLocal(*Local) any
	VisitProcedureApplication(*ProcedureApplication) any
	VisitTestCase(*TestCase) any
	VisitLibraryRequire(*LibraryRequire) any
}

// Node is implemented by every AST variant. Accept performs the double
// dispatch: node.Accept(v) calls the matching v.Visit* method.
type Node interface {
	Accept(Visitor) any
	// PrimaryToken returns the token this node should be blamed on in
	// error messages (spec.md §3: "Each node carries its originating
	// primary token").
	PrimaryToken() token.Token
}

// Statement is implemented by every node valid at program top level or
// inside a Local's definitions/body.
type Statement interface {
	Node
	stmt()
}

// Expression is implemented by every node valid wherever a value is
// expected.
type Expression interface {
	Statement
	expr()
}

// Definition is implemented by NameDefinition and StructureDefinition.
type Definition interface {
	Statement
	def()
}

// Base carries the primary token shared by every node, mirroring
// RacketASTNode.__init__(self, token) in syntax.py.
type Base struct {
	Token token.Token
}

func (b Base) PrimaryToken() token.Token { return b.Token }

// Program is the root of every parsed file: exactly one ReaderDirective
// plus zero or more statements (spec.md §3 invariants).
type Program struct {
	Base
	Directive  *ReaderDirective
	Statements []Statement
}

func (n *Program) Accept(v Visitor) any { return v.VisitProgram(n) }

// ReaderDirective is a `#lang <dialect>` or `#reader <module>` line.
type ReaderDirective struct {
	Base
}

func (n *ReaderDirective) Accept(v Visitor) any { return v.VisitReaderDirective(n) }

// NameDefinition covers both `(define x e)` and the desugared form of
// `(define (f xs...) e)` (spec.md §3 invariants: desugaring preserves
// source semantics).
type NameDefinition struct {
	Base
	LParen, RParen token.Token
	Name           *Name
	Expression     Expression
}

func (n *NameDefinition) Accept(v Visitor) any { return v.VisitNameDefinition(n) }
func (n *NameDefinition) stmt()                {}
func (n *NameDefinition) def()                 {}

// StructureDefinition is `(define-struct name (field...))`.
type StructureDefinition struct {
	Base
	LParen, RParen token.Token
	Name           *Name
	Fields         []*Name
}

func (n *StructureDefinition) Accept(v Visitor) any { return v.VisitStructureDefinition(n) }
func (n *StructureDefinition) stmt()                {}
func (n *StructureDefinition) def()                 {}

// Literal is a boolean, character, number, or string token.
type Literal struct {
	Base
}

func (n *Literal) Accept(v Visitor) any { return v.VisitLiteral(n) }
func (n *Literal) stmt()                {}
func (n *Literal) expr()                {}

// Name is a bare symbol reference.
type Name struct {
	Base
}

func (n *Name) Accept(v Visitor) any { return v.VisitName(n) }
func (n *Name) stmt()                {}
func (n *Name) expr()                {}

// CondBranch is one (condition expression) pair of a Cond.
type CondBranch struct {
	Condition  Expression
	Expression Expression
}

// Cond is `(cond (c e)...)`. `if` is desugared into a two-branch Cond with
// an `else` branch (spec.md §3: `(if c t f) ≡ (cond (c t) (else f))`).
type Cond struct {
	Base
	LParen, RParen token.Token
	Branches       []CondBranch
}

func (n *Cond) Accept(v Visitor) any { return v.VisitCond(n) }
func (n *Cond) stmt()                {}
func (n *Cond) expr()                {}

// Lambda is `(lambda (v...) body)`, also written `(λ (v...) body)`.
type Lambda struct {
	Base
	LParen, RParen token.Token
	Variables      []*Name
	Body           Expression
}

func (n *Lambda) Accept(v Visitor) any { return v.VisitLambda(n) }
func (n *Lambda) stmt()                {}
func (n *Lambda) expr()                {}

// LetKind distinguishes let / let* / letrec.
type LetKind int

const (
	LetPlain LetKind = iota
	LetStar
	LetRec
)

func (k LetKind) String() string {
	switch k {
	case LetPlain:
		return "let"
	case LetStar:
		return "let*"
	case LetRec:
		return "letrec"
	default:
		return "let"
	}
}

// LetBinding is one (name expr) pair of a Let's binding list.
type LetBinding struct {
	Name       *Name
	Expression Expression
}

// Let is `(let ((n e)...) body)`, `(let* ...)`, or `(letrec ...)`.
type Let struct {
	Base
	LParen, RParen token.Token
	Kind           LetKind
	Bindings       []LetBinding
	Body           Expression
}

func (n *Let) Accept(v Visitor) any { return v.VisitLet(n) }
func (n *Let) stmt()                {}
func (n *Let) expr()                {}

// Local is `(local (def...) body)`.
type Local struct {
	Base
	LParen, RParen token.Token
	Definitions    []Definition
	Body           Expression
}

func (n *Local) Accept(v Visitor) any { return v.VisitLocal(n) }
func (n *Local) stmt()                {}
func (n *Local) expr()                {}

// ProcedureApplication is `(e...)`, where e[0] is the procedure.
type ProcedureApplication struct {
	Base
	LParen, RParen token.Token
	Expressions    []Expression
}

func (n *ProcedureApplication) Accept(v Visitor) any { return v.VisitProcedureApplication(n) }
func (n *ProcedureApplication) stmt()                {}
func (n *ProcedureApplication) expr()                {}

// TestCaseKind enumerates the check-expect family (spec.md §3).
type TestCaseKind int

const (
	CheckExpect TestCaseKind = iota
	CheckRandom
	CheckWithin
	CheckMemberOf
	CheckRange
	CheckSatisfied
	CheckError
)

func (k TestCaseKind) String() string {
	switch k {
	case CheckExpect:
		return "check-expect"
	case CheckRandom:
		return "check-random"
	case CheckWithin:
		return "check-within"
	case CheckMemberOf:
		return "check-member-of"
	case CheckRange:
		return "check-range"
	case CheckSatisfied:
		return "check-satisfied"
	case CheckError:
		return "check-error"
	default:
		return "check-expect"
	}
}

// TestCase is one `(check-... arg...)` form.
type TestCase struct {
	Base
	LParen, RParen token.Token
	Kind           TestCaseKind
	Arguments      []Expression
}

func (n *TestCase) Accept(v Visitor) any { return v.VisitTestCase(n) }
func (n *TestCase) stmt()                {}

// LibraryRequire is `(require lib)`.
type LibraryRequire struct {
	Base
	LParen, RParen token.Token
	Library        *Name
}

func (n *LibraryRequire) Accept(v Visitor) any { return v.VisitLibraryRequire(n) }
func (n *LibraryRequire) stmt()                {}

// NewBase is exported so the parser and mutation generators (which live in
// other packages) can construct nodes without duplicating the base field
// wiring.
func NewBase(tok token.Token) Base { return Base{Token: tok} }

// BaseVisitor is embedded by consumers that only need to override a few
// Visit* methods; every method returns nil (spec.md §4.2: "a default
// handler that no-ops").
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) any                         { return nil }
func (BaseVisitor) VisitReaderDirective(*ReaderDirective) any         { return nil }
func (BaseVisitor) VisitNameDefinition(*NameDefinition) any           { return nil }
func (BaseVisitor) VisitStructureDefinition(*StructureDefinition) any { return nil }
func (BaseVisitor) VisitLiteral(*Literal) any                         { return nil }
func (BaseVisitor) VisitName(*Name) any                               { return nil }
func (BaseVisitor) VisitCond(*Cond) any                               { return nil }
func (BaseVisitor) VisitLambda(*Lambda) any                           { return nil }
func (BaseVisitor) VisitLet(*Let) any                                 { return nil }
func (BaseVisitor) VisitLocal(*Local) any                             { return nil }
func (BaseVisitor) VisitProcedureApplication(*ProcedureApplication) any { return nil }
func (BaseVisitor) VisitTestCase(*TestCase) any                       { return nil }
func (BaseVisitor) VisitLibraryRequire(*LibraryRequire) any           { return nil }
