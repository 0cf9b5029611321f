// Package parser implements a recursive-descent parser for a Racket-like
// dialect (spec.md §4.3), producing the typed AST from internal/ast. The
// grammar and error taxonomy are ported from mracket/reader/parser.py and
// mracket/reader/errors.py; the Go entry point Parse([]token.Token)
// (*ast.Program, error) follows the teacher's parser.Parse(io.Reader)
// (*ast.File, error) shape (akhil.cc/mexdown/parser/parse.go).
package parser

import (
	"regexp"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/token"
)

var (
	definitionPattern  = regexp.MustCompile(`^define(-struct)?$`)
	testCasePattern    = regexp.MustCompile(`^check-(expect|random|within|member-of|range|satisfied|error)$`)
	libraryRequirePattern = regexp.MustCompile(`^require$`)
)

var matchingParens = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

var testCaseKindByName = map[string]ast.TestCaseKind{
	"check-expect":     ast.CheckExpect,
	"check-random":     ast.CheckRandom,
	"check-within":     ast.CheckWithin,
	"check-member-of":  ast.CheckMemberOf,
	"check-range":      ast.CheckRange,
	"check-satisfied":  ast.CheckSatisfied,
	"check-error":      ast.CheckError,
}

// Parse consumes a filtered token stream (whitespace/comments already
// excluded by internal/lexer) and produces a Program, or a structured
// *Error.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

// ParseExpression parses a single expression out of a standalone token
// stream, used by mutation generators that pre-parse small replacement
// snippets at construction time (mracket/mutation/generator/
// procedure_application_replacement.py: `parser_.parse_expression(...)`).
func ParseExpression(tokens []token.Token) (ast.Expression, error) {
	p := &parser{tokens: tokens}
	return p.expression()
}

type parser struct {
	tokens     []token.Token
	pos        int
	parenStack []token.Token
}

func (p *parser) current() token.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) (token.Token, bool) {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[i], true
}

func (p *parser) parseProgram() (*ast.Program, error) {
	firstTok := p.current()
	var directive *ast.ReaderDirective
	var statements []ast.Statement

	for p.current().Kind != token.EOF {
		if p.current().Kind == token.ReaderDirective {
			d, err := p.readerDirective()
			if err != nil {
				return nil, err
			}
			if directive == nil {
				directive = d
			}
			continue
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if directive == nil {
		return nil, &Error{Kind: ExpectedReaderDirective, Token: p.tokens[len(p.tokens)-1]}
	}

	return &ast.Program{
		Base:       ast.NewBase(firstTok),
		Directive:  directive,
		Statements: statements,
	}, nil
}

func (p *parser) readerDirective() (*ast.ReaderDirective, error) {
	tok := p.current()
	node := &ast.ReaderDirective{Base: ast.NewBase(tok)}
	if _, err := p.eat(token.ReaderDirective); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) statement() (ast.Statement, error) {
	switch p.current().Kind {
	case token.EOF:
		return nil, &Error{Kind: UnexpectedEOFToken, Token: p.current()}
	case token.RParen:
		return nil, &Error{Kind: UnexpectedRightParenthesis, Token: p.current()}
	}

	if kind, ok := p.specialStatement(definitionPattern); ok {
		return p.definition(kind)
	}
	if name, ok := p.specialStatement(testCasePattern); ok {
		return p.testCase(name)
	}
	if _, ok := p.specialStatement(libraryRequirePattern); ok {
		return p.libraryRequire()
	}
	return p.expression()
}

// specialStatement implements the parser's `(<head> ...)` lookahead: it
// matches when the current token is LParen and the following token is a
// Symbol whose source matches pattern (mracket/reader/parser.py:
// _is_special_statement).
func (p *parser) specialStatement(pattern *regexp.Regexp) (string, bool) {
	if p.current().Kind != token.LParen {
		return "", false
	}
	next, ok := p.peekAt(1)
	if !ok || next.Kind != token.Symbol {
		return "", false
	}
	if !pattern.MatchString(next.Source) {
		return "", false
	}
	return next.Source, true
}

func (p *parser) definition(kind string) (ast.Definition, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil {
		return nil, err
	}

	switch kind {
	case "define":
		if p.current().Kind == token.LParen {
			if _, err := p.eat(token.LParen); err != nil {
				return nil, err
			}
			nameTok, err := p.eat(token.Symbol)
			if err != nil {
				return nil, err
			}
			name := &ast.Name{Base: ast.NewBase(nameTok)}
			var variables []*ast.Name
			for p.current().Kind != token.RParen {
				v, err := p.name()
				if err != nil {
					return nil, err
				}
				variables = append(variables, v)
			}
			if _, err := p.eat(token.RParen); err != nil {
				return nil, err
			}
			body, err := p.expression()
			if err != nil {
				return nil, err
			}
			rparen, err := p.eatRParen(lparen)
			if err != nil {
				return nil, err
			}
			lambda := &ast.Lambda{
				Base:      ast.NewBase(token.LParenSynth),
				LParen:    token.LParenSynth,
				RParen:    token.RParenSynth,
				Variables: variables,
				Body:      body,
			}
			return &ast.NameDefinition{
				Base:       ast.NewBase(lparen),
				LParen:     lparen,
				RParen:     rparen,
				Name:       name,
				Expression: lambda,
			}, nil
		}
		nameTok, err := p.eat(token.Symbol)
		if err != nil {
			return nil, err
		}
		name := &ast.Name{Base: ast.NewBase(nameTok)}
		body, err := p.expression()
		if err != nil {
			return nil, err
		}
		rparen, err := p.eatRParen(lparen)
		if err != nil {
			return nil, err
		}
		return &ast.NameDefinition{
			Base:       ast.NewBase(lparen),
			LParen:     lparen,
			RParen:     rparen,
			Name:       name,
			Expression: body,
		}, nil

	case "define-struct":
		nameTok, err := p.eat(token.Symbol)
		if err != nil {
			return nil, err
		}
		name := &ast.Name{Base: ast.NewBase(nameTok)}
		if _, err := p.eat(token.LParen); err != nil {
			return nil, err
		}
		var fields []*ast.Name
		for p.current().Kind != token.RParen {
			f, err := p.name()
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		if _, err := p.eat(token.RParen); err != nil {
			return nil, err
		}
		rparen, err := p.eatRParen(lparen)
		if err != nil {
			return nil, err
		}
		return &ast.StructureDefinition{
			Base:   ast.NewBase(lparen),
			LParen: lparen,
			RParen: rparen,
			Name:   name,
			Fields: fields,
		}, nil
	}
	return nil, &Error{Kind: IllegalState, Token: p.current(), Message: "unknown definition kind " + kind}
}

func (p *parser) name() (*ast.Name, error) {
	tok, err := p.eat(token.Symbol)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Base: ast.NewBase(tok)}, nil
}

var quoteHeads = map[token.Kind]string{
	token.Quote:           "quote",
	token.Quasiquote:      "quasiquote",
	token.Unquote:         "unquote",
	token.UnquoteSplicing: "unquote-splicing",
}

func (p *parser) expression() (ast.Expression, error) {
	cur := p.current()
	switch cur.Kind {
	case token.Boolean, token.Character, token.Number, token.String:
		if _, err := p.eat(cur.Kind); err != nil {
			return nil, err
		}
		return &ast.Literal{Base: ast.NewBase(cur)}, nil
	case token.Symbol:
		return p.name()
	case token.Quote, token.Quasiquote, token.Unquote, token.UnquoteSplicing:
		if _, err := p.eat(cur.Kind); err != nil {
			return nil, err
		}
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		head := &ast.Name{Base: ast.NewBase(token.FromSource(token.Symbol, quoteHeads[cur.Kind]))}
		return &ast.ProcedureApplication{
			Base:        ast.NewBase(token.LParenSynth),
			LParen:      token.LParenSynth,
			RParen:      token.RParenSynth,
			Expressions: []ast.Expression{head, inner},
		}, nil
	}

	if cur.Kind != token.LParen {
		return nil, &Error{Kind: IllegalState, Token: cur}
	}

	if head, ok := p.peekAt(1); ok && head.Kind == token.Symbol {
		switch head.Source {
		case "cond":
			return p.cond()
		case "if":
			return p.ifExpr()
		case "lambda", "λ":
			return p.lambda()
		case "let", "let*", "letrec":
			return p.let(head.Source)
		case "local":
			return p.local()
		}
	}
	return p.procedureApplication()
}

func (p *parser) cond() (*ast.Cond, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil { // "cond"
		return nil, err
	}
	var branches []ast.CondBranch
	for p.current().Kind != token.RParen {
		branch, err := p.condBranch()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.Cond{Base: ast.NewBase(lparen), LParen: lparen, RParen: rparen, Branches: branches}, nil
}

func (p *parser) condBranch() (ast.CondBranch, error) {
	blparen, err := p.eat(token.LParen)
	if err != nil {
		return ast.CondBranch{}, err
	}
	cond, err := p.expression()
	if err != nil {
		return ast.CondBranch{}, err
	}
	expr, err := p.expression()
	if err != nil {
		return ast.CondBranch{}, err
	}
	if _, err := p.eatRParen(blparen); err != nil {
		return ast.CondBranch{}, err
	}
	return ast.CondBranch{Condition: cond, Expression: expr}, nil
}

// ifExpr desugars `(if c t f)` into a Cond with branches [(c, t), (else, f)]
// (spec.md §3 invariant: `(if c t f) ≡ (cond (c t) (else f))`). Desugaring
// happens here, at parse time, per spec.md §9 ("Implementations MUST NOT
// defer desugaring").
func (p *parser) ifExpr() (*ast.Cond, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil { // "if"
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	consequent, err := p.expression()
	if err != nil {
		return nil, err
	}
	alternative, err := p.expression()
	if err != nil {
		return nil, err
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	elseName := &ast.Name{Base: ast.NewBase(token.Else)}
	return &ast.Cond{
		Base:   ast.NewBase(lparen),
		LParen: lparen,
		RParen: rparen,
		Branches: []ast.CondBranch{
			{Condition: condition, Expression: consequent},
			{Condition: elseName, Expression: alternative},
		},
	}, nil
}

func (p *parser) lambda() (*ast.Lambda, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil { // "lambda" | "λ"
		return nil, err
	}
	if _, err := p.eat(token.LParen); err != nil {
		return nil, err
	}
	var variables []*ast.Name
	for p.current().Kind != token.RParen {
		v, err := p.name()
		if err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}
	if _, err := p.eat(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Base: ast.NewBase(lparen), LParen: lparen, RParen: rparen, Variables: variables, Body: body}, nil
}

func letKindOf(source string) ast.LetKind {
	switch source {
	case "let*":
		return ast.LetStar
	case "letrec":
		return ast.LetRec
	default:
		return ast.LetPlain
	}
}

func (p *parser) let(kindSource string) (*ast.Let, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil { // "let" | "let*" | "letrec"
		return nil, err
	}
	if _, err := p.eat(token.LParen); err != nil {
		return nil, err
	}
	var bindings []ast.LetBinding
	for p.current().Kind != token.RParen {
		blparen, err := p.eat(token.LParen)
		if err != nil {
			return nil, err
		}
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eatRParen(blparen); err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.LetBinding{Name: name, Expression: expr})
	}
	if _, err := p.eat(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.Let{
		Base:     ast.NewBase(lparen),
		LParen:   lparen,
		RParen:   rparen,
		Kind:     letKindOf(kindSource),
		Bindings: bindings,
		Body:     body,
	}, nil
}

func (p *parser) local() (*ast.Local, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil { // "local"
		return nil, err
	}
	if _, err := p.eat(token.LParen); err != nil {
		return nil, err
	}
	var defs []ast.Definition
	for p.current().Kind != token.RParen {
		kind, ok := p.specialStatement(definitionPattern)
		if !ok {
			return nil, &Error{Kind: IllegalState, Token: p.current(), Message: "expected a definition inside local"}
		}
		def, err := p.definition(kind)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if _, err := p.eat(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.Local{Base: ast.NewBase(lparen), LParen: lparen, RParen: rparen, Definitions: defs, Body: body}, nil
}

func (p *parser) procedureApplication() (*ast.ProcedureApplication, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	var exprs []ast.Expression
	for p.current().Kind != token.RParen {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.ProcedureApplication{Base: ast.NewBase(lparen), LParen: lparen, RParen: rparen, Expressions: exprs}, nil
}

func (p *parser) testCase(name string) (*ast.TestCase, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.current().Kind != token.RParen {
		a, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.TestCase{
		Base:      ast.NewBase(lparen),
		LParen:    lparen,
		RParen:    rparen,
		Kind:      testCaseKindByName[name],
		Arguments: args,
	}, nil
}

func (p *parser) libraryRequire() (*ast.LibraryRequire, error) {
	lparen, err := p.eat(token.LParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.Symbol); err != nil {
		return nil, err
	}
	library, err := p.name()
	if err != nil {
		return nil, err
	}
	rparen, err := p.eatRParen(lparen)
	if err != nil {
		return nil, err
	}
	return &ast.LibraryRequire{Base: ast.NewBase(lparen), LParen: lparen, RParen: rparen, Library: library}, nil
}

// eat consumes the current token if it matches kind, else returns an
// UnexpectedEOFToken error at end of input and an IllegalState error
// otherwise; an eaten LParen is pushed onto the paren-matching stack, which
// eatRParen pops (spec.md §4.3: "Paren matching").
func (p *parser) eat(kind token.Kind) (token.Token, error) {
	cur := p.current()
	if cur.Kind != kind {
		if cur.Kind == token.EOF {
			return token.Token{}, &Error{Kind: UnexpectedEOFToken, Token: cur}
		}
		return token.Token{}, &Error{Kind: IllegalState, Token: cur}
	}
	if kind == token.LParen {
		p.parenStack = append(p.parenStack, cur)
	}
	p.pos++
	return cur, nil
}

// eatRParen consumes the RParen that closes opener, validating that the
// bracket shapes match ((-), [-], {-}) per spec.md §3 invariants and §4.3.
func (p *parser) eatRParen(opener token.Token) (token.Token, error) {
	cur := p.current()
	if cur.Kind == token.EOF {
		return token.Token{}, &Error{Kind: UnexpectedEOFToken, Token: cur}
	}
	if cur.Kind != token.RParen {
		return token.Token{}, &Error{Kind: IllegalState, Token: cur}
	}
	if len(p.parenStack) > 0 {
		p.parenStack = p.parenStack[:len(p.parenStack)-1]
	}
	if matchingParens[opener.Source] != cur.Source {
		return token.Token{}, &Error{Kind: MismatchedParentheses, Token: cur, Opener: opener}
	}
	p.pos++
	return cur, nil
}
