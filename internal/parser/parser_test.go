package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mracket/mracket-go/internal/ast"
	"github.com/mracket/mracket-go/internal/lexer"
	"github.com/mracket/mracket-go/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Tokenize(source)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)
	return program
}

func TestParseDefineShorthandDesugarsToLambda(t *testing.T) {
	program := mustParse(t, "#lang racket\n(define (f x) (+ x 1))")
	require.Len(t, program.Statements, 1)
	def, ok := program.Statements[0].(*ast.NameDefinition)
	require.True(t, ok)
	assert.Equal(t, "f", def.Name.Token.Source)
	lambda, ok := def.Expression.(*ast.Lambda)
	require.True(t, ok)
	require.Len(t, lambda.Variables, 1)
	assert.Equal(t, "x", lambda.Variables[0].Token.Source)
}

func TestParseIfDesugarsToCondWithElseBranch(t *testing.T) {
	program := mustParse(t, "#lang racket\n(if (> x 0) x (- x))")
	require.Len(t, program.Statements, 1)
	cond, ok := program.Statements[0].(*ast.Cond)
	require.True(t, ok)
	require.Len(t, cond.Branches, 2)
	assert.Equal(t, "else", cond.Branches[1].Condition.(*ast.Name).Token.Source)
}

func TestParseQuoteAbbreviationDesugarsToProcedureApplication(t *testing.T) {
	program := mustParse(t, "#lang racket\n'(1 2)")
	require.Len(t, program.Statements, 1)
	app, ok := program.Statements[0].(*ast.ProcedureApplication)
	require.True(t, ok)
	require.Len(t, app.Expressions, 2)
	assert.Equal(t, "quote", app.Expressions[0].(*ast.Name).Token.Source)
}

func TestParseLetKinds(t *testing.T) {
	cases := []struct {
		keyword string
		want    ast.LetKind
	}{
		{"let", ast.LetPlain},
		{"let*", ast.LetStar},
		{"letrec", ast.LetRec},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.keyword, func(t *testing.T) {
			program := mustParse(t, "#lang racket\n("+tc.keyword+" ((x 1)) x)")
			let, ok := program.Statements[0].(*ast.Let)
			require.True(t, ok)
			assert.Equal(t, tc.want, let.Kind)
		})
	}
}

func TestParseTestCaseKind(t *testing.T) {
	program := mustParse(t, "#lang racket\n(check-expect (f 1) 2)")
	tc, ok := program.Statements[0].(*ast.TestCase)
	require.True(t, ok)
	assert.Equal(t, ast.CheckExpect, tc.Kind)
	require.Len(t, tc.Arguments, 2)
}

func TestParseMismatchedParensErrors(t *testing.T) {
	tokens, err := lexer.Tokenize("#lang racket\n(define x 1]")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.MismatchedParentheses, perr.Kind)
}

func TestParseMissingReaderDirectiveErrors(t *testing.T) {
	tokens, err := lexer.Tokenize("(+ 1 2)")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ExpectedReaderDirective, perr.Kind)
}

func TestParseUnexpectedRightParenErrors(t *testing.T) {
	tokens, err := lexer.Tokenize("#lang racket\n)")
	require.NoError(t, err)
	_, err = parser.Parse(tokens)
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.UnexpectedRightParenthesis, perr.Kind)
}
