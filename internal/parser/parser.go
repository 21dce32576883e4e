// Package parser reads SQL type specifications such as
// "DECIMAL(10, 2)" or "VARCHAR(50) CHARACTER SET latin1" into parse-tree
// nodes.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/pgschema/typespec/internal/ast"
)

var (
	typeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "CharacterSet", Pattern: `(?i)\bCHARACTER\s+SET\b`},
		{Name: "QuotedIdent", Pattern: `"(?:[^"]|"")*"`},
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_$]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[(),.]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	typeParser = participle.MustBuild[typeSpecGrammar](
		participle.Lexer(typeLexer),
		participle.Elide("Whitespace"),
		participle.Map(unquoteIdent, "QuotedIdent"),
		participle.UseLookahead(2),
	)
)

type typeSpecGrammar struct {
	Pos     lexer.Position
	Names   []string  `@(Ident | QuotedIdent) ( "." @(Ident | QuotedIdent) )*`
	Args    *typeArgs `( "(" @@ ")" )?`
	Charset *string   `( CharacterSet @(Ident | QuotedIdent) )?`
}

// Arguments are kept as tokens so an out-of-range value is reported at its
// own position.
type typeArgs struct {
	Precision lexer.Token  `@Int`
	Scale     *lexer.Token `( "," @Int )?`
}

// unquoteIdent strips the surrounding quotes of a quoted identifier and
// collapses doubled quotes.
func unquoteIdent(tok lexer.Token) (lexer.Token, error) {
	v := tok.Value
	if len(v) < 2 {
		return tok, fmt.Errorf("malformed quoted identifier %s", v)
	}
	tok.Value = strings.ReplaceAll(v[1:len(v)-1], `""`, `"`)
	return tok, nil
}

// SyntaxError reports text that is not a type specification.
type SyntaxError struct {
	Pos ast.Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}

// Parse reads a single type specification.
func Parse(text string) (*ast.DataTypeSpec, error) {
	g, err := typeParser.ParseString("", text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Pos: toPos(perr.Position()), Msg: perr.Message()}
		}
		return nil, &SyntaxError{Pos: ast.Pos{Offset: 0, Line: 1, Column: 1}, Msg: err.Error()}
	}
	return g.toNode()
}

// MustParse is like Parse but panics on error. It is meant for tests and
// package-level fixtures.
func MustParse(text string) *ast.DataTypeSpec {
	spec, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return spec
}

func (g *typeSpecGrammar) toNode() (*ast.DataTypeSpec, error) {
	pos := toPos(g.Pos)
	precision, scale := ast.NoPrecision, ast.NoPrecision
	if g.Args != nil {
		var err error
		if precision, err = intArg(g.Args.Precision); err != nil {
			return nil, err
		}
		if g.Args.Scale != nil {
			if scale, err = intArg(*g.Args.Scale); err != nil {
				return nil, err
			}
		}
	}
	charset := ""
	if g.Charset != nil {
		charset = *g.Charset
	}
	return ast.NewDataTypeSpec(ast.NewIdentifier(g.Names, pos), precision, scale, charset, pos), nil
}

func intArg(tok lexer.Token) (int, error) {
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, &SyntaxError{Pos: toPos(tok.Pos), Msg: fmt.Sprintf("type argument %s out of range", tok.Value)}
	}
	return n, nil
}

func toPos(p lexer.Position) ast.Pos {
	return ast.Pos{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
