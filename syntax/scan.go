package syntax

import (
	"fmt"

	"github.com/eufsolve/euf"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types for the surface grammar. This front end owns its own small
// token space rather than borrowing one from a shared scanner package.
const (
	TokEOF euf.TokType = iota
	TokIdent
	TokLParen
	TokRParen
	TokComma
	TokEq
	TokNeq
	TokBang
	TokAnd
	TokOr
	TokArrow
)

func tokTypeName(t euf.TokType) string {
	switch t {
	case TokEOF:
		return "end of input"
	case TokIdent:
		return "identifier"
	case TokLParen:
		return "'('"
	case TokRParen:
		return "')'"
	case TokComma:
		return "','"
	case TokEq:
		return "'='"
	case TokNeq:
		return "'!='"
	case TokBang:
		return "'!'"
	case TokAnd:
		return "'/\\'"
	case TokOr:
		return "'\\/'"
	case TokArrow:
		return "'->'"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// token is the concrete euf.Token implementation this scanner produces.
type token struct {
	typ    euf.TokType
	lexeme string
	span   euf.Span
}

func (t token) TokType() euf.TokType { return t.typ }
func (t token) Lexeme() string       { return t.lexeme }
func (t token) Span() euf.Span       { return t.span }

func makeToken(typ euf.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{
			typ:    typ,
			lexeme: string(m.Bytes),
			span:   euf.Span{uint64(m.StartColumn), uint64(m.EndColumn)},
		}, nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// newLexer compiles the DFA for the surface grammar's terminals, using
// timtadh/lexmachine directly rather than through an LR scanner adapter,
// since this front end defines its own token space.
func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()

	// Multi-character operators are listed before their single-character
	// prefixes; lexmachine prefers the longest match, so "!=" never lexes as
	// "!" followed by "=" and the relative order below only documents intent.
	lexer.Add([]byte(`!=`), makeToken(TokNeq))
	lexer.Add([]byte(`->`), makeToken(TokArrow))
	lexer.Add([]byte(`/\\`), makeToken(TokAnd))
	lexer.Add([]byte(`\\/`), makeToken(TokOr))
	lexer.Add([]byte(`\(`), makeToken(TokLParen))
	lexer.Add([]byte(`\)`), makeToken(TokRParen))
	lexer.Add([]byte(`,`), makeToken(TokComma))
	lexer.Add([]byte(`=`), makeToken(TokEq))
	lexer.Add([]byte(`!`), makeToken(TokBang))

	// The math-notation forms produced by ast's Formula.String() methods
	// are accepted as synonyms for their ASCII counterparts above, so that
	// printing a formula and feeding the result back into the parser round-
	// trips instead of failing to lex.
	lexer.Add([]byte("∧"), makeToken(TokAnd))
	lexer.Add([]byte("∨"), makeToken(TokOr))
	lexer.Add([]byte("¬"), makeToken(TokBang))
	lexer.Add([]byte("→"), makeToken(TokArrow))

	lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken(TokIdent))
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)

	if err := lexer.Compile(); err != nil {
		return nil, fmt.Errorf("syntax: compiling scanner: %w", err)
	}
	return lexer, nil
}

// scan tokenizes input in full, appending a trailing TokEOF marker. It
// fails only if the DFA itself cannot be built (a package-level defect) or
// the input contains a byte sequence no rule matches.
func scan(input string) ([]token, error) {
	lexer, err := newLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, fmt.Errorf("syntax: starting scanner: %w", err)
	}

	var toks []token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &SyntaxError{
					Message: fmt.Sprintf("unrecognized input starting at byte %d", ui.FailTC),
					Span:    euf.Span{uint64(ui.FailTC), uint64(ui.FailTC)},
				}
			}
			return nil, fmt.Errorf("syntax: scanning: %w", err)
		}
		if tok == nil {
			continue // a skip action (whitespace)
		}
		toks = append(toks, tok.(token))
	}
	toks = append(toks, token{typ: TokEOF, lexeme: "", span: euf.Span{}})
	return toks, nil
}
