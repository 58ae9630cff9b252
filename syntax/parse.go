package syntax

import (
	"fmt"

	"github.com/eufsolve/euf"
	"github.com/eufsolve/euf/ast"
)

// SyntaxError reports a failure to scan or parse input. Invalid input
// never panics; it is reported through this value instead.
type SyntaxError struct {
	Message string
	Span    euf.Span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Message)
}

// Parser turns surface syntax into ast.Term / ast.Formula values over a
// single implicit sort, interning one ast.FunctionSymbol per distinct
// identifier. A Parser is not safe for concurrent use; build a fresh one
// per input, or reuse one across inputs sharing a vocabulary.
type Parser struct {
	sort    *ast.Sort
	arities map[string]*ast.FunctionSymbol
	toks    []token
	pos     int
}

// NewParser creates a parser whose function symbols are all drawn from a
// single sort named sortName; the surface grammar carries no sort
// annotations of its own.
func NewParser(sortName string) *Parser {
	return &Parser{
		sort:    ast.NewSort(sortName),
		arities: make(map[string]*ast.FunctionSymbol),
	}
}

// Language returns the vocabulary of function symbols discovered across
// every ParseTerm/ParseFormula call made on this Parser so far.
func (p *Parser) Language() *ast.Language {
	funcs := make([]*ast.FunctionSymbol, 0, len(p.arities))
	for _, sym := range p.arities {
		funcs = append(funcs, sym)
	}
	return ast.NewLanguage([]*ast.Sort{p.sort}, funcs, nil)
}

func (p *Parser) peek() token { return p.toks[p.pos] }

func (p *Parser) advance() token {
	t := p.toks[p.pos]
	if t.typ != TokEOF {
		p.pos++
	}
	return t
}

func (p *Parser) errorf(span euf.Span, format string, args ...interface{}) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Span: span}
}

func (p *Parser) expect(tt euf.TokType) (token, error) {
	t := p.peek()
	if t.typ != tt {
		return token{}, p.errorf(t.span, "expected %s, found %s %q", tokTypeName(tt), tokTypeName(t.typ), t.lexeme)
	}
	return p.advance(), nil
}

// symbolFor interns name at the given arity: the first occurrence of a
// name fixes its arity, and every later occurrence must use the same one.
func (p *Parser) symbolFor(name string, arity int) (*ast.FunctionSymbol, error) {
	if sym, ok := p.arities[name]; ok {
		if sym.Arity() != arity {
			return nil, fmt.Errorf("function symbol %q used with arity %d, previously declared with arity %d", name, arity, sym.Arity())
		}
		return sym, nil
	}
	inputs := make([]*ast.Sort, arity)
	for i := range inputs {
		inputs[i] = p.sort
	}
	sym := ast.NewFunctionSymbol(name, inputs, p.sort)
	p.arities[name] = sym
	return sym, nil
}

// term = identifier [ "(" terms ")" ]
func (p *Parser) term() (ast.Term, error) {
	id, err := p.expect(TokIdent)
	if err != nil {
		return nil, err
	}
	var args []ast.Term
	if p.peek().typ == TokLParen {
		args, err = p.arguments()
		if err != nil {
			return nil, err
		}
	}
	sym, err := p.symbolFor(id.lexeme, len(args))
	if err != nil {
		return nil, p.errorf(id.span, "%v", err)
	}
	return ast.NewApplication(sym, args), nil
}

// arguments = "(" terms ")"
func (p *Parser) arguments() ([]ast.Term, error) {
	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}
	args, err := p.terms()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	return args, nil
}

// terms = term ("," term)*
func (p *Parser) terms() ([]ast.Term, error) {
	first, err := p.term()
	if err != nil {
		return nil, err
	}
	args := []ast.Term{first}
	for p.peek().typ == TokComma {
		p.advance()
		next, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
	return args, nil
}

// atomicFormula = equality | negEquality | "(" formula ")"
func (p *Parser) atomicFormula() (ast.Formula, error) {
	if p.peek().typ == TokLParen {
		p.advance()
		f, err := p.formula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		return f, nil
	}
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	switch p.peek().typ {
	case TokEq:
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		return ast.NewEquality(left, right), nil
	case TokNeq:
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(ast.NewEquality(left, right)), nil
	default:
		t := p.peek()
		return nil, p.errorf(t.span, "expected '=' or '!=', found %s %q", tokTypeName(t.typ), t.lexeme)
	}
}

// unary = "!" atomicFormula | atomicFormula
func (p *Parser) unary() (ast.Formula, error) {
	if p.peek().typ == TokBang {
		p.advance()
		f, err := p.atomicFormula()
		if err != nil {
			return nil, err
		}
		return ast.NewNot(f), nil
	}
	return p.atomicFormula()
}

// conjunction = unary ("/\" unary)*
func (p *Parser) conjunction() (ast.Formula, error) {
	first, err := p.unary()
	if err != nil {
		return nil, err
	}
	conjuncts := []ast.Formula{first}
	for p.peek().typ == TokAnd {
		p.advance()
		next, err := p.unary()
		if err != nil {
			return nil, err
		}
		conjuncts = append(conjuncts, next)
	}
	if len(conjuncts) == 1 {
		return conjuncts[0], nil
	}
	return ast.NewAnd(conjuncts), nil
}

// disjunction = conjunction ("\/" conjunction)*
func (p *Parser) disjunction() (ast.Formula, error) {
	first, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	disjuncts := []ast.Formula{first}
	for p.peek().typ == TokOr {
		p.advance()
		next, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		disjuncts = append(disjuncts, next)
	}
	if len(disjuncts) == 1 {
		return disjuncts[0], nil
	}
	return ast.NewOr(disjuncts), nil
}

// formula = disjunction [ "->" disjunction ]
func (p *Parser) formula() (ast.Formula, error) {
	left, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	if p.peek().typ == TokArrow {
		p.advance()
		right, err := p.disjunction()
		if err != nil {
			return nil, err
		}
		return ast.NewImplies(left, right), nil
	}
	return left, nil
}

func (p *Parser) atEOF() bool { return p.peek().typ == TokEOF }

// ParseTerm parses input as a single term, interning any new function
// symbols it discovers. It fails if input is not exactly one term.
func (p *Parser) ParseTerm(input string) (ast.Term, error) {
	toks, err := scan(input)
	if err != nil {
		return nil, err
	}
	p.toks, p.pos = toks, 0
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		tok := p.peek()
		return nil, p.errorf(tok.span, "unexpected trailing input starting with %q", tok.lexeme)
	}
	return t, nil
}

// ParseFormula parses input as a quantifier-free formula of equality atoms,
// interning any new function symbols it discovers.
func (p *Parser) ParseFormula(input string) (ast.Formula, error) {
	toks, err := scan(input)
	if err != nil {
		return nil, err
	}
	p.toks, p.pos = toks, 0
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		tok := p.peek()
		return nil, p.errorf(tok.span, "unexpected trailing input starting with %q", tok.lexeme)
	}
	return f, nil
}
