package syntax

import (
	"strings"
	"testing"
)

func TestParseTermBuildsApplication(t *testing.T) {
	p := NewParser("elem")
	term, err := p.ParseTerm("f(a, b)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := term.String(), "f(a, b)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseTermConstantHasNoParens(t *testing.T) {
	p := NewParser("elem")
	term, err := p.ParseTerm("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := term.String(), "a"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSameIdentifierMustKeepItsArity(t *testing.T) {
	p := NewParser("elem")
	if _, err := p.ParseTerm("f(a)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.ParseTerm("f(a, a)"); err == nil {
		t.Fatal("expected an arity mismatch error")
	}
}

func TestParseFormulaEquality(t *testing.T) {
	p := NewParser("elem")
	f, err := p.ParseFormula("f(a) = a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := f.String(), "f(a) = a"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormulaNegatedEquality(t *testing.T) {
	p := NewParser("elem")
	f, err := p.ParseFormula("f(a) != a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := f.String(), "¬(f(a) = a)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormulaConjunctionAndDisjunctionPrecedence(t *testing.T) {
	p := NewParser("elem")
	// conjunction binds tighter than disjunction: a = b \/ b = c /\ c = d
	// parses as a = b \/ (b = c /\ c = d)
	f, err := p.ParseFormula(`a = b \/ b = c /\ c = d`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := f.String(), "(a = b ∨ (b = c ∧ c = d))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormulaImplication(t *testing.T) {
	p := NewParser("elem")
	f, err := p.ParseFormula("a = b -> b = a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := f.String(), "(a = b → b = a)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormulaParenthesizedNegation(t *testing.T) {
	p := NewParser("elem")
	f, err := p.ParseFormula("!(a = b)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := f.String(), "¬(a = b)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormulaRejectsGarbage(t *testing.T) {
	p := NewParser("elem")
	if _, err := p.ParseFormula("a = "); err == nil {
		t.Fatal("expected a syntax error on truncated input")
	}
}

func TestParseFormulaRejectsTrailingInput(t *testing.T) {
	p := NewParser("elem")
	if _, err := p.ParseFormula("a = b )"); err == nil {
		t.Fatal("expected a syntax error on unexpected trailing input")
	}
}

func TestLanguageAccumulatesAcrossParses(t *testing.T) {
	p := NewParser("elem")
	if _, err := p.ParseTerm("f(a)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.ParseTerm("g(a, b)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lang := p.Language()
	if lang.Functions.Len() != 4 { // f, a, g, b
		t.Fatalf("expected 4 distinct symbols, got %d", lang.Functions.Len())
	}
}

func TestScanSkipsWhitespaceAndProducesEOF(t *testing.T) {
	toks, err := scan("  a   =  b ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var kinds []string
	for _, tok := range toks {
		kinds = append(kinds, tokTypeName(tok.typ))
	}
	joined := strings.Join(kinds, ",")
	want := "identifier,'=',identifier,end of input"
	if joined != want {
		t.Errorf("got %q, want %q", joined, want)
	}
}
