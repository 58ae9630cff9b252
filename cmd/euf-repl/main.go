/*
Command euf-repl is an interactive shell for the satisfiability driver: it
reads one quantifier-free equality formula per line, parses it with package
syntax, and prints sat / unsat / unknown.

Readline handles input, pterm renders colored output, and
schuko/tracing + gologadapter provide logging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/eufsolve/euf/solver"
	"github.com/eufsolve/euf/syntax"
)

// tracer traces with key 'euf.repl'.
func tracer() tracing.Trace {
	return tracing.Select("euf.repl")
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load: a file of formulas, one per line")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	pterm.Info.Println("euf-repl: a QF_EUF satisfiability shell")
	tracer().Infof("Quit with <ctrl>D")

	intp := &interp{parser: syntax.NewParser("elem")}

	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		intp.eval(input)
	}
	intp.loadInitFile(*initf)
	intp.repl()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "  sat",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  unknown",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// interp holds a single Parser across every line so function symbols
// interned from earlier lines stay in scope for later ones.
type interp struct {
	parser *syntax.Parser
}

func (intp *interp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			intp.eval(line)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("error reading init file: %v", err)
	}
}

func (intp *interp) repl() {
	rl, err := readline.New("euf> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, typically ^D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.eval(line)
	}
	pterm.Info.Println("Good bye!")
}

// eval parses one line as a formula and reports its satisfiability. Parse
// errors are reported and do not stop the shell.
func (intp *interp) eval(line string) {
	formula, err := intp.parser.ParseFormula(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracer().Infof("parsed: %s", formula)

	result := solver.Sat(context.Background(), intp.parser.Language(), formula)
	switch result {
	case solver.Sat:
		pterm.Success.Println(fmt.Sprintf("%s  ⟹  sat", formula))
	case solver.Unsat:
		pterm.Info.Println(fmt.Sprintf("%s  ⟹  unsat", formula))
	default:
		pterm.Warning.Println(fmt.Sprintf("%s  ⟹  unknown", formula))
	}
}
