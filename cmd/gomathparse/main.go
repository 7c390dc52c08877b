// Command gomathparse evaluates arithmetic expressions from the command line.
//
// Each positional argument is solved as one expression:
//
//	gomathparse "2+3*4" "sin(1)^2"
//
// Variables are bound with --var (repeatable; the value is itself an
// expression):
//
//	gomathparse --var x=3 --var "y=x^2" "x+y"
//
// With no arguments it starts a REPL reading one expression per line;
// inside the REPL, ":set name = expr" binds a variable and ":quit" exits.
// --ast prints the parsed tree of each expression before its result.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/sandrolain/gomathparse"
)

var cli struct {
	Vars        []string `name:"var" short:"v" placeholder:"NAME=EXPR" help:"Bind a variable; the value is evaluated as an expression."`
	AST         bool     `name:"ast" help:"Print the parsed tree of each expression."`
	Format      string   `name:"fmt" default:"%g" help:"Result formatting verb."`
	Expressions []string `arg:"" optional:"" name:"expr" help:"Expressions to solve (REPL if omitted)."`
}

func main() {
	kctx := kong.Parse(&cli, kong.Description("Evaluate arithmetic expressions with configurable operators, variables and functions."))

	s := gomathparse.NewSolver()
	for _, def := range cli.Vars {
		_, _, err := bind(s, def)
		kctx.FatalIfErrorf(err)
	}

	if len(cli.Expressions) == 0 {
		repl(s)
		return
	}

	for _, source := range cli.Expressions {
		if err := solve(s, source); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// bind parses a NAME=EXPR definition, solves the value expression and
// binds the result on the solver.
func bind(s *gomathparse.Solver, def string) (string, float64, error) {
	name, expr, ok := strings.Cut(def, "=")
	if !ok {
		return "", 0, fmt.Errorf("variable definitions must be \"name=value\", not %q", def)
	}
	name = strings.TrimSpace(name)
	value, err := s.Solve(strings.TrimSpace(expr))
	if err != nil {
		return "", 0, fmt.Errorf("setting %s: %w", name, err)
	}
	s.AddVariable(name, value)
	return name, value, nil
}

func solve(s *gomathparse.Solver, source string) error {
	if cli.AST {
		expr, err := s.Parse(source)
		if err != nil {
			return err
		}
		repr.Println(expr.AST())
	}
	result, err := s.Solve(source)
	if err != nil {
		return err
	}
	fmt.Printf(cli.Format+"\n", result)
	return nil
}

func repl(s *gomathparse.Solver) {
	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case line == ":quit", line == ":q":
			return
		case strings.HasPrefix(line, ":set "):
			name, value, err := bind(s, strings.TrimPrefix(line, ":set "))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Printf("%s = %g\n", name, value)
			}
		default:
			if err := solve(s, line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		fmt.Print("> ")
	}
}
