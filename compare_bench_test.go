// Comparison benchmarks against expr-lang/expr, a general-purpose
// expression engine, as an in-process reference point.
//
// Run with:
//
//	go test -bench=Benchmark -benchmem -run=TestAgainstExpr .
package gomathparse_test

import (
	"math"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sandrolain/gomathparse"
	"github.com/sandrolain/gomathparse/pkg/evaluator"
)

// benchCases are expressions both engines accept with identical meaning.
// ^ is left out: expr-lang has no power operator with these semantics.
var benchCases = []struct {
	name   string
	source string
	vars   map[string]float64
	want   float64
}{
	{"constant folding shape", "2.0+3.0*4.0", nil, 14},
	{"variables", "x*y+z", map[string]float64{"x": 2, "y": 3, "z": 4}, 10},
	{"nested parens", "((1.0+2.0)*(3.0+4.0))/7.0", nil, 3},
	{"deep chain", "1.0+2.0+3.0+4.0+5.0+6.0+7.0+8.0+9.0+10.0", nil, 55},
}

func exprEnv(vars map[string]float64) map[string]interface{} {
	env := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		env[k] = v
	}
	return env
}

// TestAgainstExpr cross-checks both engines on the shared corpus before
// trusting the benchmark numbers.
func TestAgainstExpr(t *testing.T) {
	for _, test := range benchCases {
		t.Run(test.name, func(t *testing.T) {
			mine, err := gomathparse.Parse(test.source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got, err := evaluator.Evaluate(mine, evaluator.WithVariables(test.vars))
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}

			program, err := expr.Compile(test.source, expr.Env(exprEnv(test.vars)))
			if err != nil {
				t.Fatalf("expr compile: %v", err)
			}
			out, err := expr.Run(program, exprEnv(test.vars))
			if err != nil {
				t.Fatalf("expr run: %v", err)
			}
			ref, ok := out.(float64)
			if !ok {
				t.Fatalf("expr result %v (%T) is not float64", out, out)
			}

			if math.Abs(got-ref) > 1e-12 || math.Abs(got-test.want) > 1e-12 {
				t.Errorf("engines disagree on %q: mine=%g expr=%g want=%g",
					test.source, got, ref, test.want)
			}
		})
	}
}

func BenchmarkSolveParse(b *testing.B) {
	for _, test := range benchCases {
		b.Run(test.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := gomathparse.Parse(test.source); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkExprParse(b *testing.B) {
	for _, test := range benchCases {
		b.Run(test.name, func(b *testing.B) {
			b.ReportAllocs()
			env := exprEnv(test.vars)
			for i := 0; i < b.N; i++ {
				if _, err := expr.Compile(test.source, expr.Env(env)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolveEval(b *testing.B) {
	for _, test := range benchCases {
		b.Run(test.name, func(b *testing.B) {
			compiled, err := gomathparse.Parse(test.source)
			if err != nil {
				b.Fatal(err)
			}
			eval := evaluator.New(evaluator.WithVariables(test.vars))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := eval.Evaluate(compiled); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkExprEval(b *testing.B) {
	for _, test := range benchCases {
		b.Run(test.name, func(b *testing.B) {
			env := exprEnv(test.vars)
			program, err := expr.Compile(test.source, expr.Env(env))
			if err != nil {
				b.Fatal(err)
			}
			machine := vm.VM{}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := machine.Run(program, env); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolverCached(b *testing.B) {
	s := gomathparse.NewSolver()
	s.AddVariable("x", 2)
	s.AddVariable("y", 3)
	s.AddVariable("z", 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve("x*y+z"); err != nil {
			b.Fatal(err)
		}
	}
}
