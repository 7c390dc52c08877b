// Package functions provides the built-in math function table and the
// types for registering custom functions.
//
// Users of gomathparse can define their own functions and register them via
// [gomathparse.AddFunction], making them callable inside expressions:
//
//	solver.AddFunction("double", func(args ...float64) (float64, error) {
//	    return args[0] * 2, nil
//	})
//	result, _ := solver.Solve("double(21)") // 42
//
// Names absent from the user table fall back to the built-in defaults.
package functions

import (
	"fmt"
	"math"

	"github.com/sandrolain/gomathparse/pkg/types"
)

// Function is the signature for functions callable from expressions. args
// contains the evaluated arguments in source order.
type Function func(args ...float64) (float64, error)

// Def describes a named function for bulk registration.
type Def struct {
	// Name is the function name as it appears inside expressions.
	Name string
	// Fn is the implementation.
	Fn Function
}

// argErr reports a call with an unsupported argument count.
func argErr(name string, want string, got int) error {
	return types.NewError(types.ErrArgumentCount,
		fmt.Sprintf("%s expects %s argument(s), got %d", name, want, got), -1)
}

// monadic wraps a one-argument math function.
func monadic(name string, f func(float64) float64) Function {
	return func(args ...float64) (float64, error) {
		if len(args) != 1 {
			return 0, argErr(name, "1", len(args))
		}
		return f(args[0]), nil
	}
}

// builtins is the default function table: trig, log, floor/ceil, abs,
// sqrt, exp, rad/deg. Constructed once at startup and never mutated;
// instances that don't override a name share it read-only.
var builtins = map[string]Function{
	"sin":   monadic("sin", math.Sin),
	"cos":   monadic("cos", math.Cos),
	"tan":   monadic("tan", math.Tan),
	"asin":  monadic("asin", math.Asin),
	"acos":  monadic("acos", math.Acos),
	"atan":  monadic("atan", math.Atan),
	"floor": monadic("floor", math.Floor),
	"ceil":  monadic("ceil", math.Ceil),
	"abs":   monadic("abs", math.Abs),
	"sqrt":  monadic("sqrt", math.Sqrt),
	"log":   logFn,
	"log10": monadic("log10", math.Log10),
	"exp":   monadic("exp", math.Exp),
	"rad":   monadic("rad", radians),
	"deg":   monadic("deg", degrees),
}

// logFn is the natural logarithm with one argument, or the logarithm in an
// arbitrary base with two: log(x, base) = ln(x) / ln(base).
func logFn(args ...float64) (float64, error) {
	switch len(args) {
	case 1:
		return math.Log(args[0]), nil
	case 2:
		return math.Log(args[0]) / math.Log(args[1]), nil
	default:
		return 0, argErr("log", "1 or 2", len(args))
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Builtin returns the built-in function with the given name, or (nil, false).
func Builtin(name string) (Function, bool) {
	fn, ok := builtins[name]
	return fn, ok
}

// Builtins returns a copy of the default function table.
func Builtins() map[string]Function {
	m := make(map[string]Function, len(builtins))
	for k, v := range builtins {
		m[k] = v
	}
	return m
}
