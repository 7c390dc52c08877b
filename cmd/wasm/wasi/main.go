//go:build wasip1

// Command gomathparse-wasm-wasi is the WASI (wasip1) entrypoint for use from
// any language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "expression": "<math>", "variables": { "<name>": <number>, ... } }
//	stdout: { "result": <number>  }    on success
//	        { "error":  "<message>" }    on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o gomathparse.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"expression":"2+3*x","variables":{"x":4}}' | wasmtime gomathparse.wasm
package main

import (
	"encoding/json"
	"os"

	"github.com/sandrolain/gomathparse"
)

type request struct {
	Expression string             `json:"expression"`
	Variables  map[string]float64 `json:"variables,omitempty"`
}

type response struct {
	Result *float64 `json:"result,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Error: "invalid request JSON: " + err.Error()}, 1)
	}

	s := gomathparse.NewSolver()
	s.SetVariables(req.Variables)

	result, err := s.Solve(req.Expression)
	if err != nil {
		writeResponse(response{Error: err.Error()}, 1)
	}

	writeResponse(response{Result: &result}, 0)
}
