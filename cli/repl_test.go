package cli

import (
	"bytes"
	"strings"
	"testing"

	"gem/scanner"
)

func evalLines(t *testing.T, r *repl, lines ...string) string {
	t.Helper()
	var buf bytes.Buffer
	r.out = &buf
	for _, line := range lines {
		if !r.eval(line) {
			t.Fatalf("eval(%q) ended the session", line)
		}
	}
	return buf.String()
}

func TestREPLPrintsTrees(t *testing.T) {
	out := evalLines(t, &repl{}, "a + b * c", "var z;")
	for _, want := range []string{"(a + (b * c))", "variable z(0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestREPLReportsErrors(t *testing.T) {
	out := evalLines(t, &repl{}, "func (x) {}")
	if !strings.Contains(out, "expected function name, got '('") {
		t.Errorf("output %q missing syntax error", out)
	}
}

func TestREPLCommands(t *testing.T) {
	r := &repl{mode: scanner.Strict}
	out := evalLines(t, r, ":tokens var x", ":check", "f(1)", ":nope", ":help")
	for _, want := range []string{
		"'var'\n",
		"identifier\tx\n",
		"end of input\n",
		"name resolution on",
		"undefined function: f",
		"unknown command :nope",
		":quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if r.eval(":quit") {
		t.Error(":quit did not end the session")
	}
}
