package analysis

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"gem/parser"
	"gem/scanner"
)

func check(t *testing.T, src string) []string {
	t.Helper()
	prog, err := parser.ParseString(src, scanner.Permissive)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}
	var msgs []string
	for _, err := range Check(prog) {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func wantErrors(t *testing.T, src string, want ...string) {
	t.Helper()
	got := check(t, src)
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Fatalf("Check(%q):\ngot  %q\nwant %q\n%s", src, got, want, strings.Join(diff, "\n"))
	}
}

func TestSampleProgram(t *testing.T) {
	src := `
        var x = "Hello, From x!";
        var y = 3.14;

        func add(x, y) {
            x + y;
        }

        func foo(z, x) {
            var w = 12;

            z * add(x, z);
        }

        func main() {
            foo(bar, 12);
        }
    `
	wantErrors(t, src, "undefined: bar")
}

func TestCleanProgram(t *testing.T) {
	src := `
		func main() { fib(10); }
		func fib(n) {
			if (n) { return fib(n - 1) + fib(n - 2); }
			return n;
		}
		var limit = fib(3) * scale;
		var scale = 2;
	`
	wantErrors(t, src)
}

func TestUndefinedNames(t *testing.T) {
	wantErrors(t, "a + b", "undefined: a", "undefined: b")
	wantErrors(t, "print(1)", "undefined function: print")
}

func TestCallChecks(t *testing.T) {
	src := `
		var n = 1;
		func one(a) { a }
		n(1);
		one();
		one(1, 2);
	`
	wantErrors(t, src,
		"cannot call non-function n",
		"wrong number of arguments in call to one: have 0, want 1",
		"wrong number of arguments in call to one: have 2, want 1",
	)
}

func TestRedeclaration(t *testing.T) {
	wantErrors(t, "var a; func a() {}", `"a" redeclared in this scope`)
	wantErrors(t, "func f(x, x) {}", `"x" redeclared in this scope`)
	// Shadowing an outer name is fine.
	wantErrors(t, "var x; func f(x) { var y = x; }")
}

func TestBlockScoping(t *testing.T) {
	src := `
		func f() {
			w;
			var w = 1;
			if (w) { var inner = w; }
			inner;
		}
	`
	wantErrors(t, src, "undefined: w", "undefined: inner")
}

func TestVarInitializerSeesOuterScope(t *testing.T) {
	wantErrors(t, "func f(a) { var a2 = a * 2; var self = self; }", "undefined: self")
}
