package main

import (
	"fmt"
	"io"

	"github.com/marcodamonte/templates/numeric"
	"github.com/marcodamonte/templates/specialize"
)

// demo is one self-contained block of output, selected by name.
type demo struct {
	name  string
	title string
	run   func(w io.Writer) error
}

var demos = []demo{
	{"specialize", "Specialization — generic vs per-length implementations", demoSpecialize},
	{"numeric", "Constrained numeric wrapper — injected binary operations", demoNumeric},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

func demoNames() []string {
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.name
	}
	return names
}

func section(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
	return err
}

// errWriter remembers the first write error and turns later writes into
// no-ops, so a demo can print line after line and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, args...)
}

// ── Specialization ───────────────────────────────────────────────────────────

// resolveAndWrite reports which implementation the table picked for s, then
// runs it.
func resolveAndWrite[T any](w io.Writer, table *specialize.Table[T], s []T) error {
	f, special := table.Resolve(len(s))
	kind := "generic"
	if special {
		kind = "specialized"
	}
	if _, err := fmt.Fprintf(w, "  %T len=%d → %s: ", s, len(s), kind); err != nil {
		return err
	}
	return f(w, s)
}

func demoSpecialize(w io.Writer) error {
	// Every specialization prints the same way; only the resolution differs.
	ints := specialize.New(specialize.Write[int]).
		Specialize(3, specialize.Write[int]).
		Specialize(2, specialize.Write[int])
	floats := specialize.New(specialize.Write[float64]).
		Specialize(2, specialize.Write[float64])
	strs := specialize.New(specialize.Write[string])

	// A fixed-size array goes through its slice view.
	arr := [3]int{10, 20, 30}

	steps := []func() error{
		func() error { return resolveAndWrite(w, ints, []int{1, 2, 3}) },
		func() error { return resolveAndWrite(w, ints, []int{4, 5}) },
		func() error { return resolveAndWrite(w, floats, []float64{0.5, 3.5}) },
		func() error { return resolveAndWrite(w, ints, []int{6, 7, 8, 9}) },
		func() error { return resolveAndWrite(w, strs, []string{"go", "zig"}) },
		func() error {
			_, err := fmt.Fprintf(w, "  []int specializations: %v\n", ints.Lengths())
			return err
		},
		func() error { return resolveAndWrite(w, ints, arr[:]) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// ── Constrained numeric wrapper ──────────────────────────────────────────────

func demoNumeric(w io.Writer) error {
	ew := &errWriter{w: w}

	three := numeric.New(3)
	ew.println("  New(3).Get() =", three.Get())

	custom := func(a, b int) int { return (a + b) * b * a }
	cases := []struct {
		label string
		op    numeric.Op[int, int]
	}{
		{"Add", numeric.Add[int]},
		{"Sub", numeric.Sub[int]},
		{"Mul", numeric.Mul[int]},
		{"Div", numeric.Div[int]},
		{"(a+b)*b*a", custom},
	}
	for _, c := range cases {
		ew.printf("  New(3).Combine(%s, 3) = %v\n", c.label, three.Combine(c.op, 3))
	}

	ew.println("  New(2.5).Combine(Mul, 4) =", numeric.New(2.5).Combine(numeric.Mul, 4))

	shift := func(a int64, b uint8) int64 { return a << b }
	ew.println("  With(New(int64(10)), shift, uint8(2)) =", numeric.With(numeric.New(int64(10)), shift, uint8(2)))

	ew.println("  New(3) after combining =", three)
	return ew.err
}
