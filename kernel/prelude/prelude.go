// Package prelude ships the two demonstration domains the kernel exists
// for: Peano naturals and little-endian binary numbers, plus Booleans for
// the comparison functions. Load defines the types and functions and then
// proves the standard lemma library in dependency order.
package prelude

import (
	"github.com/induct-lang/induct/kernel/driver"
	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
)

// An Entry pairs a lemma statement with the script that proves it.
type Entry struct {
	Statement proof.Statement
	Script    proof.Script
}

// Load populates a fresh kernel with the prelude domains and proves every
// lemma of the library, in order.
func Load(k *driver.Kernel) error {
	if err := DefineDomains(k); err != nil {
		return err
	}
	for _, e := range Lemmas() {
		if _, err := k.RunProof(e.Statement, e.Script); err != nil {
			return err
		}
	}
	return nil
}

// DefineDomains declares the prelude types and functions without proving
// anything.
func DefineDomains(k *driver.Kernel) error {
	if err := defineTypes(k); err != nil {
		return err
	}
	return defineFuncs(k)
}

func defineTypes(k *driver.Kernel) error {
	types := []struct {
		name  string
		ctors []term.Constructor
	}{
		{"Nat", []term.Constructor{
			{Name: "Zero"},
			{Name: "Succ", Fields: []term.Field{{Name: "pred", Type: "Nat"}}},
		}},
		{"Boolean", []term.Constructor{
			{Name: "True"},
			{Name: "False"},
		}},
		{"Bin", []term.Constructor{
			{Name: "Z"},
			{Name: "B0", Fields: []term.Field{{Name: "rest", Type: "Bin"}}},
			{Name: "B1", Fields: []term.Field{{Name: "rest", Type: "Bin"}}},
		}},
	}
	for _, t := range types {
		if _, err := k.DefineType(t.name, t.ctors); err != nil {
			return err
		}
	}
	return nil
}

func defineFuncs(k *driver.Kernel) error {
	v, c, a := term.V, term.C, term.A
	nat2 := []term.Param{{Name: "n", Type: "Nat"}, {Name: "m", Type: "Nat"}}

	funcs := []struct {
		name   string
		params []term.Param
		result string
		match  int
		cases  []term.Case
	}{
		{"add", nat2, "Nat", 0, []term.Case{
			{Con: "Zero", Body: v("m")},
			{Con: "Succ", Fields: []string{"p"}, Body: c("Succ", a("add", v("p"), v("m")))},
		}},
		{"mul", nat2, "Nat", 0, []term.Case{
			{Con: "Zero", Body: c("Zero")},
			{Con: "Succ", Fields: []string{"p"}, Body: a("add", v("m"), a("mul", v("p"), v("m")))},
		}},
		{"pred", []term.Param{{Name: "n", Type: "Nat"}}, "Nat", 0, []term.Case{
			{Con: "Zero", Body: c("Zero")},
			{Con: "Succ", Fields: []string{"p"}, Body: v("p")},
		}},
		// Truncated subtraction recurses on its second argument so that a
		// single pattern match suffices.
		{"sub", nat2, "Nat", 1, []term.Case{
			{Con: "Zero", Body: v("n")},
			{Con: "Succ", Fields: []string{"p"}, Body: a("pred", a("sub", v("n"), v("p")))},
		}},
		{"iszero", []term.Param{{Name: "n", Type: "Nat"}}, "Boolean", 0, []term.Case{
			{Con: "Zero", Body: c("True")},
			{Con: "Succ", Fields: []string{"p"}, Body: c("False")},
		}},
		{"negb", []term.Param{{Name: "a", Type: "Boolean"}}, "Boolean", 0, []term.Case{
			{Con: "True", Body: c("False")},
			{Con: "False", Body: c("True")},
		}},
		{"andb", []term.Param{{Name: "a", Type: "Boolean"}, {Name: "b", Type: "Boolean"}}, "Boolean", 0, []term.Case{
			{Con: "True", Body: v("b")},
			{Con: "False", Body: c("False")},
		}},
		{"orb", []term.Param{{Name: "a", Type: "Boolean"}, {Name: "b", Type: "Boolean"}}, "Boolean", 0, []term.Case{
			{Con: "True", Body: c("True")},
			{Con: "False", Body: v("b")},
		}},
		{"leb", nat2, "Boolean", 0, []term.Case{
			{Con: "Zero", Body: c("True")},
			{Con: "Succ", Fields: []string{"p"}, Body: a("iszero", a("sub", c("Succ", v("p")), v("m")))},
		}},
		{"eqb", nat2, "Boolean", 0, []term.Case{
			{Con: "Zero", Body: a("iszero", v("m"))},
			{Con: "Succ", Fields: []string{"p"}, Body: a("andb",
				a("leb", c("Succ", v("p")), v("m")),
				a("leb", v("m"), c("Succ", v("p"))))},
		}},
		{"incr", []term.Param{{Name: "b", Type: "Bin"}}, "Bin", 0, []term.Case{
			{Con: "Z", Body: c("B1", c("Z"))},
			{Con: "B0", Fields: []string{"r"}, Body: c("B1", v("r"))},
			{Con: "B1", Fields: []string{"r"}, Body: c("B0", a("incr", v("r")))},
		}},
		{"bin_to_nat", []term.Param{{Name: "b", Type: "Bin"}}, "Nat", 0, []term.Case{
			{Con: "Z", Body: c("Zero")},
			{Con: "B0", Fields: []string{"r"}, Body: a("add", a("bin_to_nat", v("r")), a("bin_to_nat", v("r")))},
			{Con: "B1", Fields: []string{"r"}, Body: c("Succ", a("add", a("bin_to_nat", v("r")), a("bin_to_nat", v("r"))))},
		}},
		{"nat_to_bin", []term.Param{{Name: "n", Type: "Nat"}}, "Bin", 0, []term.Case{
			{Con: "Zero", Body: c("Z")},
			{Con: "Succ", Fields: []string{"p"}, Body: a("incr", a("nat_to_bin", v("p")))},
		}},
		{"double_bin", []term.Param{{Name: "b", Type: "Bin"}}, "Bin", 0, []term.Case{
			{Con: "Z", Body: c("Z")},
			{Con: "B0", Fields: []string{"r"}, Body: c("B0", c("B0", v("r")))},
			{Con: "B1", Fields: []string{"r"}, Body: c("B0", c("B1", v("r")))},
		}},
		// Strips non-canonical leading zero digits: converting a binary
		// value to a natural and back yields the normalized form, not the
		// original.
		{"normalize", []term.Param{{Name: "b", Type: "Bin"}}, "Bin", 0, []term.Case{
			{Con: "Z", Body: c("Z")},
			{Con: "B0", Fields: []string{"r"}, Body: a("double_bin", a("normalize", v("r")))},
			{Con: "B1", Fields: []string{"r"}, Body: c("B1", a("normalize", v("r")))},
		}},
	}
	for _, f := range funcs {
		if _, err := k.DefineFunction(f.name, f.params, f.result, f.match, f.cases); err != nil {
			return err
		}
	}
	return nil
}

// Lemmas returns the prelude lemma library in dependency order: every entry
// only rewrites with lemmas that appear before it.
func Lemmas() []Entry {
	v, c, a := term.V, term.C, term.A
	n := proof.Binding{Name: "n", Type: "Nat"}
	m := proof.Binding{Name: "m", Type: "Nat"}
	p := proof.Binding{Name: "p", Type: "Nat"}
	b := proof.Binding{Name: "b", Type: "Bin"}
	bl := proof.Binding{Name: "a", Type: "Boolean"}

	rw := func(rule string, dir proof.Direction, side proof.Side, path ...int) proof.Step {
		return proof.Rewrite{Rule: rule, Dir: dir, Side: side, Path: term.Path(path)}
	}
	l2r, r2l := proof.LeftToRight, proof.RightToLeft
	lhs, rhs := proof.Left, proof.Right

	return []Entry{
		{
			// add(n, Zero) = n: base closes by reduction, step by one use
			// of the induction hypothesis.
			Statement: proof.Statement{
				Name:     "add_0_r",
				Bindings: []proof.Binding{n},
				LHS:      a("add", v("n"), c("Zero")),
				RHS:      v("n"),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				proof.Close{},
				rw("IHn0", l2r, lhs, 0),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "add_succ_r",
				Bindings: []proof.Binding{n, m},
				LHS:      a("add", v("n"), c("Succ", v("m"))),
				RHS:      c("Succ", a("add", v("n"), v("m"))),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				proof.Close{},
				rw("IHn0", l2r, lhs, 0),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "add_comm",
				Bindings: []proof.Binding{n, m},
				LHS:      a("add", v("n"), v("m")),
				RHS:      a("add", v("m"), v("n")),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				rw("add_0_r", l2r, rhs),
				proof.Close{},
				rw("IHn0", l2r, lhs, 0),
				rw("add_succ_r", l2r, rhs),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "add_assoc",
				Bindings: []proof.Binding{n, m, p},
				LHS:      a("add", a("add", v("n"), v("m")), v("p")),
				RHS:      a("add", v("n"), a("add", v("m"), v("p"))),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				proof.Close{},
				rw("IHn0", l2r, lhs, 0),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "mul_0_r",
				Bindings: []proof.Binding{n},
				LHS:      a("mul", v("n"), c("Zero")),
				RHS:      c("Zero"),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				proof.Close{},
				rw("IHn0", l2r, lhs),
				proof.Close{},
			},
		},
		{
			// mul(n, Succ(m)) = add(n, mul(n, m)): the step case shuffles
			// add(m, add(n0, x)) into add(n0, add(m, x)) by reassociating,
			// commuting the inner pair, and reassociating back.
			Statement: proof.Statement{
				Name:     "mul_succ_r",
				Bindings: []proof.Binding{n, m},
				LHS:      a("mul", v("n"), c("Succ", v("m"))),
				RHS:      a("add", v("n"), a("mul", v("n"), v("m"))),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				proof.Close{},
				rw("IHn0", l2r, lhs, 0, 1),
				rw("add_assoc", r2l, lhs, 0),
				rw("add_comm", l2r, lhs, 0, 0),
				rw("add_assoc", l2r, lhs, 0),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "mul_comm",
				Bindings: []proof.Binding{n, m},
				LHS:      a("mul", v("n"), v("m")),
				RHS:      a("mul", v("m"), v("n")),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				rw("mul_0_r", l2r, rhs),
				proof.Close{},
				rw("mul_succ_r", l2r, rhs),
				rw("IHn0", l2r, lhs, 1),
				proof.Close{},
			},
		},
		{
			// Induction over a type with no recursive fields degenerates
			// into case analysis: two branches, no hypotheses.
			Statement: proof.Statement{
				Name:     "negb_involutive",
				Bindings: []proof.Binding{bl},
				LHS:      a("negb", a("negb", v("a"))),
				RHS:      v("a"),
			},
			Script: proof.Script{
				proof.Induct{Var: "a"},
				proof.Close{},
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "andb_true_r",
				Bindings: []proof.Binding{bl},
				LHS:      a("andb", v("a"), c("True")),
				RHS:      v("a"),
			},
			Script: proof.Script{
				proof.Induct{Var: "a"},
				proof.Close{},
				proof.Close{},
			},
		},
		{
			// The B1 branch doubles the incremented tail, so it leans on
			// add_succ_r after rewriting with the hypothesis twice.
			Statement: proof.Statement{
				Name:     "bin_to_nat_incr",
				Bindings: []proof.Binding{b},
				LHS:      a("bin_to_nat", a("incr", v("b"))),
				RHS:      c("Succ", a("bin_to_nat", v("b"))),
			},
			Script: proof.Script{
				proof.Induct{Var: "b"},
				proof.Close{},
				proof.Close{},
				rw("IHb0", l2r, lhs, 0),
				rw("IHb0", l2r, lhs, 0, 1),
				rw("add_succ_r", l2r, lhs, 0),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "nat_bin_nat",
				Bindings: []proof.Binding{n},
				LHS:      a("bin_to_nat", a("nat_to_bin", v("n"))),
				RHS:      v("n"),
			},
			Script: proof.Script{
				proof.Induct{Var: "n"},
				proof.Close{},
				rw("bin_to_nat_incr", l2r, lhs),
				rw("IHn0", l2r, lhs, 0),
				proof.Close{},
			},
		},
		{
			Statement: proof.Statement{
				Name:     "double_bin_to_nat",
				Bindings: []proof.Binding{b},
				LHS:      a("bin_to_nat", a("double_bin", v("b"))),
				RHS:      a("add", a("bin_to_nat", v("b")), a("bin_to_nat", v("b"))),
			},
			Script: proof.Script{
				proof.Induct{Var: "b"},
				proof.Close{},
				proof.Close{},
				proof.Close{},
			},
		},
		{
			// Normalization preserves the value: the reverse round trip
			// nat_to_bin(bin_to_nat(b)) lands on normalize(b), and this is
			// the value-level half of that story.
			Statement: proof.Statement{
				Name:     "bin_to_nat_normalize",
				Bindings: []proof.Binding{b},
				LHS:      a("bin_to_nat", a("normalize", v("b"))),
				RHS:      a("bin_to_nat", v("b")),
			},
			Script: proof.Script{
				proof.Induct{Var: "b"},
				proof.Close{},
				rw("double_bin_to_nat", l2r, lhs),
				rw("IHb0", l2r, lhs, 0),
				rw("IHb0", l2r, lhs, 1),
				proof.Close{},
				rw("IHb0", l2r, lhs, 0, 0),
				rw("IHb0", l2r, lhs, 0, 1),
				proof.Close{},
			},
		},
	}
}
