package prelude

import (
	"testing"

	"github.com/induct-lang/induct/kernel/driver"
	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaded(t *testing.T) *driver.Kernel {
	t.Helper()
	k := driver.New(nil)
	require.NoError(t, Load(k))
	return k
}

// nat builds the closed Peano numeral for n.
func nat(n int) term.Expr {
	e := term.C("Zero")
	for i := 0; i < n; i++ {
		e = term.C("Succ", e)
	}
	return e
}

func TestLoad(t *testing.T) {
	k := loaded(t)

	var names []string
	for _, e := range Lemmas() {
		names = append(names, e.Statement.Name)
	}
	assert.Equal(t, names, k.Registry().Names(), "library registered in declared order")
}

// Every recorded proof must replay against a registry truncated to exactly
// the lemma's declared dependencies.
func TestReproducibility(t *testing.T) {
	k := loaded(t)
	for _, name := range k.Registry().Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, k.CheckProof(name))
		})
	}
}

func TestDependencies(t *testing.T) {
	k := loaded(t)
	testCases := []struct {
		lemma string
		deps  []string
	}{
		{"add_0_r", nil},
		{"add_succ_r", nil},
		{"add_comm", []string{"add_0_r", "add_succ_r"}},
		{"mul_succ_r", []string{"add_assoc", "add_comm"}},
		{"mul_comm", []string{"mul_0_r", "mul_succ_r"}},
		{"bin_to_nat_incr", []string{"add_succ_r"}},
		{"nat_bin_nat", []string{"bin_to_nat_incr"}},
		{"bin_to_nat_normalize", []string{"double_bin_to_nat"}},
	}
	for _, tc := range testCases {
		t.Run(tc.lemma, func(t *testing.T) {
			l, err := k.Lookup(tc.lemma)
			require.NoError(t, err)
			assert.Equal(t, tc.deps, l.Deps)
		})
	}
}

// The defined functions compute: spot checks on closed terms.
func TestComputation(t *testing.T) {
	k := loaded(t)
	funcs := k.Funcs()

	bin := func(digits ...string) term.Expr {
		// digits are given least significant first.
		e := term.C("Z")
		for i := len(digits) - 1; i >= 0; i-- {
			e = term.C(digits[i], e)
		}
		return e
	}

	testCases := []struct {
		name string
		in   term.Expr
		exp  term.Expr
	}{
		{"Add", term.A("add", nat(3), nat(4)), nat(7)},
		{"Mul", term.A("mul", nat(3), nat(4)), nat(12)},
		{"Sub", term.A("sub", nat(5), nat(2)), nat(3)},
		{"SubTruncates", term.A("sub", nat(2), nat(5)), nat(0)},
		{"LebTrue", term.A("leb", nat(2), nat(3)), term.C("True")},
		{"LebFalse", term.A("leb", nat(3), nat(2)), term.C("False")},
		{"EqbTrue", term.A("eqb", nat(3), nat(3)), term.C("True")},
		{"EqbFalse", term.A("eqb", nat(3), nat(4)), term.C("False")},
		// B1(B0(B1(Z))) is 1*1 + 0*2 + 1*4 = 5, least significant first.
		{"BinToNat", term.A("bin_to_nat", bin("B1", "B0", "B1")), nat(5)},
		{"Incr", term.A("bin_to_nat", term.A("incr", bin("B1", "B0", "B1"))), nat(6)},
		{"RoundTrip", term.A("bin_to_nat", term.A("nat_to_bin", nat(9))), nat(9)},
		// The reverse round trip drops the non-canonical leading zeros.
		{"NormalizeLeadingZeros",
			term.A("normalize", bin("B1", "B0", "B0")),
			bin("B1")},
		{"NormalizeValue",
			term.A("bin_to_nat", term.A("normalize", bin("B1", "B0", "B0"))),
			term.A("bin_to_nat", bin("B1", "B0", "B0"))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := funcs.Normalize(tc.in)
			exp := funcs.Normalize(tc.exp)
			assert.True(t, term.Equal(exp, got), "expected %s, got %s", exp, got)
		})
	}
}

// The recorded increment proof has one induction with three branches, and
// the B1 branch leans on the previously proved additive-successor lemma.
func TestBinToNatIncrShape(t *testing.T) {
	k := loaded(t)
	l, err := k.Lookup("bin_to_nat_incr")
	require.NoError(t, err)

	inducts := 0
	usesAddSuccR := false
	for _, s := range l.Proof.Steps {
		switch step := s.(type) {
		case proof.Induct:
			inducts++
		case proof.Rewrite:
			if step.Rule == "add_succ_r" {
				usesAddSuccR = true
			}
		}
	}
	assert.Equal(t, 1, inducts)
	assert.True(t, usesAddSuccR)
	assert.Equal(t, []string{"add_succ_r"}, l.Deps)
}

// Loading twice into the same kernel must fail on the first duplicate and
// leave the registry unchanged past the already-loaded library.
func TestLoadTwice(t *testing.T) {
	k := loaded(t)
	before := k.Registry().Names()
	require.Error(t, Load(k))
	assert.Equal(t, before, k.Registry().Names())
}
