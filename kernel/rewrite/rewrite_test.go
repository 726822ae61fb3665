package rewrite

import (
	"testing"

	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addZeroRight is the rule form of "forall n:Nat, add(n, Zero) = n".
var addZeroRight = Rule{
	Name: "add_0_r",
	Vars: []string{"n"},
	LHS:  term.A("add", term.V("n"), term.C("Zero")),
	RHS:  term.V("n"),
}

func TestMatch(t *testing.T) {
	testCases := []struct {
		name    string
		vars    []string
		pattern term.Expr
		target  term.Expr
		ok      bool
	}{
		{
			"VarBindsSubTerm",
			[]string{"n"},
			term.A("add", term.V("n"), term.C("Zero")),
			term.A("add", term.A("mul", term.V("a"), term.V("b")), term.C("Zero")),
			true,
		},
		{
			"RigidVarMatchesItself",
			nil,
			term.A("add", term.V("n"), term.C("Zero")),
			term.A("add", term.V("n"), term.C("Zero")),
			true,
		},
		{
			"RigidVarRejectsOther",
			nil,
			term.A("add", term.V("n"), term.C("Zero")),
			term.A("add", term.V("m"), term.C("Zero")),
			false,
		},
		{
			"ConstructorMismatch",
			[]string{"n"},
			term.A("add", term.V("n"), term.C("Zero")),
			term.A("add", term.V("x"), term.C("Succ", term.C("Zero"))),
			false,
		},
		{
			"FunctionMismatch",
			[]string{"n"},
			term.A("add", term.V("n"), term.C("Zero")),
			term.A("mul", term.V("x"), term.C("Zero")),
			false,
		},
		{
			"RepeatedVarConsistent",
			[]string{"n"},
			term.A("add", term.V("n"), term.V("n")),
			term.A("add", term.C("Zero"), term.C("Zero")),
			true,
		},
		{
			"RepeatedVarInconsistent",
			[]string{"n"},
			term.A("add", term.V("n"), term.V("n")),
			term.A("add", term.C("Zero"), term.C("Succ", term.C("Zero"))),
			false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Match(tc.vars, tc.pattern, tc.target)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestApply(t *testing.T) {
	goal := proof.Goal{
		Bindings: []proof.Binding{{Name: "m", Type: "Nat"}},
		// add(add(m, Zero), Zero) = m: the rule matches at two different
		// occurrences with two different results.
		LHS: term.A("add", term.A("add", term.V("m"), term.C("Zero")), term.C("Zero")),
		RHS: term.V("m"),
	}

	t.Run("OuterOccurrence", func(t *testing.T) {
		got, err := Apply(goal, addZeroRight, proof.LeftToRight, proof.Left, term.Path{})
		require.NoError(t, err)
		assert.True(t, term.Equal(term.A("add", term.V("m"), term.C("Zero")), got.LHS), "got %s", got.LHS)
	})
	t.Run("InnerOccurrence", func(t *testing.T) {
		got, err := Apply(goal, addZeroRight, proof.LeftToRight, proof.Left, term.Path{0})
		require.NoError(t, err)
		assert.True(t, term.Equal(term.A("add", term.V("m"), term.C("Zero")), got.LHS), "got %s", got.LHS)
	})
	t.Run("RightToLeft", func(t *testing.T) {
		got, err := Apply(goal, addZeroRight, proof.RightToLeft, proof.Right, term.Path{})
		require.NoError(t, err)
		assert.True(t, term.Equal(term.A("add", term.V("m"), term.C("Zero")), got.RHS), "got %s", got.RHS)
	})
	t.Run("ContextPreserved", func(t *testing.T) {
		got, err := Apply(goal, addZeroRight, proof.LeftToRight, proof.Left, term.Path{})
		require.NoError(t, err)
		assert.Equal(t, goal.Bindings, got.Bindings)
		// Input goal untouched.
		assert.True(t, term.Equal(term.A("add", term.A("add", term.V("m"), term.C("Zero")), term.C("Zero")), goal.LHS))
	})
	t.Run("NoMatch", func(t *testing.T) {
		_, err := Apply(goal, addZeroRight, proof.LeftToRight, proof.Left, term.Path{1})
		var noMatch *NoMatchError
		require.ErrorAs(t, err, &noMatch)
		assert.Equal(t, "add_0_r", noMatch.Rule)
	})
	t.Run("InvalidPathPastLeaf", func(t *testing.T) {
		_, err := Apply(goal, addZeroRight, proof.LeftToRight, proof.Right, term.Path{0})
		var invalid *term.InvalidPathError
		require.ErrorAs(t, err, &invalid)
	})
	t.Run("HypothesisRuleIsRigid", func(t *testing.T) {
		hyp := OfHypothesis(proof.Hypothesis{
			Name: "IHn0",
			LHS:  term.A("add", term.V("n0"), term.C("Zero")),
			RHS:  term.V("n0"),
		})
		g := goal.WithTarget(term.A("add", term.V("n0"), term.C("Zero")), term.V("n0"))
		_, err := Apply(g, hyp, proof.LeftToRight, proof.Left, term.Path{})
		require.NoError(t, err)
		// The same hypothesis must not fire on a different variable.
		g2 := goal.WithTarget(term.A("add", term.V("x"), term.C("Zero")), term.V("x"))
		_, err = Apply(g2, hyp, proof.LeftToRight, proof.Left, term.Path{})
		var noMatch *NoMatchError
		require.ErrorAs(t, err, &noMatch)
	})
}
