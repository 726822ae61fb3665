package registry

import (
	"fmt"
	"testing"

	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lemma(name string, deps ...string) proof.Lemma {
	return proof.Lemma{
		Name:     name,
		Bindings: []proof.Binding{{Name: "n", Type: "Nat"}},
		LHS:      term.A("add", term.V("n"), term.C("Zero")),
		RHS:      term.V("n"),
		Deps:     deps,
	}
}

func TestRegister(t *testing.T) {
	t.Run("DependencyOrder", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(lemma("add_0_r")))
		require.NoError(t, r.Register(lemma("add_comm", "add_0_r")))
		assert.Equal(t, []string{"add_0_r", "add_comm"}, r.Names())
	})
	t.Run("DuplicateName", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(lemma("add_0_r")))
		err := r.Register(lemma("add_0_r"))
		var dup *DuplicateNameError
		require.ErrorAs(t, err, &dup)
	})
	t.Run("UnknownDependency", func(t *testing.T) {
		r := New()
		err := r.Register(lemma("add_comm", "add_0_r"))
		var unknown *UnknownDependencyError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "add_0_r", unknown.Dependency)
		assert.Empty(t, r.Names(), "failed registration leaves the table unchanged")
	})
}

func TestLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(lemma("add_0_r")))

	got, err := r.Lookup("add_0_r")
	require.NoError(t, err)
	assert.Equal(t, "add_0_r", got.Name)

	_, err = r.Lookup("mul_comm")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "mul_comm", notFound.Name)
}

func TestAllRewriteRules(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(lemma("add_0_r")))
	require.NoError(t, r.Register(lemma("add_comm", "add_0_r")))

	rules := r.AllRewriteRules()
	require.Len(t, rules, 4, "both orientations per lemma")
	assert.Equal(t, "add_0_r", rules[0].Rule.Name)
	assert.Equal(t, proof.LeftToRight, rules[0].Dir)
	assert.Equal(t, proof.RightToLeft, rules[1].Dir)
	assert.Equal(t, "add_comm", rules[2].Rule.Name)
	assert.Equal(t, []string{"n"}, rules[0].Rule.Vars)
}

func TestSnapshot(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(lemma("add_0_r")))
	snap := r.Snapshot()

	require.NoError(t, r.Register(lemma("add_comm", "add_0_r")))

	t.Run("Isolation", func(t *testing.T) {
		assert.Equal(t, []string{"add_0_r"}, snap.Names())
		_, err := snap.Lookup("add_comm")
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Len(t, snap.AllRewriteRules(), 2)
	})
	t.Run("Truncated", func(t *testing.T) {
		full := r.Snapshot()
		trunc, err := full.Truncated([]string{"add_0_r"})
		require.NoError(t, err)
		assert.Equal(t, []string{"add_0_r"}, trunc.Names())

		_, err = full.Truncated([]string{"mul_comm"})
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})
}

// TestConcurrentAccess hammers one registry from concurrent writers and
// readers: readers must never observe a partially inserted lemma, and every
// snapshot must be a consistent prefix-plus-selection of the final table.
func TestConcurrentAccess(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(lemma("base")))

	var eg errgroup.Group
	for w := 0; w < 4; w++ {
		w := w
		eg.Go(func() error {
			for i := 0; i < 50; i++ {
				if err := r.Register(lemma(fmt.Sprintf("lemma_%d_%d", w, i), "base")); err != nil {
					return err
				}
			}
			return nil
		})
	}
	for g := 0; g < 4; g++ {
		eg.Go(func() error {
			for i := 0; i < 100; i++ {
				snap := r.Snapshot()
				names := snap.Names()
				if !slices.Contains(names, "base") {
					return fmt.Errorf("snapshot lost the base lemma")
				}
				for _, n := range names {
					if _, err := snap.Lookup(n); err != nil {
						return err
					}
				}
				if len(snap.AllRewriteRules()) != 2*len(names) {
					return fmt.Errorf("snapshot rules out of step with names")
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Len(t, r.Names(), 1+4*50)
}
