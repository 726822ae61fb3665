// Package rewrite applies proved equations to goals. A rule is matched
// against the sub-term at an explicit occurrence path; on success the
// correspondingly substituted other side replaces that sub-term. Matching is
// first-order and one-sided: only the rule's own quantified variables bind,
// everything in the goal is rigid.
package rewrite

import (
	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
	u "github.com/rjNemo/underscore"
)

// A Rule is an equation usable for rewriting. Vars lists the quantified
// variable names that may bind during matching; a rule built from a local
// induction hypothesis has none, so its variables must match literally.
type Rule struct {
	Name string
	Vars []string
	LHS  term.Expr
	RHS  term.Expr
}

// Of builds the rule form of a registry lemma.
func Of(l proof.Lemma) Rule {
	return Rule{
		Name: l.Name,
		Vars: u.Map(l.Bindings, func(b proof.Binding) string { return b.Name }),
		LHS:  l.LHS,
		RHS:  l.RHS,
	}
}

// OfHypothesis builds the rule form of a goal-local induction hypothesis.
func OfHypothesis(h proof.Hypothesis) Rule {
	return Rule{Name: h.Name, LHS: h.LHS, RHS: h.RHS}
}

// Oriented returns the pattern to match and the replacement to substitute
// for the given direction.
func (r Rule) Oriented(dir proof.Direction) (pattern, replacement term.Expr) {
	if dir == proof.RightToLeft {
		return r.RHS, r.LHS
	}
	return r.LHS, r.RHS
}

// Match unifies a rule pattern against a target expression. Pattern
// variables listed in vars bind to arbitrary sub-terms, consistently across
// repeated occurrences; every other node must match exactly.
func Match(vars []string, pattern, target term.Expr) (term.Subst, bool) {
	bindable := map[string]bool{}
	for _, v := range vars {
		bindable[v] = true
	}
	bound := term.Subst{}
	if !match(bindable, bound, pattern, target) {
		return nil, false
	}
	return bound, true
}

func match(bindable map[string]bool, bound term.Subst, pattern, target term.Expr) bool {
	switch p := pattern.(type) {
	case term.Var:
		if !bindable[p.Name] {
			tv, ok := target.(term.Var)
			return ok && tv.Name == p.Name
		}
		if prev, ok := bound[p.Name]; ok {
			return term.Equal(prev, target)
		}
		bound[p.Name] = target
		return true
	case term.Con:
		tc, ok := target.(term.Con)
		if !ok || tc.Name != p.Name || len(tc.Args) != len(p.Args) {
			return false
		}
		for i, a := range p.Args {
			if !match(bindable, bound, a, tc.Args[i]) {
				return false
			}
		}
		return true
	case term.App:
		ta, ok := target.(term.App)
		if !ok || ta.Fn != p.Fn || len(ta.Args) != len(p.Args) {
			return false
		}
		for i, a := range p.Args {
			if !match(bindable, bound, a, ta.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Apply rewrites the goal with the rule at the given side and occurrence
// path, returning a new goal with the same context. The input goal is not
// mutated. Fails with InvalidPath when the path does not address a sub-term
// and NoMatch when the oriented pattern does not unify there.
func Apply(g proof.Goal, r Rule, dir proof.Direction, side proof.Side, path term.Path) (proof.Goal, error) {
	target := g.LHS
	if side == proof.Right {
		target = g.RHS
	}
	sub, err := term.At(target, path)
	if err != nil {
		return proof.Goal{}, err
	}
	pattern, replacement := r.Oriented(dir)
	bound, ok := Match(r.Vars, pattern, sub)
	if !ok {
		return proof.Goal{}, &NoMatchError{Rule: r.Name, Dir: dir, Side: side, Path: path, At: sub}
	}
	rewritten, err := term.Replace(target, path, bound.Apply(replacement))
	if err != nil {
		return proof.Goal{}, err
	}
	if side == proof.Right {
		return g.WithTarget(g.LHS, rewritten), nil
	}
	return g.WithTarget(rewritten, g.RHS), nil
}
