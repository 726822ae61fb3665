// Package proof holds the data shared by the engines: goals, script steps,
// recorded proofs, and lemmas. It contains no behaviour beyond accessors;
// the rewrite, induction, and driver packages supply the transitions.
package proof

import (
	"fmt"
	"strings"

	"github.com/induct-lang/induct/kernel/term"
	"golang.org/x/exp/slices"
)

// A typed free-variable binding in a goal context or lemma quantifier.
type Binding struct {
	Name string
	Type string
}

func (b Binding) String() string {
	return fmt.Sprintf("%s:%s", b.Name, b.Type)
}

// A named equation available inside one goal, introduced by an induction
// split. Unlike a registry lemma, a hypothesis quantifies over nothing: its
// variables are fixed names from the goal context.
type Hypothesis struct {
	Name string
	LHS  term.Expr
	RHS  term.Expr
}

func (h Hypothesis) String() string {
	return fmt.Sprintf("%s: %s = %s", h.Name, h.LHS, h.RHS)
}

// A Goal is a pending obligation: a context of typed bindings and local
// hypotheses, and a target equality over those names. Goals are values;
// the engines return new goals instead of mutating their input.
type Goal struct {
	Bindings []Binding
	Hyps     []Hypothesis
	LHS      term.Expr
	RHS      term.Expr
}

// TypeOf returns the declared type of a context variable.
func (g Goal) TypeOf(name string) (string, bool) {
	for _, b := range g.Bindings {
		if b.Name == name {
			return b.Type, true
		}
	}
	return "", false
}

// Hyp returns the named local hypothesis.
func (g Goal) Hyp(name string) (Hypothesis, bool) {
	for _, h := range g.Hyps {
		if h.Name == name {
			return h, true
		}
	}
	return Hypothesis{}, false
}

// WithTarget returns a copy of the goal with new target sides and the same
// context.
func (g Goal) WithTarget(lhs, rhs term.Expr) Goal {
	return Goal{
		Bindings: slices.Clone(g.Bindings),
		Hyps:     slices.Clone(g.Hyps),
		LHS:      lhs,
		RHS:      rhs,
	}
}

func (g Goal) String() string {
	parts := make([]string, 0, len(g.Bindings))
	for _, b := range g.Bindings {
		parts = append(parts, b.String())
	}
	for _, h := range g.Hyps {
		parts = append(parts, h.Name)
	}
	return fmt.Sprintf("%s |- %s = %s", strings.Join(parts, ", "), g.LHS, g.RHS)
}

// A Statement is the obligation a proof starts from: the quantified
// variables and the equality to establish.
type Statement struct {
	Name     string
	Bindings []Binding
	LHS      term.Expr
	RHS      term.Expr
}

// Goal builds the initial goal of the statement.
func (s Statement) Goal() Goal {
	return Goal{
		Bindings: slices.Clone(s.Bindings),
		LHS:      s.LHS,
		RHS:      s.RHS,
	}
}

// A Lemma is a proved, registry-held equality. It is created only by the
// driver on successful discharge of a statement and never mutated after.
type Lemma struct {
	Name     string
	Bindings []Binding
	LHS      term.Expr
	RHS      term.Expr
	// Names of previously registered lemmas the proof rewrote with, in
	// first-use order.
	Deps  []string
	Proof Proof
}

func (l Lemma) String() string {
	binds := make([]string, len(l.Bindings))
	for i, b := range l.Bindings {
		binds[i] = b.String()
	}
	if len(binds) == 0 {
		return fmt.Sprintf("%s: %s = %s", l.Name, l.LHS, l.RHS)
	}
	return fmt.Sprintf("%s: forall %s, %s = %s", l.Name, strings.Join(binds, " "), l.LHS, l.RHS)
}

// A Proof is the replayable step trace that discharged a lemma's statement.
type Proof struct {
	Steps Script
}
