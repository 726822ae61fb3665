// Package induction implements structural induction: splitting a goal that
// is universally quantified over a value of an algebraic type into one child
// goal per constructor, with induction hypotheses for recursive fields.
package induction

import (
	"fmt"

	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
	"golang.org/x/exp/slices"
)

// Split produces one child goal per constructor of the type of the named
// context variable, in constructor declaration order.
//
// For a constructor the child's context gains a fresh binding per field and,
// for every field whose type is the split variable's own type, an induction
// hypothesis: the parent target with the variable replaced by that field's
// fresh binding. The child's target is the parent target with the variable
// replaced by the constructor applied to the fresh bindings.
func Split(types *term.Types, g proof.Goal, varName string) ([]proof.Goal, error) {
	typeName, ok := g.TypeOf(varName)
	if !ok {
		return nil, &term.UnboundVariableError{Name: varName}
	}
	at, ok := types.Lookup(typeName)
	if !ok {
		return nil, &NotInductiveTypeError{Var: varName, Type: typeName}
	}

	children := make([]proof.Goal, 0, len(at.Constructors))
	for _, ctor := range at.Constructors {
		children = append(children, child(at, g, varName, ctor))
	}
	return children, nil
}

func child(at *term.AlgebraicType, g proof.Goal, varName string, ctor term.Constructor) proof.Goal {
	fresh := newFresh(g)
	bindings := slices.Clone(g.Bindings)
	hyps := slices.Clone(g.Hyps)

	args := make([]term.Expr, len(ctor.Fields))
	for i, f := range ctor.Fields {
		name := fresh.next(varName)
		bindings = append(bindings, proof.Binding{Name: name, Type: f.Type})
		args[i] = term.V(name)
		if f.Type == at.Name {
			ih := term.Subst{varName: term.V(name)}
			hyps = append(hyps, proof.Hypothesis{
				Name: "IH" + name,
				LHS:  ih.Apply(g.LHS),
				RHS:  ih.Apply(g.RHS),
			})
		}
	}

	sub := term.Subst{varName: term.C(ctor.Name, args...)}
	return proof.Goal{
		Bindings: bindings,
		Hyps:     hyps,
		LHS:      sub.Apply(g.LHS),
		RHS:      sub.Apply(g.RHS),
	}
}

// fresh generates context names that do not collide with anything already
// bound in the goal. Names are the split variable with a numeric suffix, so
// inducting on n yields n0, n1, ... and the hypotheses IHn0, IHn1, ...
type fresh struct {
	used map[string]bool
}

func newFresh(g proof.Goal) *fresh {
	used := map[string]bool{}
	for _, b := range g.Bindings {
		used[b.Name] = true
	}
	for _, h := range g.Hyps {
		used[h.Name] = true
	}
	return &fresh{used: used}
}

func (f *fresh) next(prefix string) string {
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", prefix, i)
		if !f.used[name] && !f.used["IH"+name] {
			f.used[name] = true
			return name
		}
	}
}
