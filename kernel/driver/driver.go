// Package driver orchestrates the kernel. A Kernel owns the type and
// function tables and the lemma registry, and runs flat proof scripts
// against a goal stack: the goal is the state, induct and rewrite are the
// only transitions, and a goal is discharged when both sides of its target
// share a normal form. A successful run registers the statement as a lemma;
// any failure registers nothing.
package driver

import (
	"github.com/induct-lang/induct/kernel/induction"
	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/registry"
	"github.com/induct-lang/induct/kernel/rewrite"
	"github.com/induct-lang/induct/kernel/term"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type Kernel struct {
	types *term.Types
	funcs *term.Funcs
	reg   *registry.Registry
	log   *zap.Logger
}

// New builds an empty kernel. A nil logger disables step logging.
func New(log *zap.Logger) *Kernel {
	if log == nil {
		log = zap.NewNop()
	}
	types := term.NewTypes()
	return &Kernel{
		types: types,
		funcs: term.NewFuncs(types),
		reg:   registry.New(),
		log:   log,
	}
}

// DefineType declares an algebraic data type.
func (k *Kernel) DefineType(name string, ctors []term.Constructor) (*term.AlgebraicType, error) {
	at, err := k.types.Define(name, ctors)
	if err != nil {
		return nil, err
	}
	k.log.Debug("defined type",
		zap.String("type", name),
		zap.Int("constructors", len(ctors)))
	return at, nil
}

// DefineFunction declares a pattern-matched recursive function.
func (k *Kernel) DefineFunction(name string, params []term.Param, result string, match int, cases []term.Case) (*term.FuncDef, error) {
	def, err := k.funcs.Define(name, params, result, match, cases)
	if err != nil {
		return nil, err
	}
	k.log.Debug("defined function",
		zap.String("function", name),
		zap.Int("arity", len(params)))
	return def, nil
}

// Lookup returns a registered lemma by name.
func (k *Kernel) Lookup(name string) (proof.Lemma, error) {
	return k.reg.Lookup(name)
}

// Registry exposes the kernel's lemma registry.
func (k *Kernel) Registry() *registry.Registry {
	return k.reg
}

// Types exposes the kernel's type table.
func (k *Kernel) Types() *term.Types {
	return k.types
}

// Funcs exposes the kernel's function table.
func (k *Kernel) Funcs() *term.Funcs {
	return k.funcs
}

// RunProof runs a script against the statement's initial goal. On success
// the statement is registered and returned as a lemma whose dependency list
// holds the registry lemmas the script rewrote with, in first-use order.
// On any failure the registry is left untouched.
func (k *Kernel) RunProof(st proof.Statement, script proof.Script) (proof.Lemma, error) {
	if err := k.checkStatement(st); err != nil {
		return proof.Lemma{}, err
	}
	deps, err := k.run(st, script, k.reg.Snapshot())
	if err != nil {
		k.log.Debug("proof failed", zap.String("lemma", st.Name), zap.Error(err))
		return proof.Lemma{}, err
	}

	l := proof.Lemma{
		Name:     st.Name,
		Bindings: slices.Clone(st.Bindings),
		LHS:      st.LHS,
		RHS:      st.RHS,
		Deps:     deps,
		Proof:    proof.Proof{Steps: slices.Clone(script)},
	}
	if err := k.reg.Register(l); err != nil {
		return proof.Lemma{}, err
	}
	k.log.Info("proved lemma",
		zap.String("lemma", l.Name),
		zap.Strings("deps", l.Deps),
		zap.Int("steps", len(script)))
	return l, nil
}

// CheckProof replays a registered lemma's recorded proof against a registry
// truncated to exactly its declared dependencies.
func (k *Kernel) CheckProof(name string) error {
	l, err := k.reg.Lookup(name)
	if err != nil {
		return err
	}
	snap, err := k.reg.Snapshot().Truncated(l.Deps)
	if err != nil {
		return err
	}
	st := proof.Statement{Name: l.Name, Bindings: l.Bindings, LHS: l.LHS, RHS: l.RHS}
	_, err = k.run(st, l.Proof.Steps, snap)
	return err
}

func (k *Kernel) checkStatement(st proof.Statement) error {
	for _, b := range st.Bindings {
		if _, ok := k.types.Lookup(b.Type); !ok {
			return &term.UnknownTypeError{Name: b.Type}
		}
	}
	bound := map[string]bool{}
	for _, b := range st.Bindings {
		bound[b.Name] = true
	}
	for name := range term.Free(st.LHS) {
		if !bound[name] {
			return &term.UnboundVariableError{Name: name}
		}
	}
	for name := range term.Free(st.RHS) {
		if !bound[name] {
			return &term.UnboundVariableError{Name: name}
		}
	}
	return nil
}

// run is the state machine. Goals are kept in normal form throughout: the
// seed, every induction child, and every rewrite result are normalized
// before they reach the stack, so occurrence paths in scripts address the
// reduced shape of a goal.
func (k *Kernel) run(st proof.Statement, script proof.Script, snap *registry.Snapshot) ([]string, error) {
	stack := []proof.Goal{k.normalized(st.Goal())}
	var deps []string

	for i, step := range script {
		if len(stack) == 0 {
			return nil, &SurplusStepError{At: i, Step: step}
		}
		g := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch s := step.(type) {
		case proof.Induct:
			children, err := induction.Split(k.types, g, s.Var)
			if err != nil {
				return nil, err
			}
			// Push in reverse so the first constructor's goal is handled
			// next.
			for j := len(children) - 1; j >= 0; j-- {
				stack = append(stack, k.normalized(children[j]))
			}
		case proof.Rewrite:
			rule, fromRegistry, err := resolveRule(g, snap, s.Rule)
			if err != nil {
				return nil, err
			}
			ng, err := rewrite.Apply(g, rule, s.Dir, s.Side, s.Path)
			if err != nil {
				return nil, err
			}
			stack = append(stack, k.normalized(ng))
			if fromRegistry && !slices.Contains(deps, s.Rule) {
				deps = append(deps, s.Rule)
			}
		case proof.Close:
			lhs := k.funcs.Normalize(g.LHS)
			rhs := k.funcs.Normalize(g.RHS)
			if !term.Equal(lhs, rhs) {
				return nil, &GoalNotClosedError{Goal: g}
			}
		default:
			return nil, &UnknownOperationError{At: i, Step: step}
		}

		k.log.Debug("applied step",
			zap.String("lemma", st.Name),
			zap.Int("step", i),
			zap.Stringer("op", step),
			zap.Int("pending", len(stack)))
	}

	if len(stack) > 0 {
		return nil, &OpenGoalsError{Remaining: len(stack), Next: stack[len(stack)-1]}
	}
	return deps, nil
}

// resolveRule looks a rule name up among the goal's local hypotheses first,
// then the registry snapshot. Hypotheses shadow lemmas of the same name.
func resolveRule(g proof.Goal, snap *registry.Snapshot, name string) (rewrite.Rule, bool, error) {
	if h, ok := g.Hyp(name); ok {
		return rewrite.OfHypothesis(h), false, nil
	}
	l, err := snap.Lookup(name)
	if err != nil {
		return rewrite.Rule{}, false, err
	}
	return rewrite.Of(l), true, nil
}

func (k *Kernel) normalized(g proof.Goal) proof.Goal {
	return g.WithTarget(k.funcs.Normalize(g.LHS), k.funcs.Normalize(g.RHS))
}
