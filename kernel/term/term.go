package term

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// The expression language of the kernel is deliberately small: a value is
// either a free variable standing for an arbitrary inhabitant of its declared
// type, a constructor applied to sub-expressions, or a defined function
// applied to argument expressions. An expression with no variables is a
// closed term. Expressions are immutable; every operation that changes one
// builds a new spine and shares the untouched branches.
type Expr interface {
	fmt.Stringer
	// Helper method to build the free variable occurrence count efficiently
	// for each expression variant.
	freeAcc(map[string]int)
}

// A free variable. The type of a variable is not carried on the node; it
// lives in the context of whatever goal or definition binds the name.
type Var struct {
	Name string
}

// A constructor applied to an ordered list of argument expressions.
type Con struct {
	Name string
	Args []Expr
}

// A defined function applied to an ordered list of argument expressions.
type App struct {
	Fn   string
	Args []Expr
}

// V builds a variable expression.
func V(name string) Expr {
	return Var{Name: name}
}

// C builds a constructor application.
func C(name string, args ...Expr) Expr {
	return Con{Name: name, Args: args}
}

// A builds a function application.
func A(fn string, args ...Expr) Expr {
	return App{Fn: fn, Args: args}
}

func (v Var) String() string {
	return v.Name
}

func (v Var) freeAcc(acc map[string]int) {
	acc[v.Name] = acc[v.Name] + 1
}

func (c Con) String() string {
	return renderApp(c.Name, c.Args)
}

func (c Con) freeAcc(acc map[string]int) {
	for _, a := range c.Args {
		a.freeAcc(acc)
	}
}

func (a App) String() string {
	return renderApp(a.Fn, a.Args)
}

func (a App) freeAcc(acc map[string]int) {
	for _, arg := range a.Args {
		arg.freeAcc(acc)
	}
}

func renderApp(head string, args []Expr) string {
	if len(args) == 0 {
		return head
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", head, strings.Join(parts, ", "))
}

// Free returns the number of occurrences of each distinct variable in the
// expression. An expression is closed when the result is empty.
func Free(e Expr) map[string]int {
	occ := make(map[string]int)
	e.freeAcc(occ)
	return occ
}

// Equal is the structural comparison used as the discharge test: same
// variant, same head name, pointwise-equal arguments.
func Equal(a, b Expr) bool {
	switch at := a.(type) {
	case Var:
		bt, ok := b.(Var)
		return ok && at.Name == bt.Name
	case Con:
		bt, ok := b.(Con)
		return ok && at.Name == bt.Name && equalArgs(at.Args, bt.Args)
	case App:
		bt, ok := b.(App)
		return ok && at.Fn == bt.Fn && equalArgs(at.Args, bt.Args)
	default:
		return false
	}
}

func equalArgs(as, bs []Expr) bool {
	return slices.EqualFunc(as, bs, Equal)
}

// A Subst maps variable names to replacement expressions. Variables without
// an entry are left untouched.
type Subst map[string]Expr

// Apply substitutes every mapped variable in the expression.
func (s Subst) Apply(e Expr) Expr {
	switch t := e.(type) {
	case Var:
		if repl, ok := s[t.Name]; ok {
			return repl
		}
		return t
	case Con:
		return Con{Name: t.Name, Args: s.applyAll(t.Args)}
	case App:
		return App{Fn: t.Fn, Args: s.applyAll(t.Args)}
	default:
		return e
	}
}

func (s Subst) applyAll(args []Expr) []Expr {
	res := make([]Expr, len(args))
	for i, a := range args {
		res[i] = s.Apply(a)
	}
	return res
}
