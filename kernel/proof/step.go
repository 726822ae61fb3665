package proof

import (
	"fmt"

	"github.com/induct-lang/induct/kernel/term"
)

// Which side of a goal's target equality an operation addresses.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "lhs"
	}
	return "rhs"
}

// The orientation a rule is applied with: LeftToRight matches the rule's
// left side and substitutes the right, RightToLeft the reverse.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == LeftToRight {
		return "->"
	}
	return "<-"
}

// A Step is one operation of a proof script. The driver accepts exactly the
// three variants below; anything else is rejected at run time.
type Step interface {
	fmt.Stringer
	isStep()
}

// Induct splits the current goal into one child per constructor of the
// named context variable's type.
type Induct struct {
	Var string
}

func (Induct) isStep() {}

func (s Induct) String() string {
	return fmt.Sprintf("induct %s", s.Var)
}

// Rewrite applies a named rule (a local hypothesis or a registry lemma) at
// an explicit occurrence: side of the equality plus path into that side.
type Rewrite struct {
	Rule string
	Dir  Direction
	Side Side
	Path term.Path
}

func (Rewrite) isStep() {}

func (s Rewrite) String() string {
	return fmt.Sprintf("rewrite %s %s at %s%v", s.Dir, s.Rule, s.Side, s.Path)
}

// Close discharges the current goal when both sides reduce to the same
// normal form.
type Close struct{}

func (Close) isStep() {}

func (Close) String() string {
	return "close"
}

// A Script is the flat operation sequence consumed by the driver.
type Script []Step
