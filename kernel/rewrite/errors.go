package rewrite

import (
	"fmt"

	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/term"
)

// The oriented pattern of a rule did not unify with the sub-term at the
// addressed occurrence.
type NoMatchError struct {
	Rule string
	Dir  proof.Direction
	Side proof.Side
	Path term.Path
	At   term.Expr
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("rewrite: rule %s (%s) does not match %s at %s%v", e.Rule, e.Dir, e.At, e.Side, e.Path)
}
