package induction

import "fmt"

// The split variable's type has no registered constructor list, so there is
// nothing to do induction over.
type NotInductiveTypeError struct {
	Var  string
	Type string
}

func (e *NotInductiveTypeError) Error() string {
	return fmt.Sprintf("induction: variable %s has type %s, which is not an inductive type", e.Var, e.Type)
}
