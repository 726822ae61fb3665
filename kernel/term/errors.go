package term

import "fmt"

// A type was defined twice.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("term: type %s is already defined", e.Name)
}

// A field or binding referenced a type that has not been defined.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("term: unknown type %s", e.Name)
}

// A constructor tag clashed with one belonging to an earlier type.
// Constructor tags share one namespace across all types.
type DuplicateConstructorError struct {
	Constructor string
	Owner       string
}

func (e *DuplicateConstructorError) Error() string {
	return fmt.Sprintf("term: constructor %s is already owned by type %s", e.Constructor, e.Owner)
}

// A function was defined twice.
type DuplicateFunctionError struct {
	Name string
}

func (e *DuplicateFunctionError) Error() string {
	return fmt.Sprintf("term: function %s is already defined", e.Name)
}

// A function definition omitted the equation for one of the constructors of
// its pattern-matched argument, or supplied a case for a constructor the
// type does not have.
type MissingCaseError struct {
	Function    string
	Constructor string
	Stray       bool
}

func (e *MissingCaseError) Error() string {
	if e.Stray {
		return fmt.Sprintf("term: function %s has a case for %s, which is not a constructor of its matched type", e.Function, e.Constructor)
	}
	return fmt.Sprintf("term: function %s is missing the case for constructor %s", e.Function, e.Constructor)
}

// A recursive call did not recurse on a strict sub-term of the matched
// value. Only field variables of the current case, at positions whose type
// is the matched type, may appear in the matched argument position of a
// self-call.
type BadRecursionError struct {
	Function string
	Arg      Expr
}

func (e *BadRecursionError) Error() string {
	return fmt.Sprintf("term: function %s recurses on %s, which is not a strict sub-term of the matched value", e.Function, e.Arg)
}

// An expression referenced a variable that is not bound by the surrounding
// context (a goal context, or the parameters and case fields of a function
// equation).
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("term: unbound variable %s", e.Name)
}

// A head was applied to the wrong number of arguments.
type ArityError struct {
	Head string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("term: %s expects %d arguments, got %d", e.Head, e.Want, e.Got)
}

// An occurrence path did not address an existing sub-term.
type InvalidPathError struct {
	Path Path
	In   Expr
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("term: path %v does not address a sub-term of %s", e.Path, e.In)
}
