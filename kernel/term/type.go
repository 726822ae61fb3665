package term

import u "github.com/rjNemo/underscore"

// A single typed field of a constructor. Field types may name the owning
// algebraic type itself, which is what makes a constructor recursive; mutual
// recursion between types is not supported.
type Field struct {
	Name string
	Type string
}

// A constructor of an algebraic type: a tag plus an ordered list of fields.
type Constructor struct {
	Name   string
	Fields []Field
}

// An algebraic data type: a name plus a finite, ordered constructor list
// fixed at definition time.
type AlgebraicType struct {
	Name         string
	Constructors []Constructor
}

// Constructor returns the named constructor of the type.
func (t *AlgebraicType) Constructor(name string) (Constructor, bool) {
	for _, c := range t.Constructors {
		if c.Name == name {
			return c, true
		}
	}
	return Constructor{}, false
}

// RecursiveFields returns the fields of the constructor whose type is the
// owning algebraic type. These are the positions that receive induction
// hypotheses when a goal is split.
func (t *AlgebraicType) RecursiveFields(c Constructor) []Field {
	return u.Filter(c.Fields, func(f Field) bool { return f.Type == t.Name })
}

// Types is the process-wide table of declared algebraic types. Constructor
// tags share a single namespace so that a constructor expression needs no
// type annotation to be resolved.
type Types struct {
	byName    map[string]*AlgebraicType
	ctorOwner map[string]string
	order     []string
}

func NewTypes() *Types {
	return &Types{
		byName:    map[string]*AlgebraicType{},
		ctorOwner: map[string]string{},
	}
}

// Define registers a new algebraic type. The constructor list is validated
// here and never changes afterwards: a field type must either be a previously
// defined type or the type being defined.
func (ts *Types) Define(name string, ctors []Constructor) (*AlgebraicType, error) {
	if _, ok := ts.byName[name]; ok {
		return nil, &DuplicateTypeError{Name: name}
	}
	for _, c := range ctors {
		if owner, ok := ts.ctorOwner[c.Name]; ok {
			return nil, &DuplicateConstructorError{Constructor: c.Name, Owner: owner}
		}
		for _, f := range c.Fields {
			if f.Type == name {
				continue
			}
			if _, ok := ts.byName[f.Type]; !ok {
				return nil, &UnknownTypeError{Name: f.Type}
			}
		}
	}
	at := &AlgebraicType{Name: name, Constructors: ctors}
	ts.byName[name] = at
	for _, c := range ctors {
		ts.ctorOwner[c.Name] = name
	}
	ts.order = append(ts.order, name)
	return at, nil
}

// Lookup returns the named type.
func (ts *Types) Lookup(name string) (*AlgebraicType, bool) {
	at, ok := ts.byName[name]
	return at, ok
}

// Owner returns the type a constructor tag belongs to.
func (ts *Types) Owner(ctor string) (*AlgebraicType, bool) {
	name, ok := ts.ctorOwner[ctor]
	if !ok {
		return nil, false
	}
	return ts.byName[name], true
}

// Names returns the declared type names in definition order.
func (ts *Types) Names() []string {
	res := make([]string, len(ts.order))
	copy(res, ts.order)
	return res
}
