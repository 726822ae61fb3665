package term

// A typed parameter of a function definition.
type Param struct {
	Name string
	Type string
}

// One equation of a pattern-matched function: when the matched argument is
// headed by Con, the application unfolds to Body with the constructor fields
// bound to the names in Fields.
type Case struct {
	Con    string
	Fields []string
	Body   Expr
}

// A named recursive function over one designated algebraic type. Exactly one
// case exists per constructor of the matched parameter's type, and recursive
// calls only ever descend into fields of the matched value, so unfolding
// always terminates.
type FuncDef struct {
	Name   string
	Params []Param
	Result string
	// Index of the pattern-matched parameter.
	Match int
	cases map[string]Case
}

// Case returns the equation for the given constructor tag.
func (f *FuncDef) Case(ctor string) (Case, bool) {
	c, ok := f.cases[ctor]
	return c, ok
}

// Funcs is the table of defined functions, validated against a type table.
type Funcs struct {
	types  *Types
	byName map[string]*FuncDef
	order  []string
}

func NewFuncs(types *Types) *Funcs {
	return &Funcs{
		types:  types,
		byName: map[string]*FuncDef{},
	}
}

// Lookup returns the named function definition.
func (fs *Funcs) Lookup(name string) (*FuncDef, bool) {
	f, ok := fs.byName[name]
	return f, ok
}

// Names returns the defined function names in definition order.
func (fs *Funcs) Names() []string {
	res := make([]string, len(fs.order))
	copy(res, fs.order)
	return res
}

// Define registers a new function. The equations are checked here, once:
// every constructor of the matched type has exactly one case, case bodies
// only reference parameters and case fields, applications have the right
// arity, and self-calls recurse on a recursive field of the current case.
func (fs *Funcs) Define(name string, params []Param, result string, match int, cases []Case) (*FuncDef, error) {
	if _, ok := fs.byName[name]; ok {
		return nil, &DuplicateFunctionError{Name: name}
	}
	for _, p := range params {
		if _, ok := fs.types.Lookup(p.Type); !ok {
			return nil, &UnknownTypeError{Name: p.Type}
		}
	}
	if _, ok := fs.types.Lookup(result); !ok {
		return nil, &UnknownTypeError{Name: result}
	}
	if match < 0 || match >= len(params) {
		return nil, &ArityError{Head: name, Want: len(params), Got: match}
	}
	matched, _ := fs.types.Lookup(params[match].Type)

	def := &FuncDef{
		Name:   name,
		Params: params,
		Result: result,
		Match:  match,
		cases:  map[string]Case{},
	}
	for _, c := range cases {
		ctor, ok := matched.Constructor(c.Con)
		if !ok {
			return nil, &MissingCaseError{Function: name, Constructor: c.Con, Stray: true}
		}
		if len(c.Fields) != len(ctor.Fields) {
			return nil, &ArityError{Head: c.Con, Want: len(ctor.Fields), Got: len(c.Fields)}
		}
		if err := fs.checkBody(def, matched, ctor, c); err != nil {
			return nil, err
		}
		def.cases[c.Con] = c
	}
	for _, ctor := range matched.Constructors {
		if _, ok := def.cases[ctor.Name]; !ok {
			return nil, &MissingCaseError{Function: name, Constructor: ctor.Name}
		}
	}

	fs.byName[name] = def
	fs.order = append(fs.order, name)
	return def, nil
}

// checkBody validates one equation body: scoping, arities, and the
// structural-recursion restriction on self-calls.
func (fs *Funcs) checkBody(def *FuncDef, matched *AlgebraicType, ctor Constructor, c Case) error {
	scope := map[string]bool{}
	for i, p := range def.Params {
		if i != def.Match {
			scope[p.Name] = true
		}
	}
	for _, f := range c.Fields {
		scope[f] = true
	}
	recursive := map[string]bool{}
	for i, f := range ctor.Fields {
		if f.Type == matched.Name {
			recursive[c.Fields[i]] = true
		}
	}

	var walk func(e Expr) error
	walk = func(e Expr) error {
		switch t := e.(type) {
		case Var:
			if !scope[t.Name] {
				return &UnboundVariableError{Name: t.Name}
			}
		case Con:
			owner, ok := fs.types.Owner(t.Name)
			if !ok {
				return &UnknownTypeError{Name: t.Name}
			}
			tag, _ := owner.Constructor(t.Name)
			if len(t.Args) != len(tag.Fields) {
				return &ArityError{Head: t.Name, Want: len(tag.Fields), Got: len(t.Args)}
			}
			for _, a := range t.Args {
				if err := walk(a); err != nil {
					return err
				}
			}
		case App:
			var want int
			if t.Fn == def.Name {
				want = len(def.Params)
			} else {
				callee, ok := fs.byName[t.Fn]
				if !ok {
					return &UnboundVariableError{Name: t.Fn}
				}
				want = len(callee.Params)
			}
			if len(t.Args) != want {
				return &ArityError{Head: t.Fn, Want: want, Got: len(t.Args)}
			}
			if t.Fn == def.Name {
				arg := t.Args[def.Match]
				v, isVar := arg.(Var)
				if !isVar || !recursive[v.Name] {
					return &BadRecursionError{Function: def.Name, Arg: arg}
				}
			}
			for _, a := range t.Args {
				if err := walk(a); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(c.Body)
}
