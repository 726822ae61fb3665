package term

// Reduce applies one step of function-definition unfolding when the head of
// the expression is an application whose pattern-matched argument is headed
// by a constructor. Anything else is returned unchanged: the expression is
// either already in normal form or stuck on a free variable.
func (fs *Funcs) Reduce(e Expr) Expr {
	if stepped, ok := fs.step(e); ok {
		return stepped
	}
	return e
}

func (fs *Funcs) step(e Expr) (Expr, bool) {
	app, ok := e.(App)
	if !ok {
		return e, false
	}
	def, ok := fs.byName[app.Fn]
	if !ok || len(app.Args) != len(def.Params) {
		return e, false
	}
	scrutinee, ok := app.Args[def.Match].(Con)
	if !ok {
		return e, false
	}
	c, ok := def.cases[scrutinee.Name]
	if !ok {
		return e, false
	}

	bind := Subst{}
	for i, p := range def.Params {
		if i != def.Match {
			bind[p.Name] = app.Args[i]
		}
	}
	for i, f := range c.Fields {
		bind[f] = scrutinee.Args[i]
	}
	return bind.Apply(c.Body), true
}

// Normalize reduces an expression to normal form: arguments first, then the
// head, repeating until no unfolding applies. Termination is guaranteed by
// the structural-recursion restriction on function definitions, so no fuel
// or depth limit is needed.
func (fs *Funcs) Normalize(e Expr) Expr {
	switch t := e.(type) {
	case Var:
		return t
	case Con:
		return Con{Name: t.Name, Args: fs.normalizeAll(t.Args)}
	case App:
		flat := App{Fn: t.Fn, Args: fs.normalizeAll(t.Args)}
		if stepped, ok := fs.step(flat); ok {
			return fs.Normalize(stepped)
		}
		return flat
	default:
		return e
	}
}

func (fs *Funcs) normalizeAll(args []Expr) []Expr {
	res := make([]Expr, len(args))
	for i, a := range args {
		res[i] = fs.Normalize(a)
	}
	return res
}
