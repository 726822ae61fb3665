package term

// A Path locates a sub-expression by descending through argument positions,
// outermost first. The empty path addresses the expression itself.
//
// Rewriting always happens at an explicit path. A rule that fires on "the
// first match anywhere" tends to hit the wrong occurrence the moment the
// same operator appears twice in a goal, so the occurrence is part of the
// operation, not something the engine guesses.
type Path []int

func args(e Expr) ([]Expr, bool) {
	switch t := e.(type) {
	case Con:
		return t.Args, true
	case App:
		return t.Args, true
	default:
		return nil, false
	}
}

// At returns the sub-expression addressed by the path, or an
// InvalidPathError when the path runs past a leaf or outside an argument
// list.
func At(e Expr, p Path) (Expr, error) {
	cur := e
	for _, i := range p {
		as, ok := args(cur)
		if !ok || i < 0 || i >= len(as) {
			return nil, &InvalidPathError{Path: p, In: e}
		}
		cur = as[i]
	}
	return cur, nil
}

// Replace returns a copy of the expression with the sub-expression at the
// path swapped for sub. Branches off the path are shared, not copied.
func Replace(e Expr, p Path, sub Expr) (Expr, error) {
	if len(p) == 0 {
		return sub, nil
	}
	as, ok := args(e)
	if !ok || p[0] < 0 || p[0] >= len(as) {
		return nil, &InvalidPathError{Path: p, In: e}
	}
	child, err := Replace(as[p[0]], p[1:], sub)
	if err != nil {
		// Report the full path from the root, not the suffix that failed.
		return nil, &InvalidPathError{Path: p, In: e}
	}
	rebuilt := make([]Expr, len(as))
	copy(rebuilt, as)
	rebuilt[p[0]] = child
	switch t := e.(type) {
	case Con:
		return Con{Name: t.Name, Args: rebuilt}, nil
	case App:
		return App{Fn: t.Fn, Args: rebuilt}, nil
	default:
		return nil, &InvalidPathError{Path: p, In: e}
	}
}
