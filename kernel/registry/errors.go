package registry

import "fmt"

// A lemma name was registered twice.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("registry: lemma %s is already registered", e.Name)
}

// A lemma cited a dependency that is not registered.
type UnknownDependencyError struct {
	Lemma      string
	Dependency string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("registry: lemma %s depends on %s, which is not registered", e.Lemma, e.Dependency)
}

// No lemma with the requested name exists.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: no lemma named %s", e.Name)
}
