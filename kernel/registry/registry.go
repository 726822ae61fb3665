// Package registry is the process-wide table of proved equalities. It is
// append-only: lemmas are registered in dependency order, never deleted, and
// never changed after registration. A single writer lock makes registration
// atomic with respect to readers, and cheap copy-on-write snapshots give a
// running proof a consistent view of the table for its whole duration.
package registry

import (
	"sync"

	"github.com/induct-lang/induct/kernel/proof"
	"github.com/induct-lang/induct/kernel/rewrite"
	u "github.com/rjNemo/underscore"
	"golang.org/x/exp/maps"
)

// A Candidate is one oriented use of a registered lemma. Every lemma yields
// a left-to-right and a right-to-left candidate.
type Candidate struct {
	Rule rewrite.Rule
	Dir  proof.Direction
}

type Registry struct {
	mu     sync.RWMutex
	lemmas []proof.Lemma
	index  map[string]int
}

func New() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register appends a proved lemma. The name must be unused and every cited
// dependency must already be registered, which keeps the table in a strict
// dependency order.
func (r *Registry) Register(l proof.Lemma) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[l.Name]; ok {
		return &DuplicateNameError{Name: l.Name}
	}
	for _, dep := range l.Deps {
		if _, ok := r.index[dep]; !ok {
			return &UnknownDependencyError{Lemma: l.Name, Dependency: dep}
		}
	}
	r.index[l.Name] = len(r.lemmas)
	r.lemmas = append(r.lemmas, l)
	return nil
}

// Lookup returns the named lemma.
func (r *Registry) Lookup(name string) (proof.Lemma, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookup(r.lemmas, r.index, name)
}

// Names returns the registered lemma names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return u.Map(r.lemmas, func(l proof.Lemma) string { return l.Name })
}

// AllRewriteRules exposes every registered lemma as rewrite rule candidates
// in both orientations. Registration order is the deterministic tie-break
// for any caller choosing among candidates.
func (r *Registry) AllRewriteRules() []Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return candidates(r.lemmas)
}

// Snapshot returns an immutable view of the current table. The underlying
// lemma storage is shared; only the index is copied.
func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Snapshot{
		lemmas: r.lemmas[:len(r.lemmas):len(r.lemmas)],
		index:  maps.Clone(r.index),
	}
}

// A Snapshot is a frozen registry view. A proof resolves every rule against
// one snapshot, so concurrent registrations cannot change its outcome.
type Snapshot struct {
	lemmas []proof.Lemma
	index  map[string]int
}

// Lookup returns the named lemma from the snapshot.
func (s *Snapshot) Lookup(name string) (proof.Lemma, error) {
	return lookup(s.lemmas, s.index, name)
}

// Names returns the snapshot's lemma names in registration order.
func (s *Snapshot) Names() []string {
	return u.Map(s.lemmas, func(l proof.Lemma) string { return l.Name })
}

// AllRewriteRules exposes the snapshot's lemmas as oriented candidates.
func (s *Snapshot) AllRewriteRules() []Candidate {
	return candidates(s.lemmas)
}

// Truncated restricts the snapshot to exactly the named lemmas, keeping
// registration order. Replaying a proof against a snapshot truncated to the
// lemma's declared dependencies is how recorded proofs are validated.
func (s *Snapshot) Truncated(names []string) (*Snapshot, error) {
	keep := map[string]bool{}
	for _, n := range names {
		if _, ok := s.index[n]; !ok {
			return nil, &NotFoundError{Name: n}
		}
		keep[n] = true
	}
	trunc := &Snapshot{index: map[string]int{}}
	for _, l := range s.lemmas {
		if keep[l.Name] {
			trunc.index[l.Name] = len(trunc.lemmas)
			trunc.lemmas = append(trunc.lemmas, l)
		}
	}
	return trunc, nil
}

func lookup(lemmas []proof.Lemma, index map[string]int, name string) (proof.Lemma, error) {
	i, ok := index[name]
	if !ok {
		return proof.Lemma{}, &NotFoundError{Name: name}
	}
	return lemmas[i], nil
}

func candidates(lemmas []proof.Lemma) []Candidate {
	res := make([]Candidate, 0, 2*len(lemmas))
	for _, l := range lemmas {
		rule := rewrite.Of(l)
		res = append(res,
			Candidate{Rule: rule, Dir: proof.LeftToRight},
			Candidate{Rule: rule, Dir: proof.RightToLeft})
	}
	return res
}
