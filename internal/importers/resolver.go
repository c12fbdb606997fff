package importers

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrReferenceNotFound is reported for names that are neither known nor
// creatable.
var ErrReferenceNotFound = errors.New("not found")

// NameIndex maps a normalized name to an entity id.
type NameIndex map[string]uint

// NewNameIndex indexes items by name. When two items share a normalized
// name the first one wins.
func NewNameIndex[T any](items []T, key func(T) (string, uint)) NameIndex {
	index := make(NameIndex, len(items))
	for _, item := range items {
		name, id := key(item)
		normalized := NormalizeName(name)
		if normalized == "" {
			continue
		}
		if _, exists := index[normalized]; !exists {
			index[normalized] = id
		}
	}
	return index
}

// NormalizeName trims, composes and case-folds a name so that "Zoë",
// "ZOË" and a decomposed "Zoë" resolve to the same key.
func NormalizeName(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

// ReferenceError describes one name that could not be resolved.
type ReferenceError struct {
	Name string
	Err  error
}

func (e ReferenceError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e ReferenceError) Unwrap() error {
	return e.Err
}

// CreateFunc creates a referenced entity with default attributes.
type CreateFunc func(ctx context.Context, name string) (uint, error)

// Resolver turns name references into ids for a single import call. It
// owns the index of entities created during that call and must not be
// shared between calls.
type Resolver struct {
	existing NameIndex
	created  NameIndex
	create   CreateFunc
}

// NewResolver builds a resolver seeded with existing entities. A nil create
// makes unknown names fail instead of being created.
func NewResolver(existing NameIndex, create CreateFunc) *Resolver {
	if existing == nil {
		existing = NameIndex{}
	}
	return &Resolver{
		existing: existing,
		created:  NameIndex{},
		create:   create,
	}
}

// Resolve returns ids in input order. Each unresolvable name yields one
// ReferenceError and is dropped; repeated names resolve to a single id.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]uint, []ReferenceError) {
	var (
		ids  []uint
		errs []ReferenceError
		seen = make(map[uint]bool, len(names))
	)

	for _, name := range names {
		id, err := r.resolveOne(ctx, name)
		if err != nil {
			errs = append(errs, ReferenceError{Name: strings.TrimSpace(name), Err: err})
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, errs
}

func (r *Resolver) resolveOne(ctx context.Context, name string) (uint, error) {
	key := NormalizeName(name)
	if key == "" {
		return 0, ErrReferenceNotFound
	}
	if id, ok := r.existing[key]; ok {
		return id, nil
	}
	if id, ok := r.created[key]; ok {
		return id, nil
	}
	if r.create == nil {
		return 0, ErrReferenceNotFound
	}

	id, err := r.create(ctx, strings.TrimSpace(name))
	if err != nil {
		return 0, err
	}
	r.created[key] = id
	r.existing[key] = id
	return id, nil
}

// CreatedCount reports how many entities this resolver created.
func (r *Resolver) CreatedCount() int {
	return len(r.created)
}
