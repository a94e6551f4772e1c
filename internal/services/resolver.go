package services

import (
	"context"
	"fmt"

	"tree_habitat/internal/apperrors"
)

// resolverFuncs parameterizes the find-or-create flow by entity type. Trees
// and insects share the exact same lookup logic; only the store calls and the
// candidate construction differ.
type resolverFuncs[T any] struct {
	entity     string
	findByID   func(context.Context, int64) (*T, error)
	findByName func(context.Context, string) (*T, error)
	validate   func(*T) []string
	create     func(context.Context, *T) error
}

// resolve turns a partial descriptor into a persisted row.
//
// With an explicit id the row must exist; a miss is terminal and nothing is
// ever fabricated. Without an id the natural-key name is tried, and an
// existing match is returned untouched, ignoring any other attributes on the
// descriptor. Only when the name misses is the candidate built, validated,
// and persisted — exactly one write on that path, zero on the others.
func resolve[T any](ctx context.Context, f resolverFuncs[T], id int64, name string, build func() *T) (*T, error) {
	if id != 0 {
		existing, err := f.findByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s by id: %w", f.entity, err)
		}
		if existing == nil {
			return nil, &apperrors.NotFoundError{Entity: f.entity, Key: fmt.Sprint(id)}
		}
		return existing, nil
	}

	if name == "" {
		return nil, &apperrors.ValidationError{Errors: []string{f.entity + " requires an id or a name"}}
	}

	existing, err := f.findByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s by name: %w", f.entity, err)
	}
	if existing != nil {
		return existing, nil
	}

	candidate := build()
	if errs := f.validate(candidate); len(errs) > 0 {
		return nil, &apperrors.ValidationError{Errors: errs}
	}

	if err := f.create(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}
