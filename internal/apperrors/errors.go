// Package apperrors defines the failure kinds surfaced by the service layer.
// Handlers pick status codes and payload shapes off these types with
// errors.As; everything else wraps with %w and stays transparent.
package apperrors

import "fmt"

// NotFoundError reports that an id or natural-key lookup matched no row.
type NotFoundError struct {
	Entity string // "tree" or "insect"
	Key    string // the id or name that missed
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s %s", e.Entity, e.Key)
}

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Errors[0]
}

// CreationError reports a failed create, most commonly a natural-key
// uniqueness conflict. Details is safe to show to clients.
type CreationError struct {
	Entity  string
	Details string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("could not create %s: %s", e.Entity, e.Details)
}

// AssociationError reports an attempt to link a (tree, insect) pair that is
// already linked.
type AssociationError struct {
	Tree   string
	Insect string
}

func (e *AssociationError) Error() string {
	return fmt.Sprintf("Association already exists between %s and %s", e.Tree, e.Insect)
}
