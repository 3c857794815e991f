// Package reconcile implements the diff step of nested collection updates:
// children omitted from the incoming payload are deleted, children carrying a
// known identifier are updated in place, children without one are inserted.
// The diff is pure; applying it transactionally is the caller's job.
package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownID is returned when an incoming item references an
	// identifier that does not belong to any existing child of the parent.
	ErrUnknownID = errors.New("unknown identifier")

	// ErrDuplicateID is returned when two incoming items at the same level
	// carry the same identifier.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// Match pairs an existing child with the incoming item that references it.
type Match[E, I any] struct {
	Existing E
	Incoming I
}

// Plan is the result of diffing one nesting level.
type Plan[E, I any] struct {
	ToDelete []E
	ToUpdate []Match[E, I]
	ToInsert []I
}

// Diff matches incoming items against existing children by identifier.
// existingID yields a child's identifier; incomingID yields an item's
// identifier and whether the item carries one at all. Items without an
// identifier are inserts, regardless of any position in the slice.
//
// Incoming identifiers must be unique and must belong to existing children of
// this parent; anything else fails the whole diff so an identifier can never
// attach to a parent it did not already belong to.
func Diff[E, I any](
	existing []E,
	incoming []I,
	existingID func(E) int64,
	incomingID func(I) (int64, bool),
) (Plan[E, I], error) {
	var plan Plan[E, I]

	byID := make(map[int64]E, len(existing))
	for _, child := range existing {
		byID[existingID(child)] = child
	}

	referenced := make(map[int64]struct{}, len(incoming))
	for _, item := range incoming {
		id, ok := incomingID(item)
		if !ok {
			plan.ToInsert = append(plan.ToInsert, item)
			continue
		}
		if _, dup := referenced[id]; dup {
			return Plan[E, I]{}, fmt.Errorf("%w: %d", ErrDuplicateID, id)
		}
		referenced[id] = struct{}{}

		child, known := byID[id]
		if !known {
			return Plan[E, I]{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
		}
		plan.ToUpdate = append(plan.ToUpdate, Match[E, I]{Existing: child, Incoming: item})
	}

	// Removal by omission: existing children not referenced are deleted.
	// Iterate the original slice to keep the plan order deterministic.
	for _, child := range existing {
		if _, ok := referenced[existingID(child)]; !ok {
			plan.ToDelete = append(plan.ToDelete, child)
		}
	}

	return plan, nil
}
