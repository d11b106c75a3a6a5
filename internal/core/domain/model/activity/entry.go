// Package activity describes the audit trail entries written after every
// successful mutation. Entries are append-only.
package activity

import (
	"errors"
	"strings"
	"time"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")

// Action names what happened, "<subject>.<verb>".
type Action string

const (
	OrderCreated       Action = "order.created"
	OrderStatusChanged Action = "order.status_changed"
	OrderRiderAssigned Action = "order.rider_assigned"
	OrderDelivered     Action = "order.delivered"
	OrderArchived      Action = "order.archived"

	InventoryCreated   Action = "inventory.created"
	InventoryAdjusted  Action = "inventory.adjusted"
	InventoryRestocked Action = "inventory.quantity_set"
	InventoryRepriced  Action = "inventory.price_changed"
	InventoryArchived  Action = "inventory.archived"

	UserCreated       Action = "user.created"
	UserStatusChanged Action = "user.status_changed"
)

// Subject types used in entries.
const (
	SubjectOrder     = "order"
	SubjectInventory = "inventory_item"
	SubjectUser      = "user"
)

// Entry is one line of the audit trail.
type Entry struct {
	id          kernel.UUID
	actorID     *kernel.UUID
	action      Action
	description string
	subjectType string
	subjectID   kernel.UUID
	properties  map[string]any
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewEntry builds an entry about subjectID of subjectType. actorID is nil
// for system actions. properties may be nil.
func NewEntry(
	actorID *kernel.UUID,
	action Action,
	subjectType string,
	subjectID kernel.UUID,
	description string,
	properties map[string]any,
) (Entry, error) {
	var errList []error
	if strings.TrimSpace(string(action)) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("action"))
	}
	if strings.TrimSpace(subjectType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("subject type"))
	}
	if err := subjectID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Entry{}, err
	}

	props := make(map[string]any, len(properties))
	for k, v := range properties {
		props[k] = v
	}

	return Entry{
		id:          kernel.NewUUID(),
		actorID:     actorID,
		action:      action,
		description: description,
		subjectType: subjectType,
		subjectID:   subjectID,
		properties:  props,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) ActorID() *kernel.UUID {
	return e.actorID
}

func (e Entry) Action() Action {
	return e.action
}

func (e Entry) Description() string {
	return e.description
}

func (e Entry) SubjectType() string {
	return e.subjectType
}

func (e Entry) SubjectID() kernel.UUID {
	return e.subjectID
}

// Properties returns a copy of the structured details.
func (e Entry) Properties() map[string]any {
	props := make(map[string]any, len(e.properties))
	for k, v := range e.properties {
		props[k] = v
	}
	return props
}

func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}
