// internal/domain/order/status.go
package order

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the order status. Values outside the known set are valid
// under the permissive policy.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

var ErrTransitionNotAllowed = errors.New("order: status transition not allowed")

// PolicyKind tags which transition policy is active.
type PolicyKind string

const (
	PolicyPermissive PolicyKind = "permissive"
	PolicyStrict     PolicyKind = "strict"
)

// TransitionPolicy decides whether an order may move from one status to another.
type TransitionPolicy interface {
	Kind() PolicyKind
	Allow(from, to Status) error
}

// PermissivePolicy accepts every transition, including unknown statuses and
// self-transitions. The one rule it keeps is that the target status must not be
// blank: "" or whitespace returns ErrInvalidStatus, because a blank status can't
// be told apart from a missing field.
type PermissivePolicy struct{}

func (PermissivePolicy) Kind() PolicyKind { return PolicyPermissive }

func (PermissivePolicy) Allow(_, to Status) error {
	if strings.TrimSpace(string(to)) == "" {
		return ErrInvalidStatus
	}
	return nil
}

// TablePolicy allows only the listed edges. Self-transitions are accepted.
type TablePolicy struct {
	Next map[Status][]Status
}

// StrictPolicy: PENDING -> PAID -> SHIPPED -> DELIVERED, CANCELLED from PENDING/PAID.
func StrictPolicy() TablePolicy {
	return TablePolicy{Next: map[Status][]Status{
		StatusPending: {StatusPaid, StatusCancelled},
		StatusPaid:    {StatusShipped, StatusCancelled},
		StatusShipped: {StatusDelivered},
	}}
}

func (TablePolicy) Kind() PolicyKind { return PolicyStrict }

func (p TablePolicy) Allow(from, to Status) error {
	if strings.TrimSpace(string(to)) == "" {
		return ErrInvalidStatus
	}
	if from == to {
		return nil
	}
	for _, s := range p.Next[from] {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, from, to)
}

// PolicyByName maps a config value to a policy. Empty means permissive.
func PolicyByName(name string) (TransitionPolicy, error) {
	switch PolicyKind(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyPermissive:
		return PermissivePolicy{}, nil
	case PolicyStrict:
		return StrictPolicy(), nil
	default:
		return nil, fmt.Errorf("order: unknown status policy %q", name)
	}
}
