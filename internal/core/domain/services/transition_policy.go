package services

import (
	"fmt"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/order"
	"github.com/ericks0nmartinez/burger/internal/pkg/errs"
)

// TransitionPolicy decides whether an order may move from one status to
// another. The Order aggregate only guarantees timeline consistency; which
// edges of the status graph are legal is a policy concern, kept behind this
// interface so installations can swap rules without touching the tracker.
type TransitionPolicy interface {
	// Allow returns nil when the from→to transition is permitted.
	Allow(from, to order.Status) error
}

// PermissiveTransitionPolicy allows any transition between valid statuses.
// This is the default: the counter staff is trusted to move orders freely,
// including backwards when a mistake needs undoing.
type PermissiveTransitionPolicy struct{}

// NewPermissiveTransitionPolicy creates a PermissiveTransitionPolicy.
func NewPermissiveTransitionPolicy() PermissiveTransitionPolicy {
	return PermissiveTransitionPolicy{}
}

// Allow permits every edge between valid statuses.
func (PermissiveTransitionPolicy) Allow(from, to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	return nil
}

// WorkflowTransitionPolicy enforces the kitchen workflow graph:
//
//	Awaiting ──> Preparing ──> Ready ──┬──> Delivered
//	                                   │
//	                                   └──> OutForDelivery ──> Delivered
//
// with Cancelled reachable from any non-final status. Final statuses accept
// no further transitions.
type WorkflowTransitionPolicy struct{}

// NewWorkflowTransitionPolicy creates a WorkflowTransitionPolicy.
func NewWorkflowTransitionPolicy() WorkflowTransitionPolicy {
	return WorkflowTransitionPolicy{}
}

// Allow permits only the forward edges of the kitchen workflow.
func (WorkflowTransitionPolicy) Allow(from, to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if from.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is final and accepts no transitions", from.String()))
	}

	if to == order.Cancelled {
		return nil
	}

	allowed := map[order.Status][]order.Status{
		order.Awaiting:       {order.Preparing},
		order.Preparing:      {order.Ready},
		order.Ready:          {order.Delivered, order.OutForDelivery},
		order.OutForDelivery: {order.Delivered},
	}

	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("transition from %s to %s is not allowed", from.String(), to.String()))
}
