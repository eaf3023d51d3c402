package route

import (
	"fmt"
	"time"

	"routing/internal/core/domain/model/kernel"
)

// ViolationReason tells which constraint a sequence broke first.
type ViolationReason int

const (
	NoViolation ViolationReason = iota
	PrecedenceViolated
	TimeWindowMissed
)

func (r ViolationReason) String() string {
	switch r {
	case PrecedenceViolated:
		return "precedence_violated"
	case TimeWindowMissed:
		return "time_window_missed"
	default:
		return "none"
	}
}

// Violation locates the first broken constraint of an infeasible sequence.
type Violation struct {
	Index    int
	StopID   kernel.UUID
	Reason   ViolationReason
	Lateness time.Duration
}

func (v Violation) String() string {
	if v.Reason == TimeWindowMissed {
		return fmt.Sprintf("%s at stop %d (%s), late by %s", v.Reason, v.Index, v.StopID, v.Lateness)
	}
	return fmt.Sprintf("%s at stop %d (%s)", v.Reason, v.Index, v.StopID)
}

// Plan is the engine's answer to a sequencing or validation request.
//
// An infeasible plan is a regular result: Violation points at the first
// offending stop and Metrics still cover the whole walk. BudgetExceeded marks
// a plan whose improvement phase stopped on its iteration or time budget.
type Plan struct {
	Sequence       Sequence
	Metrics        Metrics
	Feasible       bool
	Violation      *Violation
	BudgetExceeded bool
	Iterations     int
}
