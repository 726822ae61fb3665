package driver

import (
	"fmt"

	"github.com/induct-lang/induct/kernel/proof"
)

// A script step was neither an induction, a rewrite, nor a close.
type UnknownOperationError struct {
	At   int
	Step proof.Step
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("driver: unknown operation at step %d: %v", e.At, e.Step)
}

// A close was attempted on a goal whose two sides do not share a normal
// form.
type GoalNotClosedError struct {
	Goal proof.Goal
}

func (e *GoalNotClosedError) Error() string {
	return fmt.Sprintf("driver: goal not closed: %s", e.Goal)
}

// The script kept going after every goal had been discharged.
type SurplusStepError struct {
	At   int
	Step proof.Step
}

func (e *SurplusStepError) Error() string {
	return fmt.Sprintf("driver: step %d (%s) has no goal to act on", e.At, e.Step)
}

// The script ran out with goals still pending.
type OpenGoalsError struct {
	Remaining int
	Next      proof.Goal
}

func (e *OpenGoalsError) Error() string {
	return fmt.Sprintf("driver: script exhausted with %d open goals, next: %s", e.Remaining, e.Next)
}
