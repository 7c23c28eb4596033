// Package saga runs a named sequence of forward steps, each paired with a
// compensating action. The first failing step stops the sequence and the
// compensations of the steps that already ran are executed in reverse order.
package saga

import (
	"context"
	"fmt"

	"encore.dev/rlog"
)

// Action is a forward or compensating step body.
type Action func(ctx context.Context) error

type step struct {
	name string
	do   Action
	undo Action
}

// CompensationHook receives compensation failures. They are reported, never returned.
type CompensationHook func(sagaName, stepName string, err error)

// Saga is an ordered list of {do, undo} pairs.
type Saga struct {
	name                string
	steps               []step
	onCompensationError CompensationHook
}

// New creates an empty saga. Compensation failures are logged with rlog
// unless OnCompensationError replaces the hook.
func New(name string) *Saga {
	return &Saga{
		name: name,
		onCompensationError: func(sagaName, stepName string, err error) {
			rlog.Error("saga compensation failed", "saga", sagaName, "step", stepName, "error", err)
		},
	}
}

// Step appends a step. undo may be nil for steps with nothing to revert.
func (s *Saga) Step(name string, do, undo Action) *Saga {
	s.steps = append(s.steps, step{name: name, do: do, undo: undo})
	return s
}

// OnCompensationError replaces the hook that receives compensation failures.
func (s *Saga) OnCompensationError(hook CompensationHook) *Saga {
	if hook != nil {
		s.onCompensationError = hook
	}
	return s
}

// Run executes the steps in order. On the first failure it unwinds the
// executed steps and returns the original error unchanged.
func (s *Saga) Run(ctx context.Context) error {
	for i, st := range s.steps {
		if err := s.runStep(ctx, st); err != nil {
			s.compensate(ctx, i-1)
			return err
		}
	}
	return nil
}

func (s *Saga) runStep(ctx context.Context, st step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("saga %s: step %s panicked: %v", s.name, st.name, r)
		}
	}()
	return st.do(ctx)
}

// compensate runs undo for steps [0..last] in reverse order. A cancelled
// request context must not stop the rollback, so it is detached.
func (s *Saga) compensate(ctx context.Context, last int) {
	ctx = context.WithoutCancel(ctx)
	for i := last; i >= 0; i-- {
		st := s.steps[i]
		if st.undo == nil {
			continue
		}
		if err := s.runUndo(ctx, st); err != nil {
			s.onCompensationError(s.name, st.name, err)
		}
	}
}

func (s *Saga) runUndo(ctx context.Context, st step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("undo panicked: %v", r)
		}
	}()
	return st.undo(ctx)
}
