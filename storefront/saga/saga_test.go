package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSagaRun(t *testing.T) {
	errBoom := errors.New("boom")

	testCases := []struct {
		name             string
		failAt           int
		undoErrAt        int
		expectedLog      []string
		expectedErr      error
		expectedHookHits []string
	}{
		{
			name:        "all_steps_succeed",
			failAt:      -1,
			undoErrAt:   -1,
			expectedLog: []string{"do:a", "do:b", "do:c"},
		},
		{
			name:        "first_step_fails_nothing_to_undo",
			failAt:      0,
			undoErrAt:   -1,
			expectedLog: []string{"do:a"},
			expectedErr: errBoom,
		},
		{
			name:        "last_step_fails_unwinds_in_reverse",
			failAt:      2,
			undoErrAt:   -1,
			expectedLog: []string{"do:a", "do:b", "do:c", "undo:b", "undo:a"},
			expectedErr: errBoom,
		},
		{
			name:             "compensation_failure_is_reported_not_returned",
			failAt:           2,
			undoErrAt:        1,
			expectedLog:      []string{"do:a", "do:b", "do:c", "undo:b", "undo:a"},
			expectedErr:      errBoom,
			expectedHookHits: []string{"b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			var hookHits []string

			s := New("test").OnCompensationError(func(sagaName, stepName string, err error) {
				assert.Equal(t, "test", sagaName)
				hookHits = append(hookHits, stepName)
			})

			for i, name := range []string{"a", "b", "c"} {
				i, name := i, name
				s.Step(name,
					func(ctx context.Context) error {
						log = append(log, "do:"+name)
						if i == tc.failAt {
							return errBoom
						}
						return nil
					},
					func(ctx context.Context) error {
						log = append(log, "undo:"+name)
						if i == tc.undoErrAt {
							return errors.New("undo failed")
						}
						return nil
					},
				)
			}

			err := s.Run(context.Background())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedLog, log)
			assert.Equal(t, tc.expectedHookHits, hookHits)
		})
	}
}

func TestSagaNilUndoIsSkipped(t *testing.T) {
	var undone []string
	errBoom := errors.New("boom")

	err := New("nil-undo").
		Step("note", func(ctx context.Context) error { return nil }, nil).
		Step("items", func(ctx context.Context) error { return nil }, func(ctx context.Context) error {
			undone = append(undone, "items")
			return nil
		}).
		Step("stock", func(ctx context.Context) error { return errBoom }, nil).
		Run(context.Background())

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []string{"items"}, undone)
}

func TestSagaPanicInStepIsCompensated(t *testing.T) {
	undone := false

	err := New("panics").
		Step("first", func(ctx context.Context) error { return nil }, func(ctx context.Context) error {
			undone = true
			return nil
		}).
		Step("second", func(ctx context.Context) error { panic("kaboom") }, nil).
		Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "step second panicked")
	assert.True(t, undone)
}

func TestSagaCompensationIgnoresCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var undoCtxErr error

	err := New("cancelled").
		Step("first", func(ctx context.Context) error { return nil }, func(ctx context.Context) error {
			undoCtxErr = ctx.Err()
			return nil
		}).
		Step("second", func(ctx context.Context) error {
			cancel()
			return ctx.Err()
		}, nil).
		Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, undoCtxErr)
}
