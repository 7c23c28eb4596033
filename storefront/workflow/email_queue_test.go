package workflow

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.app/storefront/business/email"
	emailmock "encore.app/storefront/mocks/business/email_business"
	"encore.app/storefront/model"
)

func newTestEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *emailmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBiz := emailmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ProcessEmailQueueActivity)
	env.RegisterActivity(SendOrderEmailActivity)
	return env, mockBiz
}

func TestDrainEmailQueue_AppliesDefaults(t *testing.T) {
	env, mockBiz := newTestEnv(t)

	mockBiz.EXPECT().
		ProcessQueue(gomock.Any(), email.DefaultBatchSize, email.DefaultMaxAttempts).
		Return(email.QueueResult{Sent: 3, Retried: 1}, nil).
		Times(1)

	env.ExecuteWorkflow(DrainEmailQueue, DrainEmailQueueParams{})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result email.QueueResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, email.QueueResult{Sent: 3, Retried: 1}, result)
}

func TestDrainEmailQueue_RetriesActivityThenFails(t *testing.T) {
	env, mockBiz := newTestEnv(t)

	mockBiz.EXPECT().
		ProcessQueue(gomock.Any(), int32(10), int32(2)).
		Return(email.QueueResult{}, errors.New("database unavailable")).
		Times(3)

	env.ExecuteWorkflow(DrainEmailQueue, DrainEmailQueueParams{BatchSize: 10, MaxAttempts: 2})
	require.True(t, env.IsWorkflowCompleted())
	assert.Error(t, env.GetWorkflowError())
}

func TestOrderEmail(t *testing.T) {
	order := model.Order{ID: uuid.New(), OrderNumber: "NZ-20260301-ABC123"}

	testCases := []struct {
		name        string
		kind        OrderEmailKind
		setupMocks  func(m *emailmock.MockBusiness)
		expectError bool
	}{
		{
			name: "confirmation",
			kind: OrderEmailConfirmation,
			setupMocks: func(m *emailmock.MockBusiness) {
				m.EXPECT().SendOrderConfirmation(gomock.Any(), "aisha@example.com", gomock.Any()).Return(nil)
			},
		},
		{
			name: "cancellation",
			kind: OrderEmailCancellation,
			setupMocks: func(m *emailmock.MockBusiness) {
				m.EXPECT().SendOrderCancellation(gomock.Any(), "aisha@example.com", gomock.Any()).Return(nil)
			},
		},
		{
			name:        "unknown_kind_is_not_retried",
			kind:        "invoice",
			setupMocks:  func(m *emailmock.MockBusiness) {},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, mockBiz := newTestEnv(t)
			tc.setupMocks(mockBiz)

			env.ExecuteWorkflow(OrderEmail, OrderEmailParams{Kind: tc.kind, To: "aisha@example.com", Order: order})
			require.True(t, env.IsWorkflowCompleted())
			if tc.expectError {
				assert.Error(t, env.GetWorkflowError())
				return
			}
			assert.NoError(t, env.GetWorkflowError())
		})
	}
}

func TestOrderEmailWorkflowID(t *testing.T) {
	id := uuid.MustParse("4f1c3a52-8a57-4c4e-9a0e-2b8f9f1d6c11")
	params := OrderEmailParams{Kind: OrderEmailConfirmation, Order: model.Order{ID: id}}
	assert.Equal(t, "order-email-confirmation-4f1c3a52-8a57-4c4e-9a0e-2b8f9f1d6c11", OrderEmailWorkflowID(params))
}

func TestActivitiesWithoutDependencies(t *testing.T) {
	activityDeps = nil
	t.Cleanup(func() { activityDeps = nil })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(ProcessEmailQueueActivity)

	_, err := env.ExecuteActivity(ProcessEmailQueueActivity, DrainEmailQueueParams{BatchSize: 1, MaxAttempts: 1})
	assert.ErrorContains(t, err, "activity dependencies not initialized")
}
