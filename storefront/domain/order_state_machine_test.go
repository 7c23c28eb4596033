package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/storefront/domain"
	"encore.app/storefront/mocks/repository/order_repo"
	"encore.app/storefront/mocks/repository/product_repo"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
	"encore.app/storefront/repository/products"
)

func TestTransitionTx(t *testing.T) {
	actor := uuid.New()

	testCases := []struct {
		name           string
		from           model.OrderStatus
		to             model.OrderStatus
		mockUpdateErr  error
		mockTimeErr    error
		expectUpdate   bool
		expectTimeline bool
		expectedCode   errs.ErrCode
	}{
		{name: "pending_to_processing", from: model.OrderStatusPending, to: model.OrderStatusProcessing, expectUpdate: true, expectTimeline: true},
		{name: "processing_to_shipped", from: model.OrderStatusProcessing, to: model.OrderStatusShipped, expectUpdate: true, expectTimeline: true},
		{name: "delivered_to_refunded", from: model.OrderStatusDelivered, to: model.OrderStatusRefunded, expectUpdate: true, expectTimeline: true},
		{name: "shipped_to_cancelled_rejected", from: model.OrderStatusShipped, to: model.OrderStatusCancelled, expectedCode: errs.FailedPrecondition},
		{name: "cancelled_is_terminal", from: model.OrderStatusCancelled, to: model.OrderStatusPending, expectedCode: errs.FailedPrecondition},
		{name: "pending_cannot_skip_to_delivered", from: model.OrderStatusPending, to: model.OrderStatusDelivered, expectedCode: errs.FailedPrecondition},
		{name: "update_fails", from: model.OrderStatusPending, to: model.OrderStatusCancelled, mockUpdateErr: errors.New("boom"), expectUpdate: true, expectedCode: errs.Internal},
		{name: "timeline_fails", from: model.OrderStatusPending, to: model.OrderStatusCancelled, mockTimeErr: errors.New("boom"), expectUpdate: true, expectTimeline: true, expectedCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orderRepo := order_repo.NewMockQuerier(ctrl)
			tx := domain.Tx{Orders: orderRepo}
			sm := domain.NewOrderStateMachine(nil, nil, nil)
			current := orders.Order{ID: uuid.New(), Status: string(tc.from)}

			if tc.expectUpdate {
				orderRepo.EXPECT().
					UpdateOrderStatus(gomock.Any(), orders.UpdateOrderStatusParams{ID: current.ID, Status: string(tc.to)}).
					Return(orders.Order{ID: current.ID, Status: string(tc.to)}, tc.mockUpdateErr)
			}
			if tc.expectTimeline {
				orderRepo.EXPECT().
					CreateTimelineEntry(gomock.Any(), domain.TimelineParams(current.ID, tc.to, &actor, "note")).
					Return(orders.OrderTimeline{}, tc.mockTimeErr)
			}

			updated, err := sm.TransitionTx(context.Background(), tx, current, tc.to, &actor, "note")

			if tc.expectedCode != errs.OK {
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, string(tc.to), updated.Status)
		})
	}
}

func TestRestockTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := order_repo.NewMockQuerier(ctrl)
	productRepo := product_repo.NewMockQuerier(ctrl)
	tx := domain.Tx{Orders: orderRepo, Products: productRepo}
	sm := domain.NewOrderStateMachine(nil, nil, nil)

	orderID := uuid.New()
	saree := uuid.New()
	kurta := uuid.New()

	orderRepo.EXPECT().ListOrderItems(gomock.Any(), orderID).Return([]orders.OrderItem{
		{ProductID: saree, ProductName: "Silk Saree", Quantity: 2},
		{ProductID: kurta, ProductName: "Cotton Kurta", Quantity: 1},
	}, nil)
	productRepo.EXPECT().IncrementStock(gomock.Any(), products.IncrementStockParams{ID: saree, Quantity: 2}).Return(int32(7), nil)
	productRepo.EXPECT().IncrementStock(gomock.Any(), products.IncrementStockParams{ID: kurta, Quantity: 1}).Return(int32(0), errors.New("boom"))

	err := sm.RestockTx(context.Background(), tx, orderID)
	assert.Equal(t, errs.Internal, errs.Code(err))
	assert.Contains(t, err.Error(), "Cotton Kurta")
}

func TestTimelineParams(t *testing.T) {
	orderID := uuid.New()

	p := domain.TimelineParams(orderID, model.OrderStatusPending, nil, "")
	assert.False(t, p.Note.Valid)
	assert.False(t, p.ActorID.Valid)

	actor := uuid.New()
	p = domain.TimelineParams(orderID, model.OrderStatusShipped, &actor, "Out for delivery")
	assert.Equal(t, "shipped", p.Status)
	assert.Equal(t, "Out for delivery", p.Note.String)
	assert.Equal(t, actor, p.ActorID.UUID)
}
