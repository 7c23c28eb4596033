package order

import (
	"context"

	"github.com/google/uuid"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
)

type Business interface {
	GetOrder(ctx context.Context, actor model.Actor, orderID uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context, actor model.Actor, limit, offset int32) ([]*model.Order, int64, error)
	CancelOrder(ctx context.Context, actor model.Actor, orderID uuid.UUID, reason string) (*model.Order, error)
	UpdateStatus(ctx context.Context, actor model.Actor, orderID uuid.UUID, status model.OrderStatus, note string) (*model.Order, error)

	GetTimeline(ctx context.Context, actor model.Actor, orderID uuid.UUID) ([]model.TimelineEntry, error)
	GetNotes(ctx context.Context, actor model.Actor, orderID uuid.UUID) ([]model.OrderNote, error)
	AddNote(ctx context.Context, actor model.Actor, orderID uuid.UUID, body string, internal bool) (*model.OrderNote, error)
	DeleteNote(ctx context.Context, actor model.Actor, orderID, noteID uuid.UUID) error
	AddTimelineEntry(ctx context.Context, actor model.Actor, entry model.TimelineInput) (*model.TimelineEntry, error)
	BulkAddTimelineEntries(ctx context.Context, actor model.Actor, entries []model.TimelineInput) ([]model.TimelineEntry, error)
}

type business struct {
	orderRepo    orders.Querier
	stateMachine domain.StateMachine
}

// NewOrderBusiness creates the order management business layer
func NewOrderBusiness(orderRepo orders.Querier, stateMachine domain.StateMachine) Business {
	return &business{
		orderRepo:    orderRepo,
		stateMachine: stateMachine,
	}
}
