package orders

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CountOrdersByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	CreateOrderNote(ctx context.Context, arg CreateOrderNoteParams) (OrderNote, error)
	CreateTimelineEntry(ctx context.Context, arg CreateTimelineEntryParams) (OrderTimeline, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	DeleteOrderItems(ctx context.Context, orderID uuid.UUID) error
	DeleteOrderNote(ctx context.Context, arg DeleteOrderNoteParams) (int64, error)
	GetOrder(ctx context.Context, id uuid.UUID) (Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (Order, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)
	ListOrderNotes(ctx context.Context, orderID uuid.UUID) ([]OrderNote, error)
	ListOrdersByUser(ctx context.Context, arg ListOrdersByUserParams) ([]Order, error)
	ListTimelineEntries(ctx context.Context, orderID uuid.UUID) ([]OrderTimeline, error)
	SetOrderNotes(ctx context.Context, arg SetOrderNotesParams) error
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
}

var _ Querier = (*Queries)(nil)
