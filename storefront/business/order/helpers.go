package order

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"encore.app/storefront/domain"
	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
)

// GetTimeline returns the order's timeline, oldest first
func (b *business) GetTimeline(ctx context.Context, actor model.Actor, orderID uuid.UUID) ([]model.TimelineEntry, error) {
	if _, err := b.loadOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}

	rows, err := b.orderRepo.ListTimelineEntries(ctx, orderID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order timeline"}
	}

	entries := make([]model.TimelineEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.ConvertDBTimelineToModel(row))
	}
	return entries, nil
}

// GetNotes returns the order's notes. Internal notes are only shown to admins.
func (b *business) GetNotes(ctx context.Context, actor model.Actor, orderID uuid.UUID) ([]model.OrderNote, error) {
	if _, err := b.loadOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}

	rows, err := b.orderRepo.ListOrderNotes(ctx, orderID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get order notes"}
	}

	notes := make([]model.OrderNote, 0, len(rows))
	for _, row := range rows {
		if row.IsInternal && !actor.Admin {
			continue
		}
		notes = append(notes, domain.ConvertDBNoteToModel(row))
	}
	return notes, nil
}

func (b *business) AddNote(ctx context.Context, actor model.Actor, orderID uuid.UUID, body string, internal bool) (*model.OrderNote, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := b.loadOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}

	row, err := b.orderRepo.CreateOrderNote(ctx, orders.CreateOrderNoteParams{
		OrderID:    orderID,
		AuthorID:   actor.ID,
		Body:       body,
		IsInternal: internal,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to add order note"}
	}

	note := domain.ConvertDBNoteToModel(row)
	return &note, nil
}

func (b *business) DeleteNote(ctx context.Context, actor model.Actor, orderID, noteID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	deleted, err := b.orderRepo.DeleteOrderNote(ctx, orders.DeleteOrderNoteParams{ID: noteID, OrderID: orderID})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to delete order note"}
	}
	if deleted == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "order note not found"}
	}
	return nil
}

// AddTimelineEntry records an event on the timeline without changing the order status
func (b *business) AddTimelineEntry(ctx context.Context, actor model.Actor, entry model.TimelineInput) (*model.TimelineEntry, error) {
	entries, err := b.BulkAddTimelineEntries(ctx, actor, []model.TimelineInput{entry})
	if err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// BulkAddTimelineEntries records all entries or none of them
func (b *business) BulkAddTimelineEntries(ctx context.Context, actor model.Actor, entries []model.TimelineInput) ([]model.TimelineEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no timeline entries given"}
	}
	for _, e := range entries {
		if e.OrderID == uuid.Nil || !e.Status.Valid() {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "timeline entry needs an order id and a known status"}
		}
	}

	result := make([]model.TimelineEntry, 0, len(entries))
	err := b.stateMachine.RunInTx(ctx, func(tx domain.Tx) error {
		for _, e := range entries {
			row, err := tx.Orders.CreateTimelineEntry(ctx, domain.TimelineParams(e.OrderID, e.Status, &actor.ID, e.Note))
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to add timeline entry"}
			}
			result = append(result, domain.ConvertDBTimelineToModel(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
