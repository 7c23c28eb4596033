package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/storefront/model"
	"encore.app/storefront/repository/orders"
	"encore.app/storefront/repository/products"
)

// Tx is the set of repositories bound to the transaction holding an order's row lock.
type Tx struct {
	Orders   orders.Querier
	Products products.Querier
}

// StateMachine defines order state transitions and the transaction they run in
type StateMachine interface {
	// ExecuteWithLock locks the order row and runs businessLogic inside the
	// transaction. Returning an error rolls everything back.
	ExecuteWithLock(ctx context.Context, orderID uuid.UUID, businessLogic func(tx Tx, order orders.Order) error) error

	// RunInTx runs fn in a transaction without locking any order
	RunInTx(ctx context.Context, fn func(tx Tx) error) error

	// TransitionTx moves the order to next and appends a timeline entry
	TransitionTx(ctx context.Context, tx Tx, current orders.Order, next model.OrderStatus, actorID *uuid.UUID, note string) (orders.Order, error)

	// RestockTx returns every item of the order to stock
	RestockTx(ctx context.Context, tx Tx, orderID uuid.UUID) error
}

// OrderStateMachine owns the transaction boundary for order status changes
type OrderStateMachine struct {
	db           *pgxpool.Pool
	orderRepo    *orders.Queries
	productsRepo *products.Queries
}

var _ StateMachine = (*OrderStateMachine)(nil)

// NewOrderStateMachine creates a new order state machine with database and repository access
func NewOrderStateMachine(db *pgxpool.Pool, orderRepo *orders.Queries, productsRepo *products.Queries) *OrderStateMachine {
	return &OrderStateMachine{
		db:           db,
		orderRepo:    orderRepo,
		productsRepo: productsRepo,
	}
}

// ExecuteWithLock performs businessLogic with the order row locked by SELECT ... FOR UPDATE
func (sm *OrderStateMachine) ExecuteWithLock(ctx context.Context, orderID uuid.UUID, businessLogic func(tx Tx, order orders.Order) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txRepos := Tx{
		Orders:   sm.orderRepo.WithTx(tx),
		Products: sm.productsRepo.WithTx(tx),
	}

	current, err := txRepos.Orders.GetOrderForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock order for state transition"}
	}

	// The row stays locked until commit or rollback
	if err := businessLogic(txRepos, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}
	return nil
}

// RunInTx performs fn with transaction-bound repositories, committing only if fn succeeds
func (sm *OrderStateMachine) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(Tx{Orders: sm.orderRepo.WithTx(tx), Products: sm.productsRepo.WithTx(tx)}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}

// TransitionTx validates and applies a status change within the locked transaction
func (sm *OrderStateMachine) TransitionTx(ctx context.Context, tx Tx, current orders.Order, next model.OrderStatus, actorID *uuid.UUID, note string) (orders.Order, error) {
	from := model.OrderStatus(current.Status)
	if !from.CanTransitionTo(next) {
		return orders.Order{}, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("order cannot move from %s to %s", from, next),
		}
	}

	updated, err := tx.Orders.UpdateOrderStatus(ctx, orders.UpdateOrderStatusParams{
		ID:     current.ID,
		Status: string(next),
	})
	if err != nil {
		return orders.Order{}, &errs.Error{Code: errs.Internal, Message: "failed to update order status"}
	}

	if _, err := tx.Orders.CreateTimelineEntry(ctx, TimelineParams(current.ID, next, actorID, note)); err != nil {
		return orders.Order{}, &errs.Error{Code: errs.Internal, Message: "failed to record order timeline"}
	}
	return updated, nil
}

// RestockTx increments stock for every item of the order within the locked transaction
func (sm *OrderStateMachine) RestockTx(ctx context.Context, tx Tx, orderID uuid.UUID) error {
	items, err := tx.Orders.ListOrderItems(ctx, orderID)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to load order items"}
	}
	for _, item := range items {
		if _, err := tx.Products.IncrementStock(ctx, products.IncrementStockParams{
			ID:       item.ProductID,
			Quantity: item.Quantity,
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to restock " + item.ProductName}
		}
	}
	return nil
}

// TimelineParams builds the insert for one timeline entry.
func TimelineParams(orderID uuid.UUID, status model.OrderStatus, actorID *uuid.UUID, note string) orders.CreateTimelineEntryParams {
	p := orders.CreateTimelineEntryParams{
		OrderID: orderID,
		Status:  string(status),
		Note:    pgtype.Text{String: note, Valid: note != ""},
	}
	if actorID != nil {
		p.ActorID = uuid.NullUUID{UUID: *actorID, Valid: true}
	}
	return p
}
