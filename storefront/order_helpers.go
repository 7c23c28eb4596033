package storefront

import (
	"context"
	"encoding/json"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"encore.app/storefront/model"
)

const (
	actionGetOrderTimeline       = "getOrderTimeline"
	actionGetOrderNotes          = "getOrderNotes"
	actionAddOrderNote           = "addOrderNote"
	actionDeleteOrderNote        = "deleteOrderNote"
	actionAddOrderTimelineEntry  = "addOrderTimelineEntry"
	actionBulkAddTimelineEntries = "bulkAddTimelineEntries"
)

type OrderHelperRequest struct {
	Action string          `json:"action" validate:"required,oneof=getOrderTimeline getOrderNotes addOrderNote deleteOrderNote addOrderTimelineEntry bulkAddTimelineEntries"`
	Params json.RawMessage `json:"params"`
}

// Validate implements validation for OrderHelperRequest
func (r *OrderHelperRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// OrderHelperResponse sets the field matching the action.
type OrderHelperResponse struct {
	Timeline []model.TimelineEntry `json:"timeline,omitempty"`
	Notes    []model.OrderNote     `json:"notes,omitempty"`
	Note     *model.OrderNote      `json:"note,omitempty"`
	Entry    *model.TimelineEntry  `json:"entry,omitempty"`
	Deleted  bool                  `json:"deleted,omitempty"`
}

type orderRef struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
}

type addNoteParams struct {
	OrderID    string `json:"order_id" validate:"required,uuid"`
	Note       string `json:"note" validate:"required,max=2000"`
	IsInternal bool   `json:"is_internal"`
}

type deleteNoteParams struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	NoteID  string `json:"note_id" validate:"required,uuid"`
}

type timelineParams struct {
	OrderID string            `json:"order_id" validate:"required,uuid"`
	Status  model.OrderStatus `json:"status" validate:"required"`
	Note    string            `json:"note,omitempty" validate:"max=500"`
}

type bulkTimelineParams struct {
	Entries []timelineParams `json:"entries" validate:"required,min=1,max=100,dive"`
}

// OrderHelpers is the multiplexed endpoint behind the order detail screens.
//
//encore:api auth path=/v1/order-helpers method=POST
func (s *Service) OrderHelpers(ctx context.Context, req *OrderHelperRequest) (*OrderHelperResponse, error) {
	actor, _, err := requireActor()
	if err != nil {
		return nil, err
	}

	resp, err := s.runOrderHelper(ctx, actor, req)
	if err != nil {
		rlog.Error("failed to run order helper", "error", err, "action", req.Action, "user_id", actor.ID)
		return nil, err
	}
	return resp, nil
}

func (s *Service) runOrderHelper(ctx context.Context, actor model.Actor, req *OrderHelperRequest) (*OrderHelperResponse, error) {
	switch req.Action {
	case actionGetOrderTimeline:
		var p orderRef
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		timeline, err := s.orders.GetTimeline(ctx, actor, mustUUID(p.OrderID))
		if err != nil {
			return nil, err
		}
		return &OrderHelperResponse{Timeline: timeline}, nil

	case actionGetOrderNotes:
		var p orderRef
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		notes, err := s.orders.GetNotes(ctx, actor, mustUUID(p.OrderID))
		if err != nil {
			return nil, err
		}
		return &OrderHelperResponse{Notes: notes}, nil

	case actionAddOrderNote:
		var p addNoteParams
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		note, err := s.orders.AddNote(ctx, actor, mustUUID(p.OrderID), p.Note, p.IsInternal)
		if err != nil {
			return nil, err
		}
		return &OrderHelperResponse{Note: note}, nil

	case actionDeleteOrderNote:
		var p deleteNoteParams
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		if err := s.orders.DeleteNote(ctx, actor, mustUUID(p.OrderID), mustUUID(p.NoteID)); err != nil {
			return nil, err
		}
		return &OrderHelperResponse{Deleted: true}, nil

	case actionAddOrderTimelineEntry:
		var p timelineParams
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		entry, err := s.orders.AddTimelineEntry(ctx, actor, p.input())
		if err != nil {
			return nil, err
		}
		return &OrderHelperResponse{Entry: entry}, nil

	case actionBulkAddTimelineEntries:
		var p bulkTimelineParams
		if err := decodeParams(req.Params, &p); err != nil {
			return nil, err
		}
		inputs := make([]model.TimelineInput, 0, len(p.Entries))
		for _, e := range p.Entries {
			inputs = append(inputs, e.input())
		}
		timeline, err := s.orders.BulkAddTimelineEntries(ctx, actor, inputs)
		if err != nil {
			return nil, err
		}
		return &OrderHelperResponse{Timeline: timeline}, nil
	}
	return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unknown action " + req.Action}
}

func (p timelineParams) input() model.TimelineInput {
	return model.TimelineInput{OrderID: mustUUID(p.OrderID), Status: p.Status, Note: p.Note}
}

// decodeParams unmarshals and validates the params of one action.
func decodeParams(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid params"}
	}
	if err := validate.Struct(out); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// mustUUID parses an id already checked by the uuid validator tag.
func mustUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
