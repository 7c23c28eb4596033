// Package idempotency replays the stored response of a request whose
// X-Idempotency-Key was already completed, and rejects concurrent or
// conflicting reuse of a key.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/storefront/model"
)

const Header = "X-Idempotency-Key"

// Store is the subset of an Encore struct keyspace the middleware needs.
// Get must return cache.Miss for absent keys.
type Store interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

// Handle runs next at most once per (path, user, key).
func Handle(store Store, userID string, req middleware.Request, next middleware.Next) middleware.Response {
	key, keyErr := extractIdempotencyKey(req)
	if keyErr != nil {
		return middleware.Response{Err: keyErr}
	}

	ctx := req.Context()
	cacheKey := model.IdempotencyKey{Resource: req.Data().Path, UserID: userID, Key: key}
	bodyHash := bodyHash(req)

	entry, err := store.Get(ctx, cacheKey)
	switch {
	case errors.Is(err, cache.Miss):
		return processNew(ctx, store, cacheKey, bodyHash, req, next)
	case err != nil:
		rlog.Error("failed to check idempotency", "error", err, "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"}}
	}

	if conflict := validateBodyHash(entry, bodyHash); conflict != nil {
		return middleware.Response{Err: conflict}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."}}
	case model.IdempotencyCompleted:
		if resp, ok := replay(req, entry); ok {
			rlog.Info("returning cached response", "key", key)
			return resp
		}
		// Unreadable cached response: run the request again
		return next(req)
	default:
		rlog.Warn("unknown idempotency status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

func processNew(ctx context.Context, store Store, cacheKey model.IdempotencyKey, bodyHash string, req middleware.Request, next middleware.Next) middleware.Response {
	now := time.Now()
	if err := store.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"}}
	}

	resp := next(req)

	if resp.Err != nil {
		// Let the client retry with the same key
		if _, err := store.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to clear failed request from cache", "error", err)
		}
		return resp
	}

	completed := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       time.Now(),
	}
	if resp.Payload != nil {
		payload, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return resp
		}
		completed.Response = payload
	}
	if err := store.Set(ctx, cacheKey, completed); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
	return resp
}

// replay decodes the stored payload into a fresh value of the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyCacheEntry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}
	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return middleware.Response{}, false
	}

	out := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, out); err != nil {
		rlog.Error("failed to decode cached response", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: out}, true
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	return key, nil
}

func bodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
