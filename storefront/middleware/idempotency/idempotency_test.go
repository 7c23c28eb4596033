package idempotency

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/storage/cache"

	"encore.app/storefront/model"
)

type memoryStore struct {
	mu      sync.Mutex
	entries map[model.IdempotencyKey]model.IdempotencyCacheEntry
	getErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[model.IdempotencyKey]model.IdempotencyCacheEntry{}}
}

func (s *memoryStore) Get(_ context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return model.IdempotencyCacheEntry{}, s.getErr
	}
	e, ok := s.entries[key]
	if !ok {
		return e, cache.Miss
	}
	return e, nil
}

func (s *memoryStore) Set(_ context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
	return nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...model.IdempotencyKey) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, k := range keys {
		if _, ok := s.entries[k]; ok {
			delete(s.entries, k)
			n++
		}
	}
	return n, nil
}

type orderResponse struct {
	OrderNumber string `json:"order_number"`
}

type checkoutPayload struct {
	Coupon string `json:"coupon"`
}

func newRequest(key string, payload any) middleware.Request {
	headers := http.Header{}
	if key != "" {
		headers.Set(Header, key)
	}
	return middleware.NewRequest(context.Background(), &encore.Request{
		Path:    "/v1/checkout",
		Headers: headers,
		Payload: payload,
		API:     &encore.APIDesc{ResponseType: reflect.TypeOf(&orderResponse{})},
	})
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{name: "valid_key", headers: http.Header{Header: []string{"test-key-123"}}, expectedKey: "test-key-123"},
		{name: "surrounding_spaces_trimmed", headers: http.Header{Header: []string{"  k-1  "}}, expectedKey: "k-1"},
		{name: "missing_header", headers: http.Header{}, expectedError: "X-Idempotency-Key header is required"},
		{name: "empty_header_value", headers: http.Header{Header: []string{""}}, expectedError: "X-Idempotency-Key header is required"},
		{name: "whitespace_only_header", headers: http.Header{Header: []string{"   "}}, expectedError: "X-Idempotency-Key header is required"},
		{name: "multiple_header_values_takes_first", headers: http.Header{Header: []string{"first-key", "second-key"}}, expectedKey: "first-key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := middleware.NewRequest(context.Background(), &encore.Request{Path: "/test", Headers: tc.headers})

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Empty(t, key)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.expectedKey, key)
		})
	}
}

func TestHashing(t *testing.T) {
	assert.Equal(t, "", hashing(nil))
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hashing([]byte("test")))
	assert.NotEqual(t, hashing([]byte(`{"a":1}`)), hashing([]byte(`{"a":2}`)))
}

func TestHandle(t *testing.T) {
	t.Run("first_request_runs_and_is_cached", func(t *testing.T) {
		store := newMemoryStore()
		calls := 0
		next := func(req middleware.Request) middleware.Response {
			calls++
			return middleware.Response{Payload: &orderResponse{OrderNumber: "NZ-1"}}
		}

		first := Handle(store, "user-1", newRequest("k1", &checkoutPayload{Coupon: "SAVE10"}), next)
		require.NoError(t, first.Err)

		second := Handle(store, "user-1", newRequest("k1", &checkoutPayload{Coupon: "SAVE10"}), next)
		require.NoError(t, second.Err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, &orderResponse{OrderNumber: "NZ-1"}, second.Payload)
	})

	t.Run("keys_are_scoped_per_user", func(t *testing.T) {
		store := newMemoryStore()
		calls := 0
		next := func(req middleware.Request) middleware.Response {
			calls++
			return middleware.Response{Payload: &orderResponse{}}
		}

		Handle(store, "user-1", newRequest("same", nil), next)
		Handle(store, "user-2", newRequest("same", nil), next)
		assert.Equal(t, 2, calls)
	})

	t.Run("conflicting_body_rejected", func(t *testing.T) {
		store := newMemoryStore()
		next := func(req middleware.Request) middleware.Response {
			return middleware.Response{Payload: &orderResponse{}}
		}

		Handle(store, "u", newRequest("k", &checkoutPayload{Coupon: "A"}), next)
		resp := Handle(store, "u", newRequest("k", &checkoutPayload{Coupon: "B"}), next)
		assert.Equal(t, errs.InvalidArgument, errs.Code(resp.Err))
	})

	t.Run("in_flight_request_aborts_duplicate", func(t *testing.T) {
		store := newMemoryStore()
		var inner middleware.Response
		next := func(req middleware.Request) middleware.Response {
			inner = Handle(store, "u", newRequest("k", nil), func(middleware.Request) middleware.Response {
				t.Fatal("duplicate must not run")
				return middleware.Response{}
			})
			return middleware.Response{Payload: &orderResponse{}}
		}

		Handle(store, "u", newRequest("k", nil), next)
		assert.Equal(t, errs.Aborted, errs.Code(inner.Err))
	})

	t.Run("failed_request_can_be_retried", func(t *testing.T) {
		store := newMemoryStore()
		calls := 0
		next := func(req middleware.Request) middleware.Response {
			calls++
			if calls == 1 {
				return middleware.Response{Err: &errs.Error{Code: errs.FailedPrecondition, Message: "Insufficient stock"}}
			}
			return middleware.Response{Payload: &orderResponse{OrderNumber: "NZ-2"}}
		}

		first := Handle(store, "u", newRequest("k", nil), next)
		assert.Error(t, first.Err)

		second := Handle(store, "u", newRequest("k", nil), next)
		require.NoError(t, second.Err)
		assert.Equal(t, 2, calls)
	})

	t.Run("missing_key_rejected", func(t *testing.T) {
		resp := Handle(newMemoryStore(), "u", newRequest("", nil), func(middleware.Request) middleware.Response {
			t.Fatal("must not run")
			return middleware.Response{}
		})
		assert.Equal(t, errs.InvalidArgument, errs.Code(resp.Err))
	})

	t.Run("store_failure_is_internal", func(t *testing.T) {
		store := newMemoryStore()
		store.getErr = errors.New("redis down")
		resp := Handle(store, "u", newRequest("k", nil), func(middleware.Request) middleware.Response {
			t.Fatal("must not run")
			return middleware.Response{}
		})
		assert.Equal(t, errs.Internal, errs.Code(resp.Err))
	})
}
