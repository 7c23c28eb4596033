package idempotency

import (
	"time"

	"encore.dev/beta/auth"
	"encore.dev/middleware"
	"encore.dev/storage/cache"

	"encore.app/storefront/model"
)

// Retention is how long a completed response stays replayable.
const Retention = 24 * time.Hour

var cluster = cache.NewCluster("storefront-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Responses holds one entry per (path, user, key).
var Responses = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:UserID/:Key/:Resource",
		DefaultExpiry: cache.ExpireIn(Retention),
	},
)

const anonymous = "anonymous"

//encore:middleware target=tag:idempotency
func RequireIdempotencyKey(req middleware.Request, next middleware.Next) middleware.Response {
	userID := anonymous
	if uid, ok := auth.UserID(); ok {
		userID = string(uid)
	}
	return Handle(Responses, userID, req, next)
}
