// Package handler implements the category and transaction operations.
// Every operation opens its own unit of work, runs one query shape and
// answers with a dto envelope; errors are logged here and never leak to
// the caller.
package handler

import (
	"context" // Request scoped cancellation
	"fmt"     // Key formatting

	"fina/internal/db"    // Unit of work
	"fina/internal/dto"   // Request and response shapes
	"fina/internal/utils" // Cache

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// findOwned loads the entity with id that belongs to userID, nil when absent
func findOwned[T any](ctx context.Context, set db.Set[T], id int64, userID string) (*T, error) {
	return set.Query().
		Where("id = ? AND user_id = ?", id, userID).
		FirstOrDefault(ctx)
}

// page reads one page of q and the total size of q
func page[T any](ctx context.Context, q db.Query[T], req dto.PagedRequest) ([]T, int64, error) {
	items, err := q.Skip(req.Offset()).Take(req.PageSize).ToList(ctx) // Requested page
	if err != nil {
		return nil, 0, err
	}
	count, err := q.Count(ctx) // Same filter, no paging
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// cacheScope names the generation counter for one entity of one user
func cacheScope(entity, userID string) string {
	return fmt.Sprintf("fina:%s:user:%s", entity, userID)
}

// cachedRead serves a response from cache or computes and stores it.
// Only successful responses are stored.
func cachedRead[R interface{ IsSuccess() bool }](ctx context.Context, cache *utils.Cache, scope, key string, load func() R) R {
	if cache == nil {
		return load() // Caching disabled
	}
	gen, err := cache.Generation(ctx, scope)
	if err != nil {
		logrus.WithFields(logrus.Fields{"scope": scope, "error": err.Error()}).Warn("Cache generation lookup failed")
		return load()
	}
	fullKey := fmt.Sprintf("%s:gen:%d:%s", scope, gen, key) // Keys of older generations are never read again

	var cached R
	if found, err := cache.Get(ctx, fullKey, &cached); err == nil && found {
		return cached // Cache hit
	} else if err != nil {
		logrus.WithFields(logrus.Fields{"key": fullKey, "error": err.Error()}).Warn("Cache read failed")
	}

	resp := load()        // Cache miss
	if resp.IsSuccess() { // Failures are never cached
		if err := cache.Set(ctx, fullKey, resp); err != nil {
			logrus.WithFields(logrus.Fields{"key": fullKey, "error": err.Error()}).Warn("Cache write failed")
		}
	}
	return resp
}

// invalidate makes every cached read of scope stale
func invalidate(ctx context.Context, cache *utils.Cache, scope string) {
	if err := cache.Bump(ctx, scope); err != nil {
		logrus.WithFields(logrus.Fields{"scope": scope, "error": err.Error()}).Warn("Cache invalidation failed")
	}
}

// logFailure records a swallowed persistence error
func logFailure(err error, msg, userID string, id int64) {
	fields := logrus.Fields{"user_id": userID, "error": err.Error()} // Never sent to the caller
	if id != 0 {
		fields["id"] = id
	}
	logrus.WithFields(fields).Error(msg)
}
