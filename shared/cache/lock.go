package cache

import (
	"context"
	"fmt"

	"busbooking/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Acquire takes the lock at key for at most ttl seconds. A lock someone else holds fails with
// failure.SubmissionInFlightError. The returned release survives the cancellation of ctx and
// never deletes a lock that has since expired and been taken by someone else.
func Acquire(ctx context.Context, c RedisCache, key string, ttl int) (release func(), err error) {
	token := uuid.NewString()

	acquired, err := c.Lock(ctx, key, token, ttl)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to acquire lock")

		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !acquired {
		log.Warn().Str("key", key).Msg("submission already in flight")

		return nil, failure.SubmissionInFlightError
	}

	return func() {
		released, err := c.Unlock(context.WithoutCancel(ctx), key, token)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to release lock")

			return
		}

		if !released {
			log.Warn().Str("key", key).Msg("lock expired before release")
		}
	}, nil
}
