package travel

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/loopline/dispatch/internal/pkg/constants"
	"github.com/loopline/dispatch/internal/pkg/database"
	"github.com/loopline/dispatch/internal/pkg/logger"
	"github.com/loopline/dispatch/internal/pkg/models"
	"github.com/loopline/dispatch/internal/utils"
)

// CachedEstimator memoizes estimates in Redis, bucketed by geohash cell so
// nearby points share an entry. ETA propagation revisits the same legs on
// every route change; without the cache each sweep would hammer the engine.
type CachedEstimator struct {
	inner Estimator
	redis *database.RedisClient
	ttl   time.Duration
}

// NewCachedEstimator wraps an estimator with a Redis cache.
func NewCachedEstimator(inner Estimator, redisClient *database.RedisClient, config models.TravelConfig) *CachedEstimator {
	ttl := time.Duration(config.CacheTTL) * time.Second
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &CachedEstimator{
		inner: inner,
		redis: redisClient,
		ttl:   ttl,
	}
}

// Duration returns the cached estimate when present, otherwise delegates to
// the inner estimator and stores the result. Cache failures are soft: the
// estimate still comes back, only the memoization is lost.
func (c *CachedEstimator) Duration(ctx context.Context, from, to models.Coordinates) (time.Duration, error) {
	key := c.cacheKey(from, to)

	if val, err := c.redis.Get(ctx, key); err == nil {
		seconds, parseErr := strconv.ParseInt(val, 10, 64)
		if parseErr == nil {
			return time.Duration(seconds) * time.Second, nil
		}
	}

	d, err := c.inner.Duration(ctx, from, to)
	if err != nil {
		return 0, err
	}

	seconds := int64(d / time.Second)
	if err := c.redis.Set(ctx, key, seconds, c.ttl); err != nil {
		logger.Debug("Failed to cache travel estimate",
			logger.String("key", key),
			logger.Err(err))
	}

	return d, nil
}

func (c *CachedEstimator) cacheKey(from, to models.Coordinates) string {
	fromHash := utils.EncodeCoordinates(from, utils.TravelCachePrecision)
	toHash := utils.EncodeCoordinates(to, utils.TravelCachePrecision)
	return fmt.Sprintf(constants.KeyTravelCache, fromHash, toHash)
}
