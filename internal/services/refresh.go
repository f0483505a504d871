package services

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "dashboard:ver:"

// RefreshService signals dashboard listing views to refresh after a
// mutation. It keeps a per-owner version counter in Redis; only the
// counter is stored, never link rows, so there is nothing to go stale.
// A nil client degrades every call to a no-op.
type RefreshService struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewRefreshService(rdb *redis.Client, logger *slog.Logger) *RefreshService {
	return &RefreshService{rdb: rdb, logger: logger}
}

// Bump invalidates the owner's dashboard view. Best-effort.
func (s *RefreshService) Bump(ownerID string) {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := s.rdb.Incr(ctx, refreshKeyPrefix+ownerID).Err(); err != nil {
		s.logger.Warn("Failed to bump dashboard version", "error", err)
	}
}

// Version returns the owner's current dashboard version, "0" if no
// mutation has happened yet or Redis is unavailable.
func (s *RefreshService) Version(ownerID string) string {
	if s.rdb == nil {
		return "0"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	val, err := s.rdb.Get(ctx, refreshKeyPrefix+ownerID).Result()
	if err != nil {
		return "0"
	}
	if _, convErr := strconv.ParseInt(val, 10, 64); convErr != nil {
		return "0"
	}
	return val
}
