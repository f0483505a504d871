package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the client used for the dashboard refresh signal.
// Redis is optional; callers treat a nil client as "no signal".
func InitRedis(addr string, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}
