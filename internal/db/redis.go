package db

import (
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/clinicdesk/clinic-manager/internal/config"
)

// NewRedis returns a client for the rate limiter, or nil when the URL
// does not parse. Callers treat nil as "limiter disabled".
func NewRedis(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, rate limiting disabled: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}
