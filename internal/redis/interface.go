package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient so single, cluster and failover
// clients all satisfy it
type Client interface {
	redis.UniversalClient
}
