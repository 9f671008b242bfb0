package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is the
// full UniversalClient so callers can pass a cluster or failover client.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by go-redis when a key does not exist
const Nil = redis.Nil
