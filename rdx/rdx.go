package rdx

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"voyago/globals"
)

var Conn = redis.NewClient(&redis.Options{
	Addr: redisAddr(),
})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func Set(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func Get(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func Del(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

func Hset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func Hdel(hash, field string) error {
	return Conn.HDel(globals.Ctx, hash, field).Err()
}

// IsNil reports whether err means "key absent" rather than a real failure.
func IsNil(err error) bool {
	return err == redis.Nil
}
