package audit

import (
	"context"
	"time"

	"github.com/diewo77/go-srm/internal/models"
	"github.com/redis/go-redis/v9"
)

// DefaultStream is the Redis stream audit entries are appended to.
const DefaultStream = "srm:audit"

// RedisStreamSink appends each audit entry to a Redis stream so other
// services can consume the trail without touching the database.
type RedisStreamSink struct {
	client redis.UniversalClient
	stream string
	maxLen int64
}

// NewRedisStreamSink returns a sink trimming the stream to roughly maxLen
// entries. maxLen <= 0 disables trimming.
func NewRedisStreamSink(client redis.UniversalClient, stream string, maxLen int64) *RedisStreamSink {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisStreamSink{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStreamSink) Publish(ctx context.Context, log models.AuditLog) error {
	values := map[string]any{
		"id":         log.ID,
		"userId":     log.UserID,
		"action":     log.Action,
		"entityType": log.EntityType,
		"entityId":   deref(log.EntityID),
		"details":    deref(log.Details),
		"createdAt":  log.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	args := &redis.XAddArgs{Stream: s.stream, Values: values}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	return s.client.XAdd(ctx, args).Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
