package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqSuffix = ":dlq"

// DLQEntry wraps a failed job with its failure context.
type DLQEntry struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

// SendToDLQ parks a job that could not be processed. Entries are kept for
// manual inspection and re-enqueue; nothing retries them automatically.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue, jobType string, payload json.RawMessage, reason string, attempts int) {
	entry := DLQEntry{
		Type:     jobType,
		Payload:  payload,
		Reason:   reason,
		Attempts: attempts,
		FailedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal DLQ entry")
		return
	}
	if err := rdb.LPush(ctx, queue+dlqSuffix, data).Err(); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to push to DLQ")
		return
	}
	log.Warn().Str("queue", queue).Str("type", jobType).Str("reason", reason).Msg("job sent to DLQ")
}
