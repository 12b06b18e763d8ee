// Package queue delivers analysis tasks from the API process to workers over
// a Redis list. Delivery is at-least-once; the pipeline's pending->processing
// claim makes duplicate delivery harmless.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mukulnagar-gammaedge/resume-analyzer/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	analyzeQueueKey = "resume_analyzer:jobs"
	popTimeout      = 5 * time.Second
)

// Handler processes one delivered job id. The return value is logged, never
// consumed: completion is observed through the persisted job status.
type Handler func(ctx context.Context, jobID string) error

type Queue struct {
	client *redis.Client
	logger *zap.Logger
}

func New(cfg *config.RedisConfig, logger *zap.Logger) (*Queue, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unavailable at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return &Queue{client: client, logger: logger}, nil
}

func (q *Queue) Enqueue(ctx context.Context, jobID string) error {
	if err := q.client.RPush(ctx, analyzeQueueKey, jobID).Err(); err != nil {
		return fmt.Errorf("enqueue job %s: %w", jobID, err)
	}
	return nil
}

// Consume blocks until ctx is canceled, running up to workers concurrent
// handlers. Each worker pops with a bounded wait so cancellation is observed
// promptly even on an idle queue.
func (q *Queue) Consume(ctx context.Context, workers int, handle Handler) {
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			log := q.logger.With(zap.Int("worker", worker))
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				res, err := q.client.BLPop(ctx, popTimeout, analyzeQueueKey).Result()
				if errors.Is(err, redis.Nil) {
					continue
				}
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					log.Warn("queue pop failed", zap.Error(err))
					time.Sleep(time.Second)
					continue
				}
				if len(res) < 2 {
					continue
				}

				jobID := res[1]
				if err := handle(ctx, jobID); err != nil {
					log.Error("task handler returned error",
						zap.String("job_id", jobID),
						zap.Error(err))
				}
			}
		}(i)
	}
	wg.Wait()
}

func (q *Queue) Close() error {
	return q.client.Close()
}
