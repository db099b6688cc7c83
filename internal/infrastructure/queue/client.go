package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"reviewcard-backend/internal/shared"
)

// Client wraps asynq.Client cho phía API enqueue export jobs
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

// EnqueueExport serialize payload và đẩy task vào export queue.
// MaxRetry(0): export thất bại không tự retry, user phải trigger lại
// (failure surfaces qua job status, không im lặng chạy lại).
func (c *Client) EnqueueExport(ctx context.Context, taskType string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, raw)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueExport),
		asynq.MaxRetry(0),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
