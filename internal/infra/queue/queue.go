// Package queue is a Redis-list-backed job queue. Each job kind gets its own
// list; producers LPUSH, the worker BRPOPs. At-most-once from the producer's
// perspective: nothing is acknowledged back to the caller.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "gympoint:queue:"

// Client is the minimal Redis surface the queue needs. Kept as an interface
// so tests can swap in an in-memory fake.
type Client interface {
	LPush(ctx context.Context, key string, values ...interface{}) error
	BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error)
	Close() error
}

// Job is the envelope stored on the list.
type Job struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

type Queue struct {
	client Client
}

func New(client Client) *Queue {
	return &Queue{client: client}
}

// NewRedis connects to Redis using a redis:// URL.
func NewRedis(redisURL string) (*Queue, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return New(&goRedisClient{rdb: redis.NewClient(opts)}), nil
}

// Enqueue serializes the payload and pushes a job onto the kind's list.
func (q *Queue) Enqueue(ctx context.Context, kind string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	job := Job{
		ID:         uuid.NewString(),
		Kind:       kind,
		Payload:    raw,
		Attempts:   1,
		EnqueuedAt: time.Now(),
	}
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return q.client.LPush(ctx, keyPrefix+kind, data)
}

// Requeue puts a failed job back with its attempt counter bumped.
func (q *Queue) Requeue(ctx context.Context, job Job) error {
	job.Attempts++
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, keyPrefix+job.Kind, data)
}

// Dequeue blocks up to timeout waiting for a job on any of the given kinds.
// Returns nil without error when the timeout elapses with nothing queued.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration, kinds ...string) (*Job, error) {
	keys := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		keys = append(keys, keyPrefix+kind)
	}

	result, err := q.client.BRPop(ctx, timeout, keys...)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	// BRPOP replies [key, value]
	if len(result) < 2 {
		return nil, nil
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}

// goRedisClient adapts *redis.Client to the Client interface.
type goRedisClient struct {
	rdb *redis.Client
}

func (c *goRedisClient) LPush(ctx context.Context, key string, values ...interface{}) error {
	return c.rdb.LPush(ctx, key, values...).Err()
}

func (c *goRedisClient) BRPop(ctx context.Context, timeout time.Duration, keys ...string) ([]string, error) {
	return c.rdb.BRPop(ctx, timeout, keys...).Result()
}

func (c *goRedisClient) Close() error {
	return c.rdb.Close()
}

// Default is the process-wide queue, set during boot. Handlers publish
// through Dispatch so a dead queue never fails a request.
var Default *Queue

// Dispatch enqueues on the default queue, fire-and-forget. Failures only get
// logged: the entity write already committed and must not be rolled back.
func Dispatch(kind string, payload interface{}) {
	if Default == nil {
		return
	}
	if err := Default.Enqueue(context.Background(), kind, payload); err != nil {
		log.Printf("⚠️ Failed to enqueue %s job: %v", kind, err)
	}
}
