package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hollowbeak/stacks/pkg/structs"
)

const (
	keyTasks = ":tasks"
	keySeq   = ":seq"
)

// Tasks live in a single sorted set scored by (priority, enqueue sequence).
// The score is priority * 2^40 + seq so that priority dominates and equal
// priorities fall back to FIFO. A float64 score holds 53 mantissa bits, which
// leaves 2^40 enqueues before ties could wobble; the seq counter is per
// key-prefix and monotonic.
var enqueueScript = redis.NewScript(`
	local seq = redis.call('INCR', KEYS[2])
	local score = tonumber(ARGV[1]) * 1099511627776 + seq
	redis.call('ZADD', KEYS[1], score, ARGV[2])
	return seq
`)

// Redis is a queue implementation backed by a redis sorted set.
type Redis struct {
	opts *Options
	rdb  *redis.Client
}

// NewRedisQueue returns a queue backed by the redis at opts.URL.
func NewRedisQueue(opts *Options) (*Redis, error) {
	opts.SetDefaults()
	rop, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	if opts.TLSConfig != nil {
		rop.TLSConfig = opts.TLSConfig
	}
	return &Redis{opts: opts, rdb: redis.NewClient(rop)}, nil
}

// Enqueue adds a task to the sorted set, keyed by its priority and a
// monotonic sequence number taken in the same script call.
func (r *Redis) Enqueue(ctx context.Context, t *structs.Task) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	keys := []string{r.opts.KeyPrefix + keyTasks, r.opts.KeyPrefix + keySeq}
	return enqueueScript.Run(ctx, r.rdb, keys, t.Priority, data).Err()
}

// Dequeue pops the lowest scored task, polling until one appears or the
// context ends. ZPOPMIN both claims and removes, so a popped task is owned
// by exactly one consumer.
func (r *Redis) Dequeue(ctx context.Context) (*structs.Task, error) {
	key := r.opts.KeyPrefix + keyTasks
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	for {
		zs, err := r.rdb.ZPopMin(ctx, key, 1).Result()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		if len(zs) > 0 {
			t := &structs.Task{}
			err = json.Unmarshal([]byte(zs[0].Member.(string)), t)
			return t, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Len returns the number of unclaimed tasks.
func (r *Redis) Len(ctx context.Context) (int64, error) {
	return r.rdb.ZCard(ctx, r.opts.KeyPrefix+keyTasks).Result()
}

// Close shuts down the redis connection.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
