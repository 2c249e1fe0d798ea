package queue

import (
	"context"

	"github.com/hollowbeak/stacks/pkg/structs"
)

// Queue is an ordered delivery channel for tasks.
//
// Delivery order is by priority (lower first), FIFO within equal priority.
// A consumer never receives a less urgent task while a more urgent one is
// enqueued and unclaimed; no ordering is promised between tasks claimed by
// different consumers.
type Queue interface {
	// Enqueue places a task on the queue.
	Enqueue(ctx context.Context, t *structs.Task) error

	// Dequeue claims and removes the most urgent task, blocking until one
	// is available, the context ends, or the queue is closed.
	//
	// A claimed task is gone from the queue whether or not the caller
	// manages to execute it; redelivery is not this interface's problem.
	Dequeue(ctx context.Context) (*structs.Task, error)

	// Len returns the number of enqueued (unclaimed) tasks.
	Len(ctx context.Context) (int64, error)

	// Close shuts down the queue.
	Close() error
}
