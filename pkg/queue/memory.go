package queue

import (
	"container/heap"
	"context"
	"sync"

	"github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/structs"
)

// Memory is an in-process queue implementation. It exists so the engine can
// run embedded in a single binary and so tests don't need a redis fixture;
// ordering semantics match the redis implementation exactly.
type Memory struct {
	mu     sync.Mutex
	items  taskHeap
	seq    uint64
	wake   chan struct{}
	closed bool
}

// NewMemoryQueue returns an empty in-process queue.
func NewMemoryQueue() *Memory {
	return &Memory{wake: make(chan struct{}, 1)}
}

// Enqueue adds a task, ordered by (priority, enqueue sequence).
func (m *Memory) Enqueue(ctx context.Context, t *structs.Task) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return errors.ErrQueueClosed
	}
	m.seq++
	heap.Push(&m.items, &queued{task: t, seq: m.seq})
	m.signal()
	m.mu.Unlock()
	return nil
}

// signal nudges one blocked Dequeue. Callers must hold mu, which also
// guarantees the wake channel can't be closed out from under the send.
func (m *Memory) signal() {
	if m.closed {
		return
	}
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Dequeue claims the most urgent task, blocking until one is available.
func (m *Memory) Dequeue(ctx context.Context) (*structs.Task, error) {
	for {
		m.mu.Lock()
		if m.items.Len() > 0 {
			q := heap.Pop(&m.items).(*queued)
			// others may still be waiting on work we didn't take
			if m.items.Len() > 0 {
				m.signal()
			}
			m.mu.Unlock()
			return q.task, nil
		}
		if m.closed {
			m.mu.Unlock()
			return nil, errors.ErrQueueClosed
		}
		m.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-m.wake:
		}
	}
}

// Len returns the number of unclaimed tasks.
func (m *Memory) Len(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(m.items.Len()), nil
}

// Close shuts down the queue; blocked Dequeue calls return ErrQueueClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	close(m.wake)
	return nil
}

type queued struct {
	task *structs.Task
	seq  uint64
}

type taskHeap []*queued

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].task.Priority != h[j].task.Priority {
		return h[i].task.Priority < h[j].task.Priority
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x interface{}) {
	*h = append(*h, x.(*queued))
}

func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
