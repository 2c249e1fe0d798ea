package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	se "github.com/hollowbeak/stacks/pkg/errors"
	"github.com/hollowbeak/stacks/pkg/queue"
)

// PoolOptions bounds the consumer pool.
type PoolOptions struct {
	// MinWorkers consumers run for the pool's whole lifetime.
	MinWorkers int

	// MaxWorkers caps concurrency; extra consumers are started while a
	// backlog exists and retire once idle.
	MaxWorkers int

	// IdleTimeout is how long a transient consumer waits for a task
	// before retiring.
	IdleTimeout time.Duration

	// ScaleInterval is how often the backlog is compared to the current
	// consumer count.
	ScaleInterval time.Duration

	// RetryDelay is how long a permanent consumer waits after a transport
	// error before claiming again.
	RetryDelay time.Duration
}

func (o *PoolOptions) SetDefaults() {
	if o.MinWorkers <= 0 {
		o.MinWorkers = 2
	}
	if o.MaxWorkers < o.MinWorkers {
		o.MaxWorkers = o.MinWorkers
	}
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = 5 * time.Second
	}
	if o.ScaleInterval <= 0 {
		o.ScaleInterval = 250 * time.Millisecond
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = time.Second
	}
}

// Pool is an elastic set of consumers pulling from one queue. Each consumer
// claims one task at a time and runs it to completion through the
// dispatcher; a failing task never takes its consumer down.
type Pool struct {
	qu   queue.Queue
	disp *Dispatcher
	opts *PoolOptions
	log  zerolog.Logger

	mu      sync.Mutex
	running int
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

func NewPool(qu queue.Queue, disp *Dispatcher, opts *PoolOptions, log zerolog.Logger) *Pool {
	if opts == nil {
		opts = &PoolOptions{}
	}
	opts.SetDefaults()
	return &Pool{qu: qu, disp: disp, opts: opts, log: log}
}

// Start launches the permanent consumers and the scaling loop. It returns
// immediately; Stop tears everything down.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.mu.Lock()
	for i := 0; i < p.opts.MinWorkers; i++ {
		p.running++
		p.wg.Add(1)
		go p.consume(ctx, false)
	}
	p.mu.Unlock()

	p.wg.Add(1)
	go p.scale(ctx)

	p.log.Info().
		Int("min_workers", p.opts.MinWorkers).
		Int("max_workers", p.opts.MaxWorkers).
		Msg("consumer pool started")
}

// Stop cancels all consumers and blocks until in-flight tasks finish.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// Running reports the current number of consumers.
func (p *Pool) Running() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// consume is the pull-execute loop. Permanent consumers block on Dequeue
// until shutdown and retry after transport errors so the pool never drops
// below its floor; transient ones give up after IdleTimeout without work.
func (p *Pool) consume(ctx context.Context, transient bool) {
	defer p.wg.Done()
	defer p.retire()

	for {
		claimCtx := ctx
		cancel := context.CancelFunc(nil)
		if transient {
			claimCtx, cancel = context.WithTimeout(ctx, p.opts.IdleTimeout)
		}
		t, err := p.qu.Dequeue(claimCtx)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			// transient consumers retire on any error, idling out included
			if transient || ctx.Err() != nil || errors.Is(err, se.ErrQueueClosed) {
				return
			}
			// a permanent consumer holds the floor through transport blips
			p.log.Warn().Err(err).Msg("dequeue failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.opts.RetryDelay):
			}
			continue
		}
		p.disp.Handle(ctx, t)
	}
}

func (p *Pool) retire() {
	p.mu.Lock()
	p.running--
	p.mu.Unlock()
}

// scale periodically compares the backlog to the consumer count and starts
// transient consumers while tasks are waiting, up to MaxWorkers.
func (p *Pool) scale(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.opts.ScaleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		backlog, err := p.qu.Len(ctx)
		if err != nil {
			continue
		}

		p.mu.Lock()
		for int64(p.running) < backlog && p.running < p.opts.MaxWorkers {
			p.running++
			p.wg.Add(1)
			go p.consume(ctx, true)
		}
		p.mu.Unlock()
	}
}
