package loadtest

import (
	"context"
	"sync"
	"time"

	"github.com/carson-networks/transaction-server/internal/loadtest/actions"
)

// Runner owns the queue and the Workers that drain it.
type Runner struct {
	client     *actions.Client
	queue      chan ActionItem
	numWorkers int
	stats      *Stats
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewRunner(client *actions.Client, numWorkers int) *Runner {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Runner{
		client:     client,
		queue:      make(chan ActionItem, numWorkers),
		numWorkers: numWorkers,
		stats:      &Stats{},
	}
}

func (r *Runner) Start() {
	for i := 0; i < r.numWorkers; i++ {
		r.wg.Add(1)
		w := NewWorker(r.client, r.queue, r.stats)
		go func() {
			defer r.wg.Done()
			w.Run()
		}()
	}
}

func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.queue)
		r.wg.Wait()
	})
}

// Process sends one action through the pool and waits for its outcome.
func (r *Runner) Process(ctx context.Context, action actions.IAction) (Outcome, error) {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case r.queue <- item:
	case <-ctx.Done():
		return OutcomeFailed, ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.outcome, resp.err
	case <-ctx.Done():
		return OutcomeFailed, ctx.Err()
	}
}

// Run has every worker send requestsPerWorker copies of action, then stops
// the pool and reports. Requests not yet queued when ctx ends are skipped.
func (r *Runner) Run(ctx context.Context, action actions.IAction, requestsPerWorker int) Report {
	r.Start()
	start := time.Now()

	var senders sync.WaitGroup
	for i := 0; i < r.numWorkers; i++ {
		senders.Add(1)
		go func() {
			defer senders.Done()
			for j := 0; j < requestsPerWorker; j++ {
				if ctx.Err() != nil {
					return
				}
				_, _ = r.Process(ctx, action)
			}
		}()
	}
	senders.Wait()
	r.Stop()

	return r.stats.Report(time.Since(start))
}
