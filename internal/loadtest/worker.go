package loadtest

import (
	"context"
	"time"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/loadtest/actions"
)

// Outcome classifies one request.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeDegraded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDegraded:
		return "degraded"
	default:
		return "failed"
	}
}

// Classify maps a response code to an outcome. Transport errors always fail.
func Classify(code errcode.Code, err error) Outcome {
	if err != nil {
		return OutcomeFailed
	}
	switch code {
	case errcode.Success:
		return OutcomeSuccess
	case errcode.ServiceDegraded:
		return OutcomeDegraded
	default:
		return OutcomeFailed
	}
}

// Worker takes items off the queue and sends them. Exits when the queue is
// closed.
type Worker struct {
	client *actions.Client
	queue  chan ActionItem
	stats  *Stats
}

func NewWorker(client *actions.Client, queue chan ActionItem, stats *Stats) *Worker {
	return &Worker{
		client: client,
		queue:  queue,
		stats:  stats,
	}
}

func (w *Worker) Run() {
	for item := range w.queue {
		w.processItem(item)
	}
}

func (w *Worker) processItem(item ActionItem) {
	start := time.Now()
	code, err := item.action.Perform(item.ctx, w.client)
	latency := time.Since(start)

	outcome := Classify(code, err)
	w.stats.Record(outcome, latency)

	item.response <- ActionItemResponse{outcome: outcome, code: code, err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	outcome Outcome
	code    errcode.Code
	err     error
}
