package loadtest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transaction-server/internal/errcode"
	"github.com/carson-networks/transaction-server/internal/loadtest/actions"
)

type fixedAction struct {
	code  errcode.Code
	err   error
	calls atomic.Int64
}

func (a *fixedAction) Perform(ctx context.Context, client *actions.Client) (errcode.Code, error) {
	a.calls.Add(1)
	return a.code, a.err
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Classify(errcode.Success, nil))
	assert.Equal(t, OutcomeDegraded, Classify(errcode.ServiceDegraded, nil))
	assert.Equal(t, OutcomeFailed, Classify(errcode.IllegalParam, nil))
	assert.Equal(t, OutcomeFailed, Classify(errcode.SystemException, nil))
	assert.Equal(t, OutcomeFailed, Classify(errcode.Success, errors.New("connection refused")))
}

func TestRunner_Process(t *testing.T) {
	runner := NewRunner(actions.NewClient("http://unused", time.Second), 2)
	runner.Start()
	defer runner.Stop()

	outcome, err := runner.Process(context.Background(), &fixedAction{code: errcode.ServiceDegraded})

	assert.NoError(t, err)
	assert.Equal(t, OutcomeDegraded, outcome)
}

func TestRunner_RunCountsEveryRequest(t *testing.T) {
	action := &fixedAction{code: errcode.Success}
	runner := NewRunner(actions.NewClient("http://unused", time.Second), 4)

	report := runner.Run(context.Background(), action, 25)

	assert.Equal(t, int64(100), action.calls.Load())
	assert.Equal(t, 100, report.Total)
	assert.Equal(t, 100, report.Success)
	assert.Zero(t, report.Degraded)
	assert.Zero(t, report.Failed)
	assert.LessOrEqual(t, report.MinLatency, report.AvgLatency)
	assert.LessOrEqual(t, report.AvgLatency, report.MaxLatency)
	assert.Greater(t, report.Throughput, 0.0)
}

func TestRunner_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	action := &fixedAction{code: errcode.Success}

	report := NewRunner(actions.NewClient("http://unused", time.Second), 3).Run(ctx, action, 10)

	assert.Zero(t, report.Total)
	assert.Zero(t, action.calls.Load())
}

func TestRunner_AgainstServer(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		n := requests.Add(1)

		var body map[string]any
		if !assert.NoError(t, json.NewDecoder(req.Body).Decode(&body)) {
			return
		}
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/transactions", req.URL.Path)
		assert.Equal(t, "DEPOSIT", body["type"])

		w.Header().Set("Content-Type", "application/json")
		switch n % 3 {
		case 0:
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"code":99999,"msg":"system busy","data":null}`))
		case 1:
			_, _ = w.Write([]byte(`{"code":0,"msg":"success","data":{}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":10002,"msg":"invalid currency","data":null}`))
		}
	}))
	defer server.Close()

	runner := NewRunner(actions.NewClient(server.URL+"/", 2*time.Second), 3)
	report := runner.Run(context.Background(), actions.SampleDeposit(), 3)

	require.Equal(t, 9, report.Total)
	assert.Equal(t, 3, report.Success)
	assert.Equal(t, 3, report.Degraded)
	assert.Equal(t, 3, report.Failed)
}

func TestRunner_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	report := NewRunner(actions.NewClient(server.URL, time.Second), 1).Run(context.Background(), actions.SampleDeposit(), 2)

	assert.Equal(t, 2, report.Failed)
}

func TestReport_Fields(t *testing.T) {
	stats := &Stats{}
	stats.Record(OutcomeSuccess, 2*time.Millisecond)
	stats.Record(OutcomeFailed, 4*time.Millisecond)

	report := stats.Report(time.Second)
	fields := report.Fields()

	assert.Equal(t, 2, fields["total"])
	assert.Equal(t, 3.0, fields["avgLatencyMs"])
	assert.Equal(t, 4.0, fields["maxLatencyMs"])
	assert.Equal(t, 2.0, fields["minLatencyMs"])
	assert.Equal(t, 2.0, fields["throughput"])
}
