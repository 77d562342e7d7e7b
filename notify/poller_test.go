package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neelammkw/elearning-client/models"
)

type scriptedFetcher struct {
	calls int32
	fail  func(call int32) bool
}

func (f *scriptedFetcher) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if f.fail != nil && f.fail(n) {
		return nil, errors.New("fetch failed")
	}
	return []models.Notification{{ID: "n1", Status: "unread"}}, nil
}

func TestPollerDeliversOnInterval(t *testing.T) {
	fetcher := &scriptedFetcher{}
	var updates int32

	p := &Poller{
		Fetcher:  fetcher,
		Interval: 5 * time.Millisecond,
		OnUpdate: func(ns []models.Notification) {
			atomic.AddInt32(&updates, 1)
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	assert.Greater(t, atomic.LoadInt32(&updates), int32(2))
	assert.Equal(t, atomic.LoadInt32(&fetcher.calls), atomic.LoadInt32(&updates))
}

func TestPollerReportsErrorsAndKeepsPolling(t *testing.T) {
	fetcher := &scriptedFetcher{fail: func(call int32) bool { return call == 1 }}
	var updates, failures int32

	p := &Poller{
		Fetcher:  fetcher,
		Interval: 5 * time.Millisecond,
		OnUpdate: func([]models.Notification) { atomic.AddInt32(&updates, 1) },
		OnError:  func(error) { atomic.AddInt32(&failures, 1) },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	assert.EqualValues(t, 1, atomic.LoadInt32(&failures))
	assert.Greater(t, atomic.LoadInt32(&updates), int32(0), "polling resumes after a failure")
}

func TestPollerStopsOnCancel(t *testing.T) {
	fetcher := &scriptedFetcher{}
	p := &Poller{Fetcher: fetcher, Interval: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancel")
	}
	assert.Zero(t, atomic.LoadInt32(&fetcher.calls))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Success("saved")
	r.Error("boom")
	r.Error("again")

	assert.Equal(t, []string{"saved"}, r.Successes)
	assert.Equal(t, []string{"boom", "again"}, r.Errors)
	assert.Equal(t, 3, r.Total())

	r.Reset()
	assert.Zero(t, r.Total())
}
