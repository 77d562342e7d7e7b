package notify

import (
	"context"
	"time"

	"github.com/jpillora/backoff"

	"github.com/neelammkw/elearning-client/models"
)

// Fetcher is satisfied by api.NotificationsAPI.
type Fetcher interface {
	GetNotifications(ctx context.Context) ([]models.Notification, error)
}

// Poller refetches notifications on a fixed interval, independently of user
// action. Failures back off exponentially instead of hammering the API; a
// successful poll resets the backoff and resumes the regular interval.
type Poller struct {
	Fetcher  Fetcher
	Interval time.Duration
	OnUpdate func([]models.Notification)
	OnError  func(error)
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = 60 * time.Second
	}

	b := &backoff.Backoff{
		Min:    interval,
		Max:    10 * interval,
		Factor: 2,
		Jitter: true,
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		notifications, err := p.Fetcher.GetNotifications(ctx)
		if err != nil {
			if p.OnError != nil {
				p.OnError(err)
			}
			timer.Reset(b.Duration())
			continue
		}

		b.Reset()
		if p.OnUpdate != nil {
			p.OnUpdate(notifications)
		}
		timer.Reset(interval)
	}
}
