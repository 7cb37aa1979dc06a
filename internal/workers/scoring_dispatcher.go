package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/adapter"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
)

// ErrDispatcherStopped is returned by Shutdown when in-flight notifications
// did not finish before the deadline.
var ErrDispatcherStopped = errors.New("scoring dispatcher stopped with notifications in flight")

type scoringDispatcher struct {
	gateway adapter.ScoringGateway
	timeout time.Duration
	logger  *logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewScoringDispatcher runs every notification in its own goroutine, bounded
// by timeout. A zero timeout leaves the bound to the gateway.
func NewScoringDispatcher(gateway adapter.ScoringGateway, timeout time.Duration, logger *logger.Logger) ScoringDispatcher {
	return &scoringDispatcher{
		gateway: gateway,
		timeout: timeout,
		logger:  logger,
	}
}

func (d *scoringDispatcher) Run() {
	d.logger.Info().Msg("scoring dispatcher started")
}

// Dispatch keeps the values of ctx (trace id, logger) but not its
// cancellation, so a notification outlives the request that triggered it.
func (d *scoringDispatcher) Dispatch(ctx context.Context, req models.ScoringRequest, token string) {
	log := logger.FromContext(ctx).WithField("jd_id", req.JDID)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		log.Warn().Msg("scoring dispatcher is stopped, notification dropped")
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	detached := context.WithoutCancel(ctx)

	go func() {
		defer d.wg.Done()

		notifyCtx := detached
		if d.timeout > 0 {
			var cancel context.CancelFunc
			notifyCtx, cancel = context.WithTimeout(detached, d.timeout)
			defer cancel()
		}

		if err := d.gateway.Notify(notifyCtx, req, token); err != nil {
			log.Err(err).Msg("failed to notify scorer")
			return
		}
		log.Info().Msg("scorer notified")
	}()
}

func (d *scoringDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info().Msg("scoring dispatcher stopped")
		return nil
	case <-ctx.Done():
		return errors.Join(ErrDispatcherStopped, ctx.Err())
	}
}
