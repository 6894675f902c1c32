package beacon

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/beacon/pkg/session"
)

// Tracker is the telemetry pipeline that owns the session manager. All
// session operations run on the tracker's single worker goroutine, which is
// what the manager's no-locking contract requires: every queued envelope
// triggers a session Update before stamping, partial batches flush on an
// interval, and a separate ticker takes periodic durability checkpoints via
// session Backup.
type Tracker struct {
	sender  Sender
	session *session.Manager
	config  Config
	log     *slog.Logger
	now     func() time.Time

	envelopes chan Envelope
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Option is a functional option for configuring the Tracker.
type Option func(*Tracker)

// WithConfig sets custom configuration.
func WithConfig(config Config) Option {
	return func(t *Tracker) {
		t.config = config
	}
}

// WithService names the emitting application on every envelope.
func WithService(service string) Option {
	return func(t *Tracker) {
		t.config.Service = service
	}
}

// WithBufferSize caps the number of queued envelopes.
func WithBufferSize(n int) Option {
	return func(t *Tracker) {
		t.config.BufferSize = n
	}
}

// WithBatchSize sets the delivery batch target.
func WithBatchSize(n int) Option {
	return func(t *Tracker) {
		t.config.BatchSize = n
	}
}

// WithFlushInterval bounds how long a partial batch waits for delivery.
func WithFlushInterval(d time.Duration) Option {
	return func(t *Tracker) {
		t.config.FlushInterval = d
	}
}

// WithBackupInterval sets the cadence of durable-storage checkpoints.
func WithBackupInterval(d time.Duration) Option {
	return func(t *Tracker) {
		t.config.BackupInterval = d
	}
}

// WithLogger sets the diagnostic logging sink.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithClock sets the time source. Injectable for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// New creates a tracker and starts its worker goroutine. Sender and session
// manager are required.
func New(sender Sender, manager *session.Manager, opts ...Option) *Tracker {
	if sender == nil {
		// Fail fast on misconfiguration: a tracker without a sender would
		// silently discard everything it collects.
		panic("beacon: sender is required")
	}
	if manager == nil {
		panic("beacon: session manager is required")
	}

	t := &Tracker{
		sender:  sender,
		session: manager,
		config:  DefaultConfig(),
		log:     slog.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.config = t.config.normalize()
	t.envelopes = make(chan Envelope, t.config.BufferSize)
	t.done = make(chan struct{})

	t.wg.Add(1)
	go t.worker()

	return t
}

// Track queues an envelope for stamping and delivery. Never blocks: when
// the buffer is full the envelope is dropped with a warning, so telemetry
// pressure cannot stall the instrumented application.
func (t *Tracker) Track(e Envelope) {
	if e.Time.IsZero() {
		e.Time = t.now()
	}

	select {
	case t.envelopes <- e:
	case <-t.done:
		// Closed tracker drops silently; the final flush already ran.
	default:
		t.log.Warn("telemetry buffer full, envelope dropped",
			slog.String("code", "beacon.buffer_full"),
			slog.String("event", e.Name),
		)
	}
}

// Close drains queued envelopes, flushes the final batch, takes a last
// durability checkpoint, and stops the worker. Blocks until done or ctx
// expires. Safe to call more than once.
func (t *Tracker) Close(ctx context.Context) error {
	t.closeOnce.Do(func() {
		close(t.done)
	})

	finished := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// worker is the single goroutine driving the session manager.
func (t *Tracker) worker() {
	defer t.wg.Done()

	batch := make([]Envelope, 0, t.config.BatchSize)

	flushTimer := time.NewTicker(t.config.FlushInterval)
	defer flushTimer.Stop()
	backupTimer := time.NewTicker(t.config.BackupInterval)
	defer backupTimer.Stop()

	for {
		select {
		case e := <-t.envelopes:
			batch = append(batch, t.stamp(e))
			if len(batch) >= t.config.BatchSize {
				batch = t.flush(batch)
			}

		case <-flushTimer.C:
			batch = t.flush(batch)

		case <-backupTimer.C:
			t.session.Backup(context.Background())

		case <-t.done:
			// Drain whatever Track managed to queue before Close.
			for {
				select {
				case e := <-t.envelopes:
					batch = append(batch, t.stamp(e))
				default:
					t.flush(batch)
					// The page-unload analog: one final checkpoint so a
					// restarted client can resume the session.
					t.session.Backup(context.Background())
					return
				}
			}
		}
	}
}

// stamp brings the session current and marks the envelope with it.
// Called once per envelope, satisfying the manager's update cadence.
func (t *Tracker) stamp(e Envelope) Envelope {
	t.session.Update(context.Background())
	sess := t.session.Session()

	e.SessionID = sess.ID
	e.SessionStart = sess.AcquiredAt
	if e.Service == "" {
		e.Service = t.config.Service
	}

	return e
}

// flush delivers the accumulated batch and returns the reset slice.
// Delivery failures are logged and the batch is dropped; telemetry is
// lossy by contract, sessions are not.
func (t *Tracker) flush(batch []Envelope) []Envelope {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.config.SendTimeout)
	defer cancel()

	if err := t.sender.Send(ctx, batch); err != nil {
		t.log.Warn("telemetry batch delivery failed",
			slog.String("code", "beacon.delivery_failed"),
			slog.Int("batch_size", len(batch)),
			slog.Any("error", err),
		)
	}

	// Fresh slice: senders may hand the batch to an async exporter.
	return make([]Envelope, 0, t.config.BatchSize)
}
