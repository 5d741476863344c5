package sim

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fortress/internal/telemetry"
)

// Scheduler drives the systems at a fixed period. It is not safe for
// concurrent use: Start, Stop, the pause setters, Tick and receiving from C
// must all happen on one goroutine, which is what keeps ticks from
// overlapping each other or a render.
type Scheduler struct {
	interval time.Duration
	systems  []System
	render   func()
	log      *logrus.Entry

	tickID uint64
	ticker *time.Ticker

	userPaused   bool
	systemPaused bool
}

// NewScheduler creates a stopped scheduler. render is called after every
// tick and may be nil.
func NewScheduler(interval time.Duration, render func(), log *logrus.Logger, systems ...System) *Scheduler {
	return &Scheduler{
		interval: interval,
		systems:  systems,
		render:   render,
		log:      log.WithField("component", "scheduler"),
	}
}

// Start begins ticking. It does nothing if already running or if either
// pause gate is set.
func (s *Scheduler) Start() {
	if s.ticker != nil || s.Paused() {
		return
	}
	s.ticker = time.NewTicker(s.interval)
	s.log.WithField("interval", s.interval).Debug("scheduler started")
}

// Stop prevents future ticks. It never interrupts a tick in progress and
// does nothing if already stopped.
func (s *Scheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
	s.log.WithField("tick", s.tickID).Debug("scheduler stopped")
}

// Running reports whether a ticker is active.
func (s *Scheduler) Running() bool {
	return s.ticker != nil
}

// C delivers one value per period while running. It is nil when stopped,
// so a select on it simply never fires.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// TickID returns the id of the last executed tick; 0 before the first.
func (s *Scheduler) TickID() uint64 {
	return s.tickID
}

// SetUserPaused sets the player's pause gate.
func (s *Scheduler) SetUserPaused(paused bool) {
	s.userPaused = paused
	s.sync()
}

// SetSystemPaused sets the host's pause gate, e.g. on focus loss.
func (s *Scheduler) SetSystemPaused(paused bool) {
	s.systemPaused = paused
	s.sync()
}

// UserPaused reports the player's pause gate.
func (s *Scheduler) UserPaused() bool { return s.userPaused }

// Paused reports whether either gate is set.
func (s *Scheduler) Paused() bool {
	return s.userPaused || s.systemPaused
}

func (s *Scheduler) sync() {
	if s.Paused() {
		s.Stop()
	} else {
		s.Start()
	}
}

// Tick advances the tick id, runs every system in order and then renders.
func (s *Scheduler) Tick(ctx context.Context) uint64 {
	s.tickID++
	_, span := telemetry.Tracer("sim").Start(ctx, "sim.tick")
	defer span.End()

	attrs := make([]attribute.KeyValue, 0, len(s.systems)+1)
	attrs = append(attrs, attribute.Int64("tick.id", int64(s.tickID)))
	for _, sys := range s.systems {
		n := sys.Run(s.tickID)
		attrs = append(attrs, attribute.Int("system."+sys.Name, n))
	}
	span.SetAttributes(attrs...)

	if s.render != nil {
		s.render()
	}
	return s.tickID
}

// Advance runs n ticks back to back without waiting on the timer.
func (s *Scheduler) Advance(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick(ctx)
	}
	return nil
}

// Run starts the scheduler and ticks on every period until ctx is done.
// For hosts with their own event loop, select on C and call Tick instead.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	defer s.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.C():
			s.Tick(ctx)
		}
	}
}
