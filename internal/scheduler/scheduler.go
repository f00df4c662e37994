package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/executor"
	"github.com/ridawn928/hr-connect/internal/models"
	"github.com/ridawn928/hr-connect/internal/queue"
)

//go:generate moq -out runner_mock.go . Runner

// Runner is the slice of the executor the scheduler drives.
type Runner interface {
	SyncAll(ctx context.Context) (*models.SyncResult, error)
	SyncByPriority(ctx context.Context, p models.Priority) (*models.SyncResult, error)
}

// Scheduler arms timers according to the decision policy and feeds
// battery-usage observations back into the configuration.
type Scheduler struct {
	runner  Runner
	meta    queue.MetadataStore
	conn    device.ConnectivityProvider
	battery device.BatteryProvider
	logger  *slog.Logger
	nowFn   func() time.Time
	tuned   func(models.SyncConfig) error

	mu       sync.Mutex
	cfg      models.SyncConfig
	periodic *time.Timer
	oneOff   *time.Timer
	samples  []models.BatterySample
	ctx      context.Context
	started  bool
}

// New creates a scheduler. nowFn may be nil, in which case time.Now is used.
func New(
	runner Runner,
	meta queue.MetadataStore,
	conn device.ConnectivityProvider,
	battery device.BatteryProvider,
	cfg models.SyncConfig,
	logger *slog.Logger,
	nowFn func() time.Time,
) *Scheduler {
	if nowFn == nil {
		nowFn = time.Now
	}
	cfg.Normalize()
	return &Scheduler{
		runner:  runner,
		meta:    meta,
		conn:    conn,
		battery: battery,
		cfg:     cfg,
		logger:  logger,
		nowFn:   nowFn,
	}
}

// Start loads persisted usage samples, subscribes to device transitions
// and arms the first timer. It returns immediately; timers and the watch
// goroutine run until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.ctx = ctx

	samples, err := s.meta.BatterySamples(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.samples = samples
	s.mu.Unlock()

	go s.watch(ctx)
	s.Reschedule()
	return nil
}

// Stop cancels any armed timers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
	s.started = false
}

// Config returns the current configuration.
func (s *Scheduler) Config() models.SyncConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// OnConfigTuned registers a callback invoked after the usage feedback
// loop rewrites the configuration. The daemon uses it to sync the YAML
// file with the tuned settings. Only self-tuning triggers it; operator
// edits already originate from the file.
func (s *Scheduler) OnConfigTuned(fn func(models.SyncConfig) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuned = fn
}

// UpdateConfig replaces the configuration, persists it and re-evaluates
// the policy. Used when the user edits settings or the config file changes.
func (s *Scheduler) UpdateConfig(ctx context.Context, cfg models.SyncConfig) error {
	cfg.Normalize()

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	if err := s.meta.SaveSyncConfig(ctx, cfg); err != nil {
		return err
	}
	s.Reschedule()
	return nil
}

// Reschedule evaluates the policy and re-arms timers. Arming is
// idempotent: the previous timer of the same kind is always cancelled
// first, so at most one periodic and one one-off timer are ever pending.
func (s *Scheduler) Reschedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}

	decision := Evaluate(s.cfg, s.conn.Current(), s.battery.Current(), s.nowFn())
	s.logger.Info("schedule evaluated",
		"action", decision.Action,
		"interval", decision.Interval,
		"reason", decision.Reason)

	switch decision.Action {
	case ActionCriticalOnly:
		s.stopTimersLocked()
		// Одноразовая отправка только critical-операций, без периодики.
		s.oneOff = time.AfterFunc(0, func() { s.fire(true) })
	case ActionDefer:
		s.stopTimersLocked()
		s.oneOff = time.AfterFunc(decision.Interval, s.Reschedule)
	case ActionPeriodic:
		s.stopTimersLocked()
		s.periodic = time.AfterFunc(decision.Interval, func() { s.fire(false) })
	}
}

func (s *Scheduler) stopTimersLocked() {
	if s.periodic != nil {
		s.periodic.Stop()
		s.periodic = nil
	}
	if s.oneOff != nil {
		s.oneOff.Stop()
		s.oneOff = nil
	}
}

// fire runs one sync cycle, records battery usage attributable to it and
// re-arms per the (possibly self-tuned) policy.
func (s *Scheduler) fire(criticalOnly bool) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	before := s.battery.Current()

	var err error
	if criticalOnly {
		_, err = s.runner.SyncByPriority(ctx, models.PriorityCritical)
	} else {
		_, err = s.runner.SyncAll(ctx)
	}
	switch {
	case errors.Is(err, executor.ErrSyncInProgress):
		// Триггер во время активного цикла — no-op.
	case errors.Is(err, executor.ErrNetworkUnavailable):
		s.logger.Info("sync skipped, no connectivity")
	case err != nil:
		s.logger.Error("sync cycle failed", "error", err)
	}

	s.recordUsage(ctx, before, s.battery.Current())
	if _, err := s.AdjustSettingsBasedOnUsage(ctx); err != nil {
		s.logger.Warn("failed to adjust settings from usage", "error", err)
	}

	if criticalOnly {
		// Немедленная переоценка снова выдала бы critical-only и цикл
		// замкнулся бы сам на себя. Ждем DeferRecheck; переходы
		// зарядки/сети все равно будят Reschedule раньше.
		s.mu.Lock()
		if s.started {
			s.stopTimersLocked()
			s.oneOff = time.AfterFunc(s.cfg.DeferRecheck, s.Reschedule)
		}
		s.mu.Unlock()
		return
	}
	s.Reschedule()
}

// watch re-evaluates the policy on every connectivity or battery
// transition: charging-start and battery-full immediately lift
// restrictions, losing a required condition swaps the periodic timer for
// the deferred re-check.
func (s *Scheduler) watch(ctx context.Context) {
	connCh := s.conn.Stream(ctx)
	batCh := s.battery.Stream(ctx)

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return
		case status, ok := <-connCh:
			if !ok {
				connCh = nil
				continue
			}
			s.logger.Debug("connectivity transition", "state", status.State, "wifi", status.Wifi)
			s.Reschedule()
		case state, ok := <-batCh:
			if !ok {
				batCh = nil
				continue
			}
			s.logger.Debug("battery transition", "level", state.Level, "charging", state.Charging)
			s.Reschedule()
		}
	}
}
