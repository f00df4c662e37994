package scheduler

import (
	"context"
	"time"

	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/models"
)

// usageWindow is the rolling window battery consumption is tracked over.
const usageWindow = 24 * time.Hour

// recordUsage stores the battery consumed by one sync run. Readings
// taken while charging are meaningless and are dropped.
func (s *Scheduler) recordUsage(ctx context.Context, before, after device.BatteryState) {
	if before.Charging || after.Charging {
		return
	}
	consumed := before.Level - after.Level
	if consumed <= 0 {
		return
	}

	now := s.nowFn()

	s.mu.Lock()
	s.samples = append(s.samples, models.BatterySample{At: now, Consumed: consumed})
	s.samples = trimSamples(s.samples, now.Add(-usageWindow))
	snapshot := make([]models.BatterySample, len(s.samples))
	copy(snapshot, s.samples)
	s.mu.Unlock()

	if err := s.meta.SaveBatterySamples(ctx, snapshot); err != nil {
		s.logger.Warn("failed to persist battery samples", "error", err)
	}
}

// UsageOver24h returns the battery fraction sync consumed in the rolling
// window.
func (s *Scheduler) UsageOver24h() float64 {
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, sample := range s.samples {
		if sample.At.After(now.Add(-usageWindow)) {
			total += sample.Consumed
		}
	}
	return total
}

// AdjustSettingsBasedOnUsage is the engine's only self-tuning feedback
// loop: when sync consumed more battery than the budget over the rolling
// window, the active interval is stretched proportionally and the config
// is forced into wifi-only battery-saving mode, then persisted.
// Returns whether the configuration changed.
func (s *Scheduler) AdjustSettingsBasedOnUsage(ctx context.Context) (bool, error) {
	usage := s.UsageOver24h()

	s.mu.Lock()
	budget := s.cfg.UsageBudget
	if usage <= budget {
		s.mu.Unlock()
		return false, nil
	}

	factor := usage / budget
	s.cfg.SyncInterval = s.cfg.ClampInterval(time.Duration(float64(s.cfg.SyncInterval) * factor))
	s.cfg.WifiOnly = true
	s.cfg.BatterySaving = true
	cfg := s.cfg
	tuned := s.tuned
	s.mu.Unlock()

	s.logger.Info("sync settings adjusted from battery usage",
		"usage_24h", usage,
		"budget", budget,
		"new_interval", cfg.SyncInterval)

	if err := s.meta.SaveSyncConfig(ctx, cfg); err != nil {
		return true, err
	}
	if tuned != nil {
		if err := tuned(cfg); err != nil {
			// Metadata-копия уже сохранена; файл догонит при
			// следующей подстройке.
			s.logger.Warn("failed to write tuned config back", "error", err)
		}
	}
	return true, nil
}

func trimSamples(samples []models.BatterySample, cutoff time.Time) []models.BatterySample {
	trimmed := samples[:0]
	for _, sample := range samples {
		if sample.At.After(cutoff) {
			trimmed = append(trimmed, sample)
		}
	}
	return trimmed
}
