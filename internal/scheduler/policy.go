// Package scheduler decides when the executor runs, based on
// connectivity, battery state and user configuration. It never runs two
// overlapping cycles and keeps at most one periodic and one one-off
// timer armed.
package scheduler

import (
	"time"

	"github.com/ridawn928/hr-connect/internal/device"
	"github.com/ridawn928/hr-connect/internal/models"
)

// Action is what the scheduler should do next.
type Action string

const (
	// ActionCriticalOnly dispatches a one-off critical-priority-only sync
	// immediately and leaves the periodic timer unarmed.
	ActionCriticalOnly Action = "critical_only"

	// ActionDefer arms a one-off re-check and leaves the periodic timer
	// unarmed: a required condition (charging, wifi) is not met.
	ActionDefer Action = "defer"

	// ActionPeriodic arms the periodic timer at Decision.Interval.
	ActionPeriodic Action = "periodic"
)

// Decision is the outcome of one policy evaluation.
type Decision struct {
	Reason   string
	Action   Action
	Interval time.Duration // periodic interval, or re-check delay for ActionDefer
}

// Evaluate applies the decision policy in fixed order, first match wins:
//
//  1. critically low battery, not charging, battery saving on → critical-only
//  2. charging required but absent, or wifi required but absent → defer
//  3. low battery, not charging, battery saving on → battery-saving interval
//  4. inside the night window with night mode on → night interval
//  5. otherwise → normal interval
//
// Evaluate is pure: same inputs, same decision.
func Evaluate(cfg models.SyncConfig, net device.NetworkStatus, bat device.BatteryState, now time.Time) Decision {
	if cfg.BatterySaving && !bat.Charging && bat.Level <= cfg.CriticalBatteryThreshold {
		return Decision{
			Action: ActionCriticalOnly,
			Reason: "battery critically low",
		}
	}

	if (cfg.ChargingOnly && !bat.Charging) || (cfg.WifiOnly && !net.Wifi) {
		return Decision{
			Action:   ActionDefer,
			Interval: cfg.DeferRecheck,
			Reason:   "required charging/wifi condition not met",
		}
	}

	if cfg.BatterySaving && !bat.Charging && bat.Level <= cfg.LowBatteryThreshold {
		return Decision{
			Action:   ActionPeriodic,
			Interval: cfg.BatterySavingInterval,
			Reason:   "battery saving",
		}
	}

	if cfg.NightModeEnabled && cfg.InNightWindow(now) {
		return Decision{
			Action:   ActionPeriodic,
			Interval: cfg.NightInterval,
			Reason:   "night window",
		}
	}

	return Decision{
		Action:   ActionPeriodic,
		Interval: cfg.SyncInterval,
		Reason:   "normal cadence",
	}
}
