package device

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultBatteryPollInterval = time.Minute

// SysfsBattery is a BatteryProvider reading the Linux power-supply
// sysfs interface (/sys/class/power_supply/<name>). On hosts without a
// battery it reports a full, charging battery so battery policy never
// throttles sync.
type SysfsBattery struct {
	basePath string
	interval time.Duration

	mu      sync.RWMutex
	current BatteryState
	subs    []chan BatteryState
}

// NewSysfsBattery creates a battery reader for the named supply,
// e.g. "BAT0". An empty name scans for the first BAT* entry.
func NewSysfsBattery(name string) *SysfsBattery {
	base := "/sys/class/power_supply"
	if name == "" {
		if entries, err := os.ReadDir(base); err == nil {
			for _, e := range entries {
				if strings.HasPrefix(e.Name(), "BAT") {
					name = e.Name()
					break
				}
			}
		}
	}
	b := &SysfsBattery{
		basePath: filepath.Join(base, name),
		interval: defaultBatteryPollInterval,
		current:  BatteryState{Level: 1.0, Charging: true},
	}
	b.current = b.read()
	return b
}

// Run polls until ctx is done, emitting transitions to subscribers.
func (b *SysfsBattery) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.mu.Lock()
			for _, sub := range b.subs {
				close(sub)
			}
			b.subs = nil
			b.mu.Unlock()
			return
		case <-ticker.C:
			b.poll()
		}
	}
}

// Current returns the latest battery observation
func (b *SysfsBattery) Current() BatteryState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Stream emits a state on every battery transition
func (b *SysfsBattery) Stream(ctx context.Context) <-chan BatteryState {
	ch := make(chan BatteryState, 1)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub == ch {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}()
	return ch
}

func (b *SysfsBattery) poll() {
	state := b.read()

	b.mu.Lock()
	changed := state != b.current
	b.current = state
	subs := make([]chan BatteryState, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	if !changed {
		return
	}
	for _, sub := range subs {
		select {
		case sub <- state:
		default:
		}
	}
}

// read returns the sysfs state, falling back to full-and-charging when
// the files are absent.
func (b *SysfsBattery) read() BatteryState {
	state := BatteryState{Level: 1.0, Charging: true}

	if data, err := os.ReadFile(filepath.Join(b.basePath, "capacity")); err == nil {
		if pct, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			state.Level = float64(pct) / 100
		}
	}
	if data, err := os.ReadFile(filepath.Join(b.basePath, "status")); err == nil {
		status := strings.TrimSpace(string(data))
		state.Charging = status == "Charging" || status == "Full"
	}
	return state
}
