// Package device abstracts the host platform signals the scheduler
// depends on: network connectivity and battery state.
package device

import "context"

//go:generate moq -out connectivity_mock.go . ConnectivityProvider
//go:generate moq -out battery_mock.go . BatteryProvider

// ConnState classifies the current network reachability.
type ConnState string

const (
	ConnOnline  ConnState = "online"
	ConnLimited ConnState = "limited"
	ConnOffline ConnState = "offline"
)

// NetworkStatus is one connectivity observation.
type NetworkStatus struct {
	State ConnState
	Wifi  bool
}

// Online reports whether remote calls are worth attempting.
func (n NetworkStatus) Online() bool {
	return n.State == ConnOnline || n.State == ConnLimited
}

// BatteryState is one battery observation.
type BatteryState struct {
	Level    float64 // 0..1
	Charging bool
}

// ConnectivityProvider exposes network state and a transition stream.
type ConnectivityProvider interface {
	// Current returns the latest connectivity observation.
	Current() NetworkStatus

	// Stream emits a status on every connectivity transition until ctx is
	// done. The channel is closed when the provider stops.
	Stream(ctx context.Context) <-chan NetworkStatus
}

// BatteryProvider exposes battery state and a transition stream.
type BatteryProvider interface {
	// Current returns the latest battery observation.
	Current() BatteryState

	// Stream emits a state on every battery transition (charging
	// start/stop, level steps) until ctx is done.
	Stream(ctx context.Context) <-chan BatteryState
}
