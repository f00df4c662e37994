package device

import (
	"context"
	"net"
	"sync"
	"time"
)

const (
	defaultProbeInterval = 30 * time.Second
	defaultProbeTimeout  = 5 * time.Second
)

// Prober is a ConnectivityProvider that checks reachability by dialing a
// probe address on an interval. It cannot distinguish wifi from mobile
// data on its own; the wifi flag is supplied by the hint callback (nil
// means assume wifi, which keeps wifi-only configs permissive on hosts
// without an interface oracle).
type Prober struct {
	addr     string
	interval time.Duration
	timeout  time.Duration
	wifiHint func() bool
	dial     func(ctx context.Context, network, addr string) (net.Conn, error)

	mu      sync.RWMutex
	current NetworkStatus
	subs    []chan NetworkStatus
}

// NewProber creates a connectivity prober dialing addr (host:port).
func NewProber(addr string, wifiHint func() bool) *Prober {
	dialer := &net.Dialer{}
	return &Prober{
		addr:     addr,
		interval: defaultProbeInterval,
		timeout:  defaultProbeTimeout,
		wifiHint: wifiHint,
		dial:     dialer.DialContext,
		current:  NetworkStatus{State: ConnOffline},
	}
}

// Run probes until ctx is done, emitting transitions to subscribers.
func (p *Prober) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			p.closeSubs()
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

// Current returns the latest connectivity observation
func (p *Prober) Current() NetworkStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Stream emits a status on every connectivity transition
func (p *Prober) Stream(ctx context.Context) <-chan NetworkStatus {
	ch := make(chan NetworkStatus, 1)
	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subs {
			if sub == ch {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}()
	return ch
}

func (p *Prober) probe(ctx context.Context) {
	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	status := NetworkStatus{State: ConnOffline}
	if conn, err := p.dial(dialCtx, "tcp", p.addr); err == nil {
		conn.Close()
		status.State = ConnOnline
		status.Wifi = p.wifiHint == nil || p.wifiHint()
	}

	p.mu.Lock()
	changed := status != p.current
	p.current = status
	subs := make([]chan NetworkStatus, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	if !changed {
		return
	}
	for _, sub := range subs {
		select {
		case sub <- status:
		default:
			// Подписчик отстал — не блокируемся.
		}
	}
}

func (p *Prober) closeSubs() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, sub := range p.subs {
		close(sub)
	}
	p.subs = nil
}
