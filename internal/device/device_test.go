package device

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkStatus_Online(t *testing.T) {
	tests := []struct {
		state ConnState
		want  bool
	}{
		{ConnOnline, true},
		{ConnLimited, true},
		{ConnOffline, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, NetworkStatus{State: tt.state}.Online())
		})
	}
}

func TestSysfsBattery_Read(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "capacity"), []byte("42\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte("Discharging\n"), 0o644))

	b := &SysfsBattery{basePath: dir}
	state := b.read()

	assert.InDelta(t, 0.42, state.Level, 1e-9)
	assert.False(t, state.Charging)
}

func TestSysfsBattery_ReadChargingStates(t *testing.T) {
	for _, status := range []string{"Charging", "Full"} {
		t.Run(status, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "capacity"), []byte("90"), 0o644))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(status), 0o644))

			b := &SysfsBattery{basePath: dir}
			assert.True(t, b.read().Charging)
		})
	}
}

func TestSysfsBattery_ReadFallback(t *testing.T) {
	// Хоста без батареи политика не должна душить.
	b := &SysfsBattery{basePath: filepath.Join(t.TempDir(), "absent")}
	state := b.read()

	assert.InDelta(t, 1.0, state.Level, 1e-9)
	assert.True(t, state.Charging)
}

func TestProber_ProbeTransitions(t *testing.T) {
	online := true
	p := NewProber("example.invalid:443", nil)
	p.dial = func(ctx context.Context, network, addr string) (net.Conn, error) {
		if online {
			client, server := net.Pipe()
			go server.Close()
			return client, nil
		}
		return nil, errors.New("unreachable")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := p.Stream(ctx)

	p.probe(ctx)
	assert.True(t, p.Current().Online())
	assert.True(t, p.Current().Wifi)

	select {
	case status := <-ch:
		assert.Equal(t, ConnOnline, status.State)
	case <-time.After(time.Second):
		t.Fatal("expected a transition to online")
	}

	// Повторная проверка без смены состояния ничего не публикует.
	p.probe(ctx)
	select {
	case status := <-ch:
		t.Fatalf("unexpected transition: %+v", status)
	default:
	}

	online = false
	p.probe(ctx)
	assert.False(t, p.Current().Online())

	select {
	case status := <-ch:
		assert.Equal(t, ConnOffline, status.State)
	case <-time.After(time.Second):
		t.Fatal("expected a transition to offline")
	}
}

func TestProber_WifiHint(t *testing.T) {
	p := NewProber("example.invalid:443", func() bool { return false })
	p.dial = func(ctx context.Context, network, addr string) (net.Conn, error) {
		client, server := net.Pipe()
		go server.Close()
		return client, nil
	}

	p.probe(context.Background())
	assert.True(t, p.Current().Online())
	assert.False(t, p.Current().Wifi)
}

func TestProber_StreamClosesOnCancel(t *testing.T) {
	p := NewProber("example.invalid:443", nil)

	ctx, cancel := context.WithCancel(context.Background())
	ch := p.Stream(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("expected channel to close after cancel")
	}
}
