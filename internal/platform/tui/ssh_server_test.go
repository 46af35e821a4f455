package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Logger = log.New(io.Discard)

	if _, err := NewSSHServer(cfg, nil); err == nil {
		t.Error("NewSSHServer() accepted a nil factory")
	}

	factory := func() (*wheel.Wheel, error) {
		return wheel.New([]wheel.Segment{{Text: "a"}, {Text: "b"}}, wheel.ModeNormal)
	}
	srv, err := NewSSHServer(cfg, factory)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), cfg.Address)
	}
}
