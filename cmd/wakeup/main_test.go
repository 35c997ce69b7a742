package main

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"

	"github.com/aipex-labs/hudlink/internal/wakeuppb"
)

func TestNormalizeTarget(t *testing.T) {
	resolved := func(string) (string, bool) { return "192.168.4.20", true }
	unresolved := func(string) (string, bool) { return "", false }

	tests := []struct {
		name    string
		target  string
		resolve func(string) (string, bool)
		want    string
	}{
		{"host and port pass through", "10.0.0.5:50051", unresolved, "10.0.0.5:50051"},
		{"bare host gets default port", "10.0.0.5", unresolved, "10.0.0.5:50050"},
		{"local name resolves", "board.local:50050", resolved, "192.168.4.20:50050"},
		{"local name without port", "board.local", resolved, "192.168.4.20:50050"},
		{"trailing dot still resolves", "board.local.:50050", resolved, "192.168.4.20:50050"},
		{"unresolvable local passes through", "board.local:50050", unresolved, "board.local:50050"},
		{"plain hostname is not resolved", "board.lan:50050", resolved, "board.lan:50050"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeTarget(tt.target, tt.resolve); got != tt.want {
				t.Errorf("normalizeTarget(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

// fakeWakeup answers TriggerScript with a scripted response.
type fakeWakeup struct {
	wakeuppb.UnimplementedWakeUpServiceServer
	success bool
}

func (f *fakeWakeup) TriggerScript(ctx context.Context, req *wakeuppb.WakeUpRequest) (*wakeuppb.WakeUpResponse, error) {
	return &wakeuppb.WakeUpResponse{
		Success:   f.success,
		ProcessId: 4321,
		Message:   "script " + req.GetScriptName(),
	}, nil
}

func startFakeServer(t *testing.T, success bool) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	server := grpc.NewServer()
	wakeuppb.RegisterWakeUpServiceServer(server, &fakeWakeup{success: success})
	go server.Serve(lis)
	t.Cleanup(server.Stop)
	return lis.Addr().String()
}

func TestRun_ExitCodes(t *testing.T) {
	if rc := run(startFakeServer(t, true), "wakeup", "", 5*time.Second); rc != 0 {
		t.Errorf("run against succeeding remote = %d, want 0", rc)
	}

	if rc := run(startFakeServer(t, false), "wakeup", "", 5*time.Second); rc != 2 {
		t.Errorf("run against failing remote = %d, want 2", rc)
	}

	// A dead port is a transport failure.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := lis.Addr().String()
	lis.Close()
	if rc := run(addr, "wakeup", "", time.Second); rc != 1 {
		t.Errorf("run against dead port = %d, want 1", rc)
	}
}
