package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeIdentity{}, &fakeGrievances{}, &fakeCatalogs{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	for _, addr := range []string{"127.0.0.1:99999", "not-an-address"} {
		t.Run(addr, func(t *testing.T) {
			srv := NewGRPCServer(addr, nopLogger{}, &fakeIdentity{}, &fakeGrievances{}, &fakeCatalogs{})

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			if err := srv.Run(ctx); err == nil {
				t.Fatalf("expected error from Run on %q, got nil", addr)
			}
		})
	}
}

func TestNewGRPCServer_KeepsDependencies(t *testing.T) {
	identity, grievances, catalogs := &fakeIdentity{}, &fakeGrievances{}, &fakeCatalogs{}

	srv := NewGRPCServer(":50051", nopLogger{}, identity, grievances, catalogs)

	if srv.address != ":50051" || srv.identity != identity || srv.grievances != grievances || srv.catalogs != catalogs {
		t.Fatalf("unexpected server wiring: %+v", srv)
	}
}
