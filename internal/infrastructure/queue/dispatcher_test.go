package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightcart/storefront-api/internal/core/domain"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *recordingAuditService) Record(_ context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingAuditService) snapshot() []domain.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuthEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	sink := &recordingAuditService{}
	d := NewDispatcher(2, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{Email: "a@x.com", Action: domain.AuditLoginSuccess})
	d.Enqueue(domain.AuthEvent{Email: "b@x.com", Action: domain.AuditRegister})
	d.Enqueue(domain.AuthEvent{Subject: "account-1", Action: domain.AuditLogout})

	waitFor(t, func() bool { return len(sink.snapshot()) == 3 })

	for _, event := range sink.snapshot() {
		if event.Action == domain.AuditLogout && event.Subject != "account-1" {
			t.Fatalf("logout event lost its subject: %+v", event)
		}
	}
}

func TestDispatcher_SameEmailKeepsOrder(t *testing.T) {
	sink := &recordingAuditService{}
	d := NewDispatcher(4, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{
		domain.AuditRegister,
		domain.AuditLoginFailure,
		domain.AuditLoginSuccess,
		domain.AuditLogout,
	}
	for _, action := range actions {
		d.Enqueue(domain.AuthEvent{Email: "ordered@x.com", Action: action})
	}

	waitFor(t, func() bool { return len(sink.snapshot()) == len(actions) })

	got := sink.snapshot()
	for i, action := range actions {
		if got[i].Action != action {
			t.Fatalf("event %d: got action %q, want %q", i, got[i].Action, action)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingAuditService{}, zerolog.Nop())

	first := d.shardIndex("a@x.com")
	for i := 0; i < 10; i++ {
		if idx := d.shardIndex("a@x.com"); idx != first {
			t.Fatalf("shard index changed between calls: %d vs %d", idx, first)
		}
	}
}

func TestDispatcher_EnqueueDropsWhenFull(t *testing.T) {
	// Workers are never started, so the buffer fills up and further
	// events must be dropped without blocking.
	d := NewDispatcher(1, &recordingAuditService{}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(domain.AuthEvent{Email: "a@x.com", Action: domain.AuditLoginFailure})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}
}
