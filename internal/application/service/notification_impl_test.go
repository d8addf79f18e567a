package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"studysync/internal/domain/constant"
	"studysync/internal/infrastructure/scheduler"
	"studysync/internal/pkg/logger"
)

type recordingPusher struct {
	mu     sync.Mutex
	pushed []string
}

func (p *recordingPusher) Push(title, _ string, _ map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushed = append(p.pushed, title)
	return nil
}

func (p *recordingPusher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pushed)
}

func newTestNotifier(t *testing.T, allow bool) (NotificationScheduler, *recordingPusher) {
	t.Helper()
	log := logger.New()
	cron := scheduler.NewScheduler(log)
	t.Cleanup(cron.Stop)
	pusher := &recordingPusher{}
	return NewNotificationService(cron, pusher, allow, log), pusher
}

func TestNotificationService_ScheduleAndCancel(t *testing.T) {
	svc, _ := newTestNotifier(t, true)
	ctx := context.Background()

	id, err := svc.Schedule(ctx, "t", "b", time.Now().Add(time.Hour), nil)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if id == "" {
		t.Fatal("empty notification id")
	}

	if err := svc.Cancel(ctx, id); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	// Cancelling an id that no longer exists must stay a no-op.
	if err := svc.Cancel(ctx, id); err != nil {
		t.Fatalf("second cancel: %v", err)
	}
}

func TestNotificationService_CancelUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestNotifier(t, true)

	if err := svc.Cancel(context.Background(), "never-existed"); err != nil {
		t.Fatalf("cancel of unknown id: %v", err)
	}
}

func TestNotificationService_CancelAll(t *testing.T) {
	svc, _ := newTestNotifier(t, true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Schedule(ctx, "t", "b", time.Now().Add(time.Hour), nil); err != nil {
			t.Fatalf("schedule %d: %v", i, err)
		}
	}
	if err := svc.CancelAll(ctx); err != nil {
		t.Fatalf("cancelAll: %v", err)
	}
	if err := svc.CancelAll(ctx); err != nil {
		t.Fatalf("cancelAll on empty set: %v", err)
	}
}

func TestNotificationService_PastInstantDeliversImmediately(t *testing.T) {
	svc, pusher := newTestNotifier(t, true)

	id, err := svc.Schedule(context.Background(), "t", "b", time.Now().Add(-time.Minute), nil)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if id == "" {
		t.Fatal("empty notification id")
	}
	if pusher.count() != 1 {
		t.Fatalf("expected immediate delivery, got %d pushes", pusher.count())
	}
}

func TestNotificationService_PermissionLifecycle(t *testing.T) {
	svc, _ := newTestNotifier(t, true)

	status := svc.GetPermissionStatus()
	if status.Status != constant.PermissionUndetermined || status.Granted {
		t.Fatalf("initial status = %+v, want undetermined", status)
	}
	if !status.CanAskAgain {
		t.Fatal("undetermined status must allow asking")
	}

	status = svc.RequestPermissions()
	if !status.Granted || status.Status != constant.PermissionGranted {
		t.Fatalf("after request = %+v, want granted", status)
	}
}

func TestNotificationService_PermissionDeniedWithoutError(t *testing.T) {
	svc, _ := newTestNotifier(t, false)

	status := svc.RequestPermissions()
	if status.Granted {
		t.Fatal("expected denial")
	}
	if status.Status != constant.PermissionDenied || status.CanAskAgain {
		t.Fatalf("after denied request = %+v", status)
	}
	// Queries after denial stay denied and never error.
	status = svc.GetPermissionStatus()
	if status.Status != constant.PermissionDenied {
		t.Fatalf("query after denial = %+v", status)
	}
}
