package events

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPublishRunsAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventServiceRequestCreated, func(context.Context, Event) error {
		calls++
		return errors.New("first fails")
	})
	d.Subscribe(EventServiceRequestCreated, func(context.Context, Event) error {
		calls++
		return nil
	})
	d.Subscribe(EventServiceRequestAssigned, func(context.Context, Event) error {
		t.Fatalf("handler for another type invoked")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventServiceRequestCreated})
	if calls != 2 {
		t.Fatalf("expected both handlers to run, got %d", calls)
	}
	if err == nil {
		t.Fatalf("expected joined handler error")
	}
}

func TestPublishRecoversPanickingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	ran := false
	d.Subscribe(EventContentPersisted, func(context.Context, Event) error {
		panic("boom")
	})
	d.Subscribe(EventContentPersisted, func(context.Context, Event) error {
		ran = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventContentPersisted, SubjectID: "site_content"})
	if !ran {
		t.Fatalf("handler after a panic must still run")
	}
	if err == nil || !strings.Contains(err.Error(), "panic: boom") || !strings.Contains(err.Error(), "site_content") {
		t.Fatalf("expected tagged panic error, got %v", err)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	if err := NewInMemoryDispatcher().Publish(context.Background(), Event{Type: EventServiceRequestCompleted}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
