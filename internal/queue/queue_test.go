package queue_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emplanner/planner-backend/internal/queue"
)

func TestPublishWithoutSubscribersFails(t *testing.T) {
	q := queue.NewInMemoryQueue()

	if err := q.Publish(queue.TopicPostPublishes, 1); err == nil {
		t.Error("expected error when no subscriber is registered")
	}
}

func TestPublishDeliversPayload(t *testing.T) {
	q := queue.NewInMemoryQueue()

	got := make(chan any, 1)
	if err := q.Subscribe(queue.TopicPostPublishes, func(payload any) error {
		got <- payload
		return nil
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	if err := q.Publish(queue.TopicPostPublishes, 42); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case payload := <-got:
		if payload != 42 {
			t.Errorf("expected payload 42, got %v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never received the payload")
	}
}

func TestPublishRetriesFailedHandler(t *testing.T) {
	q := queue.NewInMemoryQueue()

	var attempts int32
	done := make(chan struct{})
	q.Subscribe(queue.TopicPostPublishes, func(payload any) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 2 {
			return errors.New("transient failure")
		}
		close(done)
		return nil
	})

	if err := q.Publish(queue.TopicPostPublishes, 7); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not retried")
	}

	if n := atomic.LoadInt32(&attempts); n != 2 {
		t.Errorf("expected 2 attempts, got %d", n)
	}
}

func TestTopicsAreIsolated(t *testing.T) {
	q := queue.NewInMemoryQueue()

	q.Subscribe("other_topic", func(payload any) error { return nil })

	if err := q.Publish(queue.TopicPostPublishes, 1); err == nil {
		t.Error("a subscriber on another topic must not count")
	}
}
