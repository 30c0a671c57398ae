package main

import (
	"errors"
	"sync"
	"testing"

	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/service"
)

// MockDeliveryRepo stores deliveries in memory
type MockDeliveryRepo struct {
	deliveries map[int]*model.Delivery
	mu         sync.Mutex
	onUpdate   func()
}

func (m *MockDeliveryRepo) GetByID(id int) (*model.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deliveries[id], nil
}

func (m *MockDeliveryRepo) Update(d *model.Delivery) error {
	m.mu.Lock()
	m.deliveries[d.ID] = d
	m.mu.Unlock()
	if m.onUpdate != nil {
		m.onUpdate()
	}
	return nil
}

func (m *MockDeliveryRepo) GetPostStats(postID string) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := map[string]int{}
	for _, d := range m.deliveries {
		if d.PostID == postID {
			stats[d.Status]++
		}
	}
	return stats, nil
}

type MockPostStatusRepo struct {
	mu       sync.Mutex
	statuses map[string]string
}

func (m *MockPostStatusRepo) UpdateStatus(id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statuses == nil {
		m.statuses = map[string]string{}
	}
	m.statuses[id] = status
	return nil
}

func TestWorkerMarksDeliverySent(t *testing.T) {
	repo := &MockDeliveryRepo{
		deliveries: map[int]*model.Delivery{
			1: {ID: 1, Status: "pending", PostID: "post-1", ProfileID: "prof-1", RenderedLink: "https://example.com?utm_source=acme"},
		},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	repo.onUpdate = wg.Done

	jobChan := make(chan int, 1)
	jobChan <- 1

	worker := service.NewWorker(repo, jobChan, func(link string) bool {
		return true
	})

	go worker.Start()
	wg.Wait()

	d, _ := repo.GetByID(1)
	if d.Status != "sent" {
		t.Errorf("expected sent, got %s", d.Status)
	}
}

func TestWorkerMarksDeliveryFailed(t *testing.T) {
	repo := &MockDeliveryRepo{
		deliveries: map[int]*model.Delivery{
			7: {ID: 7, Status: "pending", PostID: "post-1", ProfileID: "prof-2"},
		},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	repo.onUpdate = wg.Done

	jobChan := make(chan int, 1)
	jobChan <- 7

	worker := service.NewWorker(repo, jobChan, func(link string) bool {
		return false
	})

	go worker.Start()
	wg.Wait()

	d, _ := repo.GetByID(7)
	if d.Status != "failed" {
		t.Errorf("expected failed, got %s", d.Status)
	}
	if d.RetryCount != 1 {
		t.Errorf("expected retry count 1, got %d", d.RetryCount)
	}
}

func TestProcessDeliveryRetryBudgetIsPersisted(t *testing.T) {
	repo := &MockDeliveryRepo{
		deliveries: map[int]*model.Delivery{
			5: {ID: 5, Status: "pending", PostID: "post-9", ProfileID: "prof-1", RenderedLink: "https://example.com"},
		},
	}
	posts := &MockPostStatusRepo{}
	failingSend := func(payload any) error { return errors.New("downstream unavailable") }

	for want := 1; want <= maxDeliveryRetries; want++ {
		retries, err := processDelivery(5, repo, posts, failingSend)
		if err == nil {
			t.Fatal("expected send error")
		}
		if retries != want {
			t.Fatalf("attempt %d reported %d retries", want, retries)
		}
	}

	d, _ := repo.GetByID(5)
	if d.RetryCount != maxDeliveryRetries {
		t.Errorf("retry count not persisted, got %d", d.RetryCount)
	}
	if d.Status != "failed" {
		t.Errorf("expected failed, got %s", d.Status)
	}
}

func TestProcessDeliveryCompletesPostWhenNonePending(t *testing.T) {
	repo := &MockDeliveryRepo{
		deliveries: map[int]*model.Delivery{
			1: {ID: 1, Status: "pending", PostID: "post-1", ProfileID: "prof-1", RenderedLink: "https://example.com?utm_source=acme"},
			2: {ID: 2, Status: "sent", PostID: "post-1", ProfileID: "prof-2"},
		},
	}
	posts := &MockPostStatusRepo{}
	okSend := func(payload any) error { return nil }

	if _, err := processDelivery(1, repo, posts, okSend); err != nil {
		t.Fatal(err)
	}

	d, _ := repo.GetByID(1)
	if d.Status != "sent" {
		t.Errorf("expected sent, got %s", d.Status)
	}
	posts.mu.Lock()
	defer posts.mu.Unlock()
	if posts.statuses["post-1"] != model.PostStatusSent {
		t.Errorf("post not marked sent once all deliveries resolved: %+v", posts.statuses)
	}
}
