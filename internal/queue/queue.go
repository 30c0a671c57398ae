package queue

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/repository"
)

// Topic for queued post deliveries.
const TopicPostPublishes = "post_publishes"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process queue with retry, used in dev and tests
// in place of the RabbitMQ worker.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartPostPublishSubscriber consumes queued delivery ids, hands each
// one to the sender, and flips the parent post to sent once nothing is
// left pending.
func StartPostPublishSubscriber(q Queue, deliveryRepo repository.DeliveryRepositoryInterface, postRepo repository.PostRepositoryInterface) {
	go func() {
		err := q.Subscribe(TopicPostPublishes, func(payload any) error {
			deliveryID, ok := payload.(int)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected int")
				return nil
			}

			log.Println("📩 Processing queued delivery ID:", deliveryID)

			d, err := deliveryRepo.GetByID(deliveryID)
			if err != nil {
				log.Println("⚠️ Failed to fetch delivery:", err)
				return err
			}
			if d == nil {
				log.Println("⚠️ Delivery not found for ID:", deliveryID)
				return nil // no retry
			}

			if err := MockSender(d.RenderedLink); err != nil {
				log.Println("⚠️ Failed to send delivery:", err)
				_ = deliveryRepo.UpdateStatus(deliveryID, "failed", err.Error())
				return err // triggers retry in queue
			}

			if err := deliveryRepo.UpdateStatus(deliveryID, "sent", ""); err != nil {
				log.Println("⚠️ Failed to update delivery status:", err)
				return err
			}

			stats, err := deliveryRepo.GetPostStats(d.PostID)
			if err != nil {
				log.Println("⚠️ Failed to fetch delivery stats:", err)
				return nil
			}
			if stats["pending"] == 0 {
				if err := postRepo.UpdateStatus(d.PostID, model.PostStatusSent); err != nil {
					log.Println("⚠️ Failed to mark post sent:", err)
				}
			}

			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for post_publishes:", err)
		}
	}()
}

// MockSender simulates a downstream publishing API with 90% success
func MockSender(payload any) error {
	r := rand.Float64()
	if r < 0.9 {
		return nil // success
	}
	return fmt.Errorf("mock sending failed")
}
