package service

import (
	"log"

	"github.com/emplanner/planner-backend/internal/model"
)

// DeliveryRepo defines the methods the worker needs
type DeliveryRepo interface {
	GetByID(id int) (*model.Delivery, error)
	Update(d *model.Delivery) error
}

// Worker processes queued delivery jobs
type Worker struct {
	DeliveryRepo DeliveryRepo
	JobChan      <-chan int
	SendFunc     func(link string) bool
}

// Constructor
func NewWorker(repo DeliveryRepo, jobChan <-chan int, sendFunc func(link string) bool) *Worker {
	return &Worker{
		DeliveryRepo: repo,
		JobChan:      jobChan,
		SendFunc:     sendFunc,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	for jobID := range w.JobChan {
		d, err := w.DeliveryRepo.GetByID(jobID)
		if err != nil {
			log.Println("Failed to get delivery:", err)
			continue
		}
		if d == nil {
			continue
		}

		success := w.SendFunc(d.RenderedLink)
		if success {
			d.Status = "sent"
		} else {
			d.Status = "failed"
			d.RetryCount++
		}

		w.DeliveryRepo.Update(d)
	}
}
