package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled pipeline invocation
type Job func(ctx context.Context) error

// Scheduler runs the digest pipeline in-process on a cron schedule, for
// deployments without an external cron calling the trigger endpoint.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// AddDigestJob registers the digest job with a cron expression such as
// "0 8 * * *" (daily at 08:00).
func (s *Scheduler) AddDigestJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		log.Println("[Scheduler] Starting digest job")
		start := time.Now()

		if err := job(ctx); err != nil {
			log.Printf("[Scheduler] Digest job failed: %v", err)
		} else {
			log.Printf("[Scheduler] Digest job completed in %v", time.Since(start))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}

	log.Printf("[Scheduler] Added digest job (schedule: %s)", schedule)
	return nil
}

// Start begins the scheduler loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
