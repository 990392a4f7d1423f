package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/worker"
)

// LogMsgJobScheduled is logged once per registered job
const LogMsgJobScheduled = "Job scheduled"

// Scheduler enqueues recurring jobs onto a worker pool
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The job runs once
// right away, then on every tick. Enqueueing blocks while the pool queue is
// full, which delays later ticks rather than dropping them.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	slog.Debug(LogMsgJobScheduled, "job", fmt.Sprintf("%T", job), "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(interval, job)
	}()
}

func (s *Scheduler) run(interval time.Duration, job worker.Job) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// First run happens immediately rather than one interval from now
	s.workerPool.Enqueue(job)

	for {
		select {
		case <-ticker.C:
			s.workerPool.Enqueue(job)
		case <-s.quit:
			return
		}
	}
}

// Stop ends every ticker and waits for the scheduling goroutines to exit
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
