package background

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Executor runs fire-and-forget side effects (device last-seen writes,
// secondary stats, stream publishes) off the request path. The queue is
// bounded; a full queue drops the task rather than blocking a handler.
// Close drains every accepted task before returning, which is the
// completion barrier the shutdown path relies on.

type Task struct {
	Name string
	Run  func(ctx context.Context)
}

type Config struct {
	Workers     int
	QueueSize   int
	TaskTimeout time.Duration
}

type Executor struct {
	tasks       chan Task
	wg          sync.WaitGroup
	taskTimeout time.Duration

	mu     sync.Mutex
	closed bool
}

func New(cfg Config) *Executor {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = 10 * time.Second
	}
	e := &Executor{
		tasks:       make(chan Task, cfg.QueueSize),
		taskTimeout: cfg.TaskTimeout,
	}
	for i := 0; i < cfg.Workers; i++ {
		e.wg.Add(1)
		go e.worker()
	}
	return e
}

func (e *Executor) worker() {
	defer e.wg.Done()
	for task := range e.tasks {
		// Tasks get their own context so a finished request or a
		// shutdown signal cannot cancel work already accepted.
		ctx, cancel := context.WithTimeout(context.Background(), e.taskTimeout)
		task.Run(ctx)
		cancel()
	}
}

// Submit queues a task. Returns false when the queue is full or the
// executor is closed; callers treat that as a missed best-effort update.
func (e *Executor) Submit(task Task) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	select {
	case e.tasks <- task:
		return true
	default:
		slog.Warn("Background queue full, dropping task", "task", task.Name)
		return false
	}
}

// Close stops accepting tasks and blocks until queued tasks finish.
func (e *Executor) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.tasks)
	e.mu.Unlock()
	e.wg.Wait()
}
