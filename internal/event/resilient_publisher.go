package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// retryEntry tracks an event moving through the retry queue
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with a buffered retry queue and a
// dead-letter file for events that exhaust their retries. Callers are
// decoupled from the retry mechanism: a failed publish is queued and
// retried by a background worker with exponential backoff.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	deadLetter *DeadLetterWriter
	maxRetries int
	retryDelay time.Duration
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher creates a publisher with a running retry worker.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		deadLetter: dl,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()

	return rp, nil
}

// PublishWithRetry attempts to publish an event. On failure the event is
// queued for background retry; when the queue is full it goes straight to
// the dead-letter file.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.maxRetries)

	entry := retryEntry{event: event, attempts: 1, lastErr: err}
	select {
	case p.retryQueue <- entry:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		if werr := p.deadLetter.Write(event, entry.attempts, err); werr != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "error", werr)
		}
	}
}

// Publish implements Bus. Errors are absorbed by the retry pipeline so the
// caller never blocks on downstream failures.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker, drains the queue and closes the
// dead-letter file. Entries still queued get one final attempt.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() {
		close(p.shutdown)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// retryWorker consumes the retry queue until shutdown
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

// processRetry republishes one entry with exponential backoff until it
// succeeds or exhausts maxRetries. During shutdown the remaining backoff
// delays are skipped.
func (p *ResilientPublisher) processRetry(entry retryEntry) {
	// Detached context: the originating request is long gone
	ctx := context.Background()

	for attempt := entry.attempts; attempt <= p.maxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, attempt)):
		case <-p.shutdown:
		}

		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded,
				"event_type", entry.event.Type,
				"attempt", attempt)
			return
		}

		entry.lastErr = err
		logger.Warn(LogMsgEventRetryFailed,
			"event_type", entry.event.Type,
			"attempt", attempt,
			"error", err)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type)
	if err := p.deadLetter.Write(entry.event, p.maxRetries+1, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}

// drainQueue gives every queued entry one final attempt before the worker
// exits
func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				entry.lastErr = err
				logger.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
				if werr := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); werr != nil {
					logger.Error(LogMsgDeadLetterWriteFailedS, "error", werr)
				}
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}
