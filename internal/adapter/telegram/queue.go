package telegram

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Job is one unit of work for a chat.
type Job func(ctx context.Context)

// ChatQueue runs jobs of the same chat one after another, in arrival order,
// while different chats proceed in parallel. A worker goroutine exists only
// while its chat has pending jobs.
type ChatQueue struct {
	mu      sync.Mutex
	pending map[int64][]Job
	closed  bool
	wg      sync.WaitGroup

	onPanic func(ctx context.Context, chatID int64, recovered any)
	logger  zerolog.Logger
}

func NewChatQueue(logger zerolog.Logger, onPanic func(ctx context.Context, chatID int64, recovered any)) *ChatQueue {
	return &ChatQueue{
		pending: make(map[int64][]Job),
		onPanic: onPanic,
		logger:  logger,
	}
}

// Submit enqueues job for chatID. It reports false once the queue is closed.
func (q *ChatQueue) Submit(ctx context.Context, chatID int64, job Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}

	jobs, running := q.pending[chatID]
	q.pending[chatID] = append(jobs, job)
	if !running {
		q.wg.Add(1)
		go q.drain(context.WithoutCancel(ctx), chatID)
	}
	return true
}

func (q *ChatQueue) drain(ctx context.Context, chatID int64) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		jobs := q.pending[chatID]
		if len(jobs) == 0 {
			delete(q.pending, chatID)
			q.mu.Unlock()
			return
		}
		job := jobs[0]
		q.pending[chatID] = jobs[1:]
		q.mu.Unlock()

		q.run(ctx, chatID, job)
	}
}

func (q *ChatQueue) run(ctx context.Context, chatID int64, job Job) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Int64("chat_id", chatID).Interface("panic", r).Msg("recovered from panic while handling update")
			if q.onPanic != nil {
				q.onPanic(ctx, chatID, r)
			}
		}
	}()
	job(ctx)
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (q *ChatQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wg.Wait()
}
