package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestChatQueue_SameChatRunsInOrder(t *testing.T) {
	q := NewChatQueue(zerolog.Nop(), nil)

	var (
		mu  sync.Mutex
		got []int
	)
	for i := 0; i < 50; i++ {
		i := i
		q.Submit(context.Background(), 1, func(context.Context) {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	q.Close()

	if len(got) != 50 {
		t.Fatalf("expected 50 jobs, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("out of order at %d: %v", i, got)
		}
	}
}

func TestChatQueue_ChatsDoNotBlockEachOther(t *testing.T) {
	q := NewChatQueue(zerolog.Nop(), nil)
	release := make(chan struct{})
	done := make(chan struct{})

	q.Submit(context.Background(), 1, func(context.Context) { <-release })
	q.Submit(context.Background(), 2, func(context.Context) { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("chat 2 was blocked by chat 1")
	}
	close(release)
	q.Close()
}

func TestChatQueue_RecoversPanics(t *testing.T) {
	var recoveredChat int64
	q := NewChatQueue(zerolog.Nop(), func(_ context.Context, chatID int64, _ any) { recoveredChat = chatID })

	ran := false
	q.Submit(context.Background(), 9, func(context.Context) { panic("boom") })
	q.Submit(context.Background(), 9, func(context.Context) { ran = true })
	q.Close()

	if recoveredChat != 9 {
		t.Fatalf("expected panic of chat 9 to be reported, got %d", recoveredChat)
	}
	if !ran {
		t.Fatalf("expected the next job to run after a panic")
	}
}

func TestChatQueue_JobsOutliveSubmitContext(t *testing.T) {
	q := NewChatQueue(zerolog.Nop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var jobErr error
	q.Submit(ctx, 1, func(ctx context.Context) { jobErr = ctx.Err() })
	q.Close()

	if jobErr != nil {
		t.Fatalf("expected a live context, got %v", jobErr)
	}
	if q.Submit(context.Background(), 1, func(context.Context) {}) {
		t.Fatalf("expected closed queue to reject jobs")
	}
}
