package session

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pix_storefront/internal/domain/entities"
)

func TestStore_UpdateAndGet(t *testing.T) {
	s := NewStore()

	if _, ok := s.Get(1); ok {
		t.Fatalf("expected no state for unknown chat")
	}

	s.Update(1, func(st *entities.ConversationState) {
		st.Step = entities.StepAwaitingQuantity
		st.CategoryID = "FKI"
	})

	st, ok := s.Get(1)
	if !ok {
		t.Fatalf("expected active state")
	}
	if st.ChatID != 1 || st.CategoryID != "FKI" || st.Step != entities.StepAwaitingQuantity {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.UpdatedAt.IsZero() {
		t.Fatalf("expected UpdatedAt to be set")
	}
}

func TestStore_DropsDoneConversations(t *testing.T) {
	s := NewStore()

	s.Update(7, func(st *entities.ConversationState) { st.Step = entities.StepIntro })
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}

	s.Update(7, func(st *entities.ConversationState) { st.Reset() })
	if s.Len() != 0 {
		t.Fatalf("expected entry to be dropped, got %d", s.Len())
	}
	if _, ok := s.Get(7); ok {
		t.Fatalf("expected no state after done")
	}
}

func TestStore_SameChatIsSerialized(t *testing.T) {
	s := NewStore()

	var inside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(3, func(st *entities.ConversationState) {
				if atomic.AddInt32(&inside, 1) != 1 {
					t.Errorf("two handlers for the same chat ran at once")
				}
				time.Sleep(time.Millisecond)
				st.Step = entities.StepIntro
				st.KeyboardMessageID++
				atomic.AddInt32(&inside, -1)
			})
		}()
	}
	wg.Wait()

	st, _ := s.Get(3)
	if st.KeyboardMessageID != 20 {
		t.Fatalf("expected 20 serialized updates, got %d", st.KeyboardMessageID)
	}
}

func TestStore_DifferentChatsDoNotBlock(t *testing.T) {
	s := NewStore()

	entered := make(chan struct{})
	unblock := make(chan struct{})
	go s.Update(1, func(st *entities.ConversationState) {
		st.Step = entities.StepIntro
		close(entered)
		<-unblock
	})
	<-entered

	done := make(chan struct{})
	go func() {
		s.Update(2, func(st *entities.ConversationState) { st.Step = entities.StepIntro })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("chat 2 waited on chat 1")
	}
	close(unblock)
}

func TestStore_PanicResetsConversation(t *testing.T) {
	s := NewStore()
	s.Update(1, func(st *entities.ConversationState) {
		st.Step = entities.StepAwaitingQuantity
		st.CategoryID = "FKI"
	})

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected the panic to reach the caller, got %v", r)
			}
		}()
		s.Update(1, func(st *entities.ConversationState) {
			st.Step = entities.StepAwaitingPostPaymentChoice
			panic("boom")
		})
	}()

	st, ok := s.Get(1)
	if ok || st.Step != entities.StepDone || st.CategoryID != "" {
		t.Fatalf("expected a reset conversation, got %+v (active=%v)", st, ok)
	}
	if s.Len() != 0 {
		t.Fatalf("expected the entry to be dropped, got %d", s.Len())
	}

	// The per-chat lock was released.
	s.Update(1, func(st *entities.ConversationState) { st.Step = entities.StepIntro })
	if st, ok := s.Get(1); !ok || st.Step != entities.StepIntro {
		t.Fatalf("expected chat to be usable again, got %+v", st)
	}
}
