package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"pix_storefront/internal/domain/entities"
	mock_interfaces "pix_storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubRefresher struct {
	status entities.PaymentStatus
	err    error
	calls  int
}

func (s *stubRefresher) RefreshStatus(_ context.Context, orderID string) (entities.PixOrder, error) {
	s.calls++
	if s.err != nil {
		return entities.PixOrder{}, s.err
	}
	return entities.PixOrder{ID: orderID, Status: s.status}, nil
}

func TestNewPaymentWatcher_InvalidSchedule(t *testing.T) {
	if _, err := NewPaymentWatcher("every banana", &stubRefresher{}, nil); err == nil {
		t.Fatalf("expected error for invalid schedule")
	}
}

func TestPaymentWatcher_WatchAndCancel(t *testing.T) {
	w, err := NewPaymentWatcher("", &stubRefresher{}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := w.Watch(1, "or_1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := w.Watch(1, "or_1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := w.Watching(); len(got) != 1 || got[0] != "or_1" {
		t.Fatalf("expected a single job for or_1, got %v", got)
	}

	w.Cancel("or_1")
	w.Cancel("or_unknown")
	if got := w.Watching(); len(got) != 0 {
		t.Fatalf("expected no jobs, got %v", got)
	}
}

func TestPaymentWatcher_Check(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Minute)

	t.Run("paid notifies and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		w, _ := NewPaymentWatcher("", &stubRefresher{status: entities.PaymentStatusPaid}, messenger)
		_ = w.Watch(9, "or_1", future)

		messenger.EXPECT().Send(gomock.Any(), entities.OutgoingMessage{ChatID: 9, Text: MsgPaymentConfirmed}).Return(1, nil)

		if done := w.Check(context.Background(), 9, "or_1", future); !done {
			t.Fatalf("expected watch to finish")
		}
		if len(w.Watching()) != 0 {
			t.Fatalf("expected job to be removed")
		}
	})

	t.Run("failed notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		w, _ := NewPaymentWatcher("", &stubRefresher{status: entities.PaymentStatusCanceled}, messenger)
		_ = w.Watch(9, "or_1", future)

		messenger.EXPECT().Send(gomock.Any(), entities.OutgoingMessage{ChatID: 9, Text: MsgPaymentFailed}).Return(1, nil)

		if done := w.Check(context.Background(), 9, "or_1", future); !done {
			t.Fatalf("expected watch to finish")
		}
	})

	t.Run("pending keeps watching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		w, _ := NewPaymentWatcher("", &stubRefresher{status: entities.PaymentStatusPending}, messenger)
		_ = w.Watch(9, "or_1", future)

		if done := w.Check(context.Background(), 9, "or_1", future); done {
			t.Fatalf("expected watch to continue")
		}
		if len(w.Watching()) != 1 {
			t.Fatalf("expected job to stay")
		}
	})

	t.Run("refresh error keeps watching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		w, _ := NewPaymentWatcher("", &stubRefresher{err: errors.New("boom")}, messenger)
		_ = w.Watch(9, "or_1", future)

		if done := w.Check(context.Background(), 9, "or_1", future); done {
			t.Fatalf("expected watch to continue")
		}
	})

	t.Run("expired notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		w, _ := NewPaymentWatcher("", &stubRefresher{err: errors.New("boom")}, messenger)
		_ = w.Watch(9, "or_1", past)

		messenger.EXPECT().Send(gomock.Any(), entities.OutgoingMessage{ChatID: 9, Text: MsgPixExpired}).Return(1, nil)

		if done := w.Check(context.Background(), 9, "or_1", past); !done {
			t.Fatalf("expected watch to finish")
		}
	})

	t.Run("cancelled watch does not notify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		messenger := mock_interfaces.NewMockIMessenger(ctrl)
		w, _ := NewPaymentWatcher("", &stubRefresher{status: entities.PaymentStatusPaid}, messenger)

		if done := w.Check(context.Background(), 9, "or_1", future); !done {
			t.Fatalf("expected watch to finish")
		}
	})
}

func TestPaymentWatcher_StartStop(t *testing.T) {
	w, _ := NewPaymentWatcher("@every 1s", &stubRefresher{status: entities.PaymentStatusPending}, nil)
	w.Start()
	w.Stop()
}
