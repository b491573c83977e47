package usecase

import (
	"context"
	"testing"

	"pix_storefront/internal/domain/entities"
)

type fakeWizard struct {
	active  bool
	handles bool
	calls   []string
}

func (f *fakeWizard) Enter(_ context.Context, _ int64) { f.calls = append(f.calls, "enter") }
func (f *fakeWizard) Leave(_ int64)                    { f.calls = append(f.calls, "leave") }
func (f *fakeWizard) Active(_ int64) bool              { return f.active }
func (f *fakeWizard) HandleCallback(_ context.Context, ev entities.CallbackEvent) bool {
	f.calls = append(f.calls, "callback:"+ev.Data)
	return f.handles
}

func TestBotDispatcher_HandleCommand(t *testing.T) {
	for _, cmd := range []string{"start", "menu", "START"} {
		t.Run(cmd, func(t *testing.T) {
			wiz := &fakeWizard{}
			msgr := &fakeMessenger{}
			d := NewBotDispatcher(wiz, msgr)

			d.HandleCommand(context.Background(), entities.CommandEvent{ChatID: testChat, Command: cmd})

			if len(wiz.calls) != 1 || wiz.calls[0] != "leave" {
				t.Fatalf("expected wizard to be left, got %v", wiz.calls)
			}
			last := msgr.last()
			if last.Text != MsgMainMenu || len(last.Keyboard) != 2 {
				t.Fatalf("unexpected menu %+v", last)
			}
			if last.Keyboard[0][0].Data != CallbackMenuBuy || last.Keyboard[1][0].Data != CallbackMenuInfo {
				t.Fatalf("unexpected menu buttons %+v", last.Keyboard)
			}
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		wiz := &fakeWizard{}
		msgr := &fakeMessenger{}
		NewBotDispatcher(wiz, msgr).HandleCommand(context.Background(), entities.CommandEvent{ChatID: testChat, Command: "help"})

		if len(wiz.calls) != 0 {
			t.Fatalf("unexpected wizard calls %v", wiz.calls)
		}
		if msgr.last().Text != MsgUseStart {
			t.Fatalf("unexpected reply %q", msgr.last().Text)
		}
	})
}

func TestBotDispatcher_HandleCallback(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		handles   bool
		wantCalls []string
		wantText  string
	}{
		{name: "buy enters the wizard", data: CallbackMenuBuy, wantCalls: []string{"enter"}},
		{name: "info", data: CallbackMenuInfo, wantText: MsgInfo},
		{name: "wizard press", data: "category_FKI", handles: true, wantCalls: []string{"callback:category_FKI"}},
		{name: "press outside the wizard", data: "quantity_FKI_1K", wantCalls: []string{"callback:quantity_FKI_1K"}, wantText: MsgOptionExpired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wiz := &fakeWizard{handles: tc.handles}
			msgr := &fakeMessenger{}
			d := NewBotDispatcher(wiz, msgr)

			d.HandleCallback(context.Background(), entities.CallbackEvent{ID: "cb-1", ChatID: testChat, Data: tc.data})

			if len(msgr.answered) != 1 || msgr.answered[0] != "cb-1" {
				t.Fatalf("expected callback to be answered, got %v", msgr.answered)
			}
			if len(wiz.calls) != len(tc.wantCalls) {
				t.Fatalf("expected calls %v, got %v", tc.wantCalls, wiz.calls)
			}
			for i := range wiz.calls {
				if wiz.calls[i] != tc.wantCalls[i] {
					t.Fatalf("expected calls %v, got %v", tc.wantCalls, wiz.calls)
				}
			}
			texts := msgr.texts()
			if tc.wantText == "" {
				if len(texts) != 0 {
					t.Fatalf("unexpected messages %q", texts)
				}
				return
			}
			if len(texts) != 1 || texts[0] != tc.wantText {
				t.Fatalf("expected %q, got %q", tc.wantText, texts)
			}
		})
	}
}

func TestBotDispatcher_HandleText(t *testing.T) {
	t.Run("inside the wizard", func(t *testing.T) {
		msgr := &fakeMessenger{}
		NewBotDispatcher(&fakeWizard{active: true}, msgr).HandleText(context.Background(), entities.TextEvent{ChatID: testChat, Text: "oi"})
		if msgr.last().Text != MsgUseButtons {
			t.Fatalf("unexpected reply %q", msgr.last().Text)
		}
	})

	t.Run("outside the wizard", func(t *testing.T) {
		msgr := &fakeMessenger{}
		NewBotDispatcher(&fakeWizard{}, msgr).HandleText(context.Background(), entities.TextEvent{ChatID: testChat, Text: "oi"})
		if msgr.last().Text != MsgUseStart {
			t.Fatalf("unexpected reply %q", msgr.last().Text)
		}
	})
}

func TestBotDispatcher_BuyFlowWithRealWizard(t *testing.T) {
	h := newWizardHarness(t, newMockGateway(t), nil, nil)
	d := NewBotDispatcher(h.wizard, h.msgr)

	d.HandleCommand(context.Background(), entities.CommandEvent{ChatID: testChat, Command: CommandStart})
	d.HandleCallback(context.Background(), entities.CallbackEvent{ChatID: testChat, MessageID: h.msgr.lastKeyboardID(), Data: CallbackMenuBuy})
	h.requireStep(entities.StepIntro)

	d.HandleCommand(context.Background(), entities.CommandEvent{ChatID: testChat, Command: CommandMenu})
	h.requireStep(entities.StepDone)

	d.HandleCallback(context.Background(), entities.CallbackEvent{ChatID: testChat, Data: "category_FKI"})
	if h.msgr.last().Text != MsgOptionExpired {
		t.Fatalf("expected expired option, got %q", h.msgr.last().Text)
	}
}
