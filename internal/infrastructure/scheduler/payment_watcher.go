// Package scheduler follows issued PIX orders until they settle or expire.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	DefaultSchedule = "@every 15s"

	MsgPaymentConfirmed = "✅ Pagamento confirmado! Seu pedido será processado."
	MsgPaymentFailed    = "⚠️ Pagamento não confirmado. Se precisar, faça um novo pedido com /start."
	MsgPixExpired       = "⌛ O PIX expirou sem confirmação de pagamento. Use /start para gerar um novo."

	checkTimeout = 10 * time.Second
)

// StatusRefresher asks the provider for the current status of an order.
type StatusRefresher interface {
	RefreshStatus(ctx context.Context, orderID string) (entities.PixOrder, error)
}

// PaymentWatcher runs one cron job per watched order. A job notifies the chat
// and removes itself once the order is paid, failed, canceled or past expiry.
type PaymentWatcher struct {
	cron      *cron.Cron
	schedule  string
	refresher StatusRefresher
	messenger interfaces.IMessenger
	now       func() time.Time
	logger    zerolog.Logger

	jobsMux sync.RWMutex
	jobs    map[string]cron.EntryID // order_id -> entry_id
}

var _ interfaces.IPaymentWatcher = (*PaymentWatcher)(nil)

func NewPaymentWatcher(schedule string, refresher StatusRefresher, messenger interfaces.IMessenger) (*PaymentWatcher, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor).Parse(schedule); err != nil {
		return nil, fmt.Errorf("invalid watcher schedule %q: %w", schedule, err)
	}

	return &PaymentWatcher{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		schedule:  schedule,
		refresher: refresher,
		messenger: messenger,
		now:       time.Now,
		logger:    logging.Component("watcher"),
		jobs:      make(map[string]cron.EntryID),
	}, nil
}

func (w *PaymentWatcher) Start() {
	w.logger.Info().Str("schedule", w.schedule).Msg("starting payment watcher")
	w.cron.Start()
}

// Stop waits for running checks to finish.
func (w *PaymentWatcher) Stop() {
	w.logger.Info().Msg("stopping payment watcher")
	<-w.cron.Stop().Done()
}

// Watch replaces any previous job for orderID.
func (w *PaymentWatcher) Watch(chatID int64, orderID string, expiresAt time.Time) error {
	w.jobsMux.Lock()
	defer w.jobsMux.Unlock()

	if entryID, exists := w.jobs[orderID]; exists {
		w.cron.Remove(entryID)
		delete(w.jobs, orderID)
	}

	entryID, err := w.cron.AddFunc(w.schedule, func() {
		w.Check(context.Background(), chatID, orderID, expiresAt)
	})
	if err != nil {
		return fmt.Errorf("failed to add watch job: %w", err)
	}
	w.jobs[orderID] = entryID
	w.logger.Info().Int64("chat_id", chatID).Str("order_id", orderID).Time("expires_at", expiresAt).Msg("watching order")
	return nil
}

func (w *PaymentWatcher) Cancel(orderID string) {
	w.jobsMux.Lock()
	defer w.jobsMux.Unlock()

	if entryID, exists := w.jobs[orderID]; exists {
		w.cron.Remove(entryID)
		delete(w.jobs, orderID)
		w.logger.Info().Str("order_id", orderID).Msg("watch cancelled")
	}
}

// Watching returns the ids of every watched order.
func (w *PaymentWatcher) Watching() []string {
	w.jobsMux.RLock()
	defer w.jobsMux.RUnlock()

	ids := make([]string, 0, len(w.jobs))
	for id := range w.jobs {
		ids = append(ids, id)
	}
	return ids
}

func (w *PaymentWatcher) isWatching(orderID string) bool {
	w.jobsMux.RLock()
	defer w.jobsMux.RUnlock()
	_, ok := w.jobs[orderID]
	return ok
}

// Check runs one status check. It reports whether the watch is over.
// Refresh failures are logged and left for the next tick.
func (w *PaymentWatcher) Check(ctx context.Context, chatID int64, orderID string, expiresAt time.Time) bool {
	logger := w.logger.With().Int64("chat_id", chatID).Str("order_id", orderID).Logger()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	var text string
	order, err := w.refresher.RefreshStatus(ctx, orderID)
	switch {
	case err == nil && order.Status == entities.PaymentStatusPaid:
		text = MsgPaymentConfirmed
	case err == nil && (order.Status == entities.PaymentStatusFailed || order.Status == entities.PaymentStatusCanceled):
		text = MsgPaymentFailed
	case !expiresAt.IsZero() && w.now().After(expiresAt):
		text = MsgPixExpired
	case err != nil:
		logger.Warn().Err(err).Msg("status check failed; retrying next tick")
		return false
	default:
		logger.Debug().Str("status", string(order.Status)).Msg("order still pending")
		return false
	}

	// A cancel that raced with this tick wins: the conversation moved on.
	if !w.isWatching(orderID) {
		return true
	}
	w.Cancel(orderID)

	if _, err := w.messenger.Send(ctx, entities.OutgoingMessage{ChatID: chatID, Text: text}); err != nil {
		logger.Error().Err(err).Msg("failed to notify chat")
	}
	logger.Info().Str("status", string(order.Status)).Msg("watch finished")
	return true
}
