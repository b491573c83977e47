package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/usecase/interfaces"
)

var ErrDuplicateOrder = errors.New("pix order already exists")

// PixOrderMemoryRepository keeps orders in process memory (storage.driver=memory).
type PixOrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.PixOrder
	now    func() time.Time
}

var _ interfaces.IPixOrderRepository = (*PixOrderMemoryRepository)(nil)

func NewPixOrderMemoryRepository() *PixOrderMemoryRepository {
	return &PixOrderMemoryRepository{
		orders: make(map[string]entities.PixOrder),
		now:    time.Now,
	}
}

func (r *PixOrderMemoryRepository) Create(_ context.Context, o entities.PixOrder) (entities.PixOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID]; exists {
		return entities.PixOrder{}, ErrDuplicateOrder
	}
	r.orders[o.ID] = o
	return o, nil
}

func (r *PixOrderMemoryRepository) GetByID(_ context.Context, id string) (entities.PixOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders[id], nil
}

func (r *PixOrderMemoryRepository) UpdateStatus(_ context.Context, id string, status entities.PaymentStatus) (entities.PixOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.PixOrder{}, nil
	}
	o.Status = status
	o.UpdatedAt = r.now().UTC()
	r.orders[id] = o
	return o, nil
}

func (r *PixOrderMemoryRepository) ListByChatID(_ context.Context, chatID int64) ([]entities.PixOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.PixOrder, 0)
	for _, o := range r.orders {
		if o.ChatID == chatID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
