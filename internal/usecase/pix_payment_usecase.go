package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultPaymentTimeout  = 10 * time.Second
	DefaultPixExpiresIn    = 2 * time.Hour
	DefaultItemDescription = "Adição de Saldo"
	DefaultItemCode        = "123"
)

var (
	ErrPixOrderNotFound = errors.New("pix order not found")
	ErrInvalidOrderID   = errors.New("invalid order_id")
)

// IPixPaymentUseCase issues PIX orders and tracks their status. It backs the
// order wizard, the HTTP API and the CLI.
type IPixPaymentUseCase interface {
	CreatePixOrder(ctx context.Context, req entities.PixOrderRequest) (entities.PixOrder, error)
	GetOrder(ctx context.Context, id string) (entities.PixOrder, error)
	RefreshStatus(ctx context.Context, id string) (entities.PixOrder, error)
	ListByChatID(ctx context.Context, chatID int64) ([]entities.PixOrder, error)
}

type PixPaymentOptions struct {
	Timeout     time.Duration
	ExpiresIn   time.Duration
	Description string
	ItemCode    string
}

type PixPaymentUseCase struct {
	gateway      interfaces.IPaymentGateway
	repo         interfaces.IPixOrderRepository
	timeout      time.Duration
	expiresIn    time.Duration
	description  string
	itemCode     string
	now          func() time.Time
	newReference func() string
	logger       zerolog.Logger
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(gateway interfaces.IPaymentGateway, repo interfaces.IPixOrderRepository, opts PixPaymentOptions) *PixPaymentUseCase {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultPaymentTimeout
	}
	if opts.ExpiresIn <= 0 {
		opts.ExpiresIn = DefaultPixExpiresIn
	}
	if strings.TrimSpace(opts.Description) == "" {
		opts.Description = DefaultItemDescription
	}
	if strings.TrimSpace(opts.ItemCode) == "" {
		opts.ItemCode = DefaultItemCode
	}
	return &PixPaymentUseCase{
		gateway:      gateway,
		repo:         repo,
		timeout:      opts.Timeout,
		expiresIn:    opts.ExpiresIn,
		description:  opts.Description,
		itemCode:     opts.ItemCode,
		now:          time.Now,
		newReference: uuid.NewString,
		logger:       logging.Component("payment.usecase"),
	}
}

// CreatePixOrder makes a single gateway attempt bounded by the configured
// timeout. Failing to store the record does not fail the payment: the customer
// already has a valid PIX code at that point.
func (u *PixPaymentUseCase) CreatePixOrder(ctx context.Context, req entities.PixOrderRequest) (entities.PixOrder, error) {
	logger := u.logger.With().Int64("chat_id", req.ChatID).Str("category", req.CategoryID).Str("tier", req.Tier).Logger()
	logger.Info().Str("amount", req.Amount.String()).Msg("create pix order start")

	cents, err := entities.ToCents(req.Amount)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid amount")
		return entities.PixOrder{}, err
	}
	if u.gateway == nil {
		logger.Error().Msg("gateway not configured")
		return entities.PixOrder{}, domain.NewGatewayError("none", domain.GatewayReasonNotConfigured, 0, domain.ErrGatewayNotConfigured)
	}

	description := req.Description
	if strings.TrimSpace(description) == "" {
		description = u.description
	}
	charge := entities.PixCharge{
		Reference:   u.newReference(),
		Amount:      req.Amount.Round(2),
		AmountCents: cents,
		Description: description,
		Code:        u.itemCode,
		ExpiresIn:   u.expiresIn,
	}

	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	payment, err := u.gateway.CreatePixOrder(callCtx, charge)
	if err != nil {
		logger.Error().Err(err).Str("reference", charge.Reference).Msg("payment gateway failed")
		return entities.PixOrder{}, err
	}

	now := u.now().UTC()
	expiresAt := payment.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(u.expiresIn)
	}
	status := payment.Status
	if status == "" {
		status = entities.PaymentStatusPending
	}

	order := entities.PixOrder{
		ID:                 payment.OrderID,
		Reference:          charge.Reference,
		Provider:           u.gateway.Name(),
		ChatID:             req.ChatID,
		CategoryID:         req.CategoryID,
		Tier:               req.Tier,
		Amount:             charge.Amount,
		AmountCents:        cents,
		Status:             status,
		QRCode:             payment.QRCode,
		QRCodeURL:          payment.QRCodeURL,
		QRCodeImage:        payment.QRCodeImage,
		ExpiresAt:          expiresAt,
		CreatedAt:          now,
		UpdatedAt:          now,
		ProviderPayloadRaw: payment.Raw,
	}

	if u.repo != nil {
		if _, err := u.repo.Create(ctx, order); err != nil {
			logger.Error().Err(err).Str("order_id", order.ID).Msg("pix order repository create failed")
		}
	}
	logger.Info().Str("order_id", order.ID).Int64("amount_cents", cents).Msg("create pix order success")
	return order, nil
}

func (u *PixPaymentUseCase) GetOrder(ctx context.Context, id string) (entities.PixOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PixOrder{}, ErrInvalidOrderID
	}
	if u.repo == nil {
		return entities.PixOrder{}, ErrPixOrderNotFound
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PixOrder{}, err
	}
	if o.ID == "" {
		return entities.PixOrder{}, ErrPixOrderNotFound
	}
	return o, nil
}

// RefreshStatus asks the gateway for the order status and stores it when the
// order is known locally. Unknown orders still get their status reported.
func (u *PixPaymentUseCase) RefreshStatus(ctx context.Context, id string) (entities.PixOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PixOrder{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return entities.PixOrder{}, domain.NewGatewayError("none", domain.GatewayReasonNotConfigured, 0, domain.ErrGatewayNotConfigured)
	}

	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	status, err := u.gateway.GetOrderStatus(callCtx, id)
	if err != nil {
		u.logger.Warn().Err(err).Str("order_id", id).Msg("status check failed")
		return entities.PixOrder{}, err
	}

	if u.repo != nil {
		updated, err := u.repo.UpdateStatus(ctx, id, status)
		if err != nil {
			u.logger.Error().Err(err).Str("order_id", id).Msg("pix order repository update failed")
		} else if updated.ID != "" {
			return updated, nil
		}
	}
	return entities.PixOrder{ID: id, Provider: u.gateway.Name(), Status: status}, nil
}

func (u *PixPaymentUseCase) ListByChatID(ctx context.Context, chatID int64) ([]entities.PixOrder, error) {
	if chatID == 0 {
		return nil, domain.NewValidationError("chat_id", "must not be empty")
	}
	if u.repo == nil {
		return nil, nil
	}
	return u.repo.ListByChatID(ctx, chatID)
}
