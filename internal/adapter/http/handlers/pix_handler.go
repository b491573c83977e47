package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "pix_storefront/internal/adapter/http/dto/request"
	response "pix_storefront/internal/adapter/http/dto/response"
	"pix_storefront/internal/domain"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/usecase"
	"pix_storefront/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var errInvalidPixPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Valor inválido ou não informado", http.StatusBadRequest)

// PixHandler exposes PIX order creation and status checks over HTTP.
type PixHandler struct {
	usecase usecase.IPixPaymentUseCase
	logger  zerolog.Logger
}

func NewPixHandler(uc usecase.IPixPaymentUseCase) *PixHandler {
	return &PixHandler{usecase: uc, logger: logging.Component("http")}
}

// CreateQRCode godoc
// @Summary      Create a PIX order
// @Tags         pix
// @Accept       json
// @Produce      json
// @Param        body  body      request.PixQRCodeRequest  true  "Amount in BRL"
// @Success      200   {object}  response.PixOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Failure      504   {object}  pkg.HTTPError
// @Router       /pix/qrcode [post]
func (h *PixHandler) CreateQRCode(c *gin.Context) {
	order, ok := h.createOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromPixOrder(order))
}

// CreateQRCodeLegacy answers POST /gerar-qrcode with the provider's own JSON.
func (h *PixHandler) CreateQRCodeLegacy(c *gin.Context) {
	order, ok := h.createOrder(c)
	if !ok {
		return
	}
	if len(order.ProviderPayloadRaw) == 0 {
		c.JSON(http.StatusOK, response.FromPixOrder(order))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", order.ProviderPayloadRaw)
}

func (h *PixHandler) createOrder(c *gin.Context) (entities.PixOrder, bool) {
	var payload request.PixQRCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Info().Err(err).Msg("invalid pix payload")
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return entities.PixOrder{}, false
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return entities.PixOrder{}, false
	}

	order, err := h.usecase.CreatePixOrder(c.Request.Context(), entities.PixOrderRequest{
		ChatID:      payload.ChatID,
		Amount:      amount,
		Description: payload.Descricao,
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("amount", amount.StringFixed(2)).Msg("create pix order failed")
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.PixOrder{}, false
	}
	return order, true
}

// GetOrder godoc
// @Summary      Get a stored PIX order
// @Tags         pix
// @Produce      json
// @Param        order_id  path      string  true  "Provider order id"
// @Success      200       {object}  response.PixOrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /pix/orders/{order_id} [get]
func (h *PixHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixOrder(order))
}

// GetStatus godoc
// @Summary      Refresh the status of a PIX order from the provider
// @Tags         pix
// @Produce      json
// @Param        order_id  path      string  true  "Provider order id"
// @Success      200       {object}  response.PixStatusResponse
// @Failure      502       {object}  pkg.HTTPError
// @Router       /pix/orders/{order_id}/status [get]
func (h *PixHandler) GetStatus(c *gin.Context) {
	h.status(c, c.Param("order_id"))
}

// GetStatusLegacy answers GET /verificar-status?orderId=.
func (h *PixHandler) GetStatusLegacy(c *gin.Context) {
	h.status(c, c.Query("orderId"))
}

func (h *PixHandler) status(c *gin.Context, orderID string) {
	order, err := h.usecase.RefreshStatus(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Warn().Err(err).Str("order_id", orderID).Msg("status check failed")
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixStatus(order))
}

// ListByChat godoc
// @Summary      List the PIX orders issued to a chat
// @Tags         pix
// @Produce      json
// @Param        chat_id  path      int  true  "Telegram chat id"
// @Success      200      {array}   response.PixOrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pix/chats/{chat_id}/orders [get]
func (h *PixHandler) ListByChat(c *gin.Context) {
	chatID, err := strconv.ParseInt(strings.TrimSpace(c.Param("chat_id")), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid chat_id", http.StatusBadRequest).ToHTTPError())
		return
	}
	orders, err := h.usecase.ListByChatID(c.Request.Context(), chatID)
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPixOrders(orders))
}

func mapPixError(err error) *pkg.AppError {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) || errors.Is(err, usecase.ErrInvalidOrderID) {
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	}
	if errors.Is(err, usecase.ErrPixOrderNotFound) {
		return pkg.NewDomainErrorSimple("PIX_ORDER_NOT_FOUND", "PIX order not found", http.StatusNotFound)
	}
	if gwErr, ok := domain.IsGatewayError(err); ok {
		switch gwErr.Reason {
		case domain.GatewayReasonTimeout:
			return pkg.NewDomainError("PAYMENT_PROVIDER_TIMEOUT", "Erro ao gerar o PIX", err, http.StatusGatewayTimeout)
		case domain.GatewayReasonNotConfigured:
			return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", err, http.StatusServiceUnavailable)
		case domain.GatewayReasonHTTPStatus:
			if gwErr.StatusCode == http.StatusNotFound {
				return pkg.NewDomainError("PIX_ORDER_NOT_FOUND", "PIX order not found", err, http.StatusNotFound)
			}
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Erro ao gerar o PIX", err, http.StatusBadGateway)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
