package routes

import (
	"pix_storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPix     = "/pix"
	PathCatalog = "/catalog"

	PathLegacyCreate = "/gerar-qrcode"
	PathLegacyStatus = "/verificar-status"
)

func addPixRoutes(rg *gin.RouterGroup, h *handlers.PixHandler) {
	pix := rg.Group(PathPix)
	{
		pix.POST("/qrcode", h.CreateQRCode)
		pix.GET("/orders/:order_id", h.GetOrder)
		pix.GET("/orders/:order_id/status", h.GetStatus)
		pix.GET("/chats/:chat_id/orders", h.ListByChat)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	rg.GET(PathCatalog, h.GetCatalog)
}

// addLegacyRoutes keeps the paths of the first storefront server.
func addLegacyRoutes(r *gin.Engine, h *handlers.PixHandler) {
	r.POST(PathLegacyCreate, h.CreateQRCodeLegacy)
	r.GET(PathLegacyStatus, h.GetStatusLegacy)
}
