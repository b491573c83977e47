package handlers

import (
	"net/http"

	response "pix_storefront/internal/adapter/http/dto/response"
	"pix_storefront/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *entities.Catalog
}

func NewCatalogHandler(catalog *entities.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog godoc
// @Summary      List categories, quantity tiers and prices
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CatalogResponse
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}
