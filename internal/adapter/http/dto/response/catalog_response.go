package response

import "pix_storefront/internal/domain/entities"

type TierResponse struct {
	Label        string `json:"label" example:"1K"`
	Price        string `json:"price" example:"180.00"`
	PriceDisplay string `json:"price_display" example:"R$ 180.00"`
}

type CategoryResponse struct {
	ID    string         `json:"id" example:"Fibrada"`
	Name  string         `json:"name" example:"Fibrada"`
	Emoji string         `json:"emoji,omitempty"`
	Tiers []TierResponse `json:"tiers"`
}

type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromCatalog keeps the catalog's declaration order.
func FromCatalog(c *entities.Catalog) CatalogResponse {
	cats := c.ListCategories()
	res := CatalogResponse{Categories: make([]CategoryResponse, 0, len(cats))}
	for _, cat := range cats {
		item := CategoryResponse{
			ID:    cat.ID,
			Name:  cat.DisplayName(),
			Emoji: cat.Emoji,
			Tiers: make([]TierResponse, 0, len(cat.Tiers)),
		}
		for _, t := range cat.Tiers {
			item.Tiers = append(item.Tiers, TierResponse{
				Label:        t.Label,
				Price:        t.Price.StringFixed(2),
				PriceDisplay: entities.FormatBRL(t.Price),
			})
		}
		res.Categories = append(res.Categories, item)
	}
	return res
}
