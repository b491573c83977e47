package entities

import (
	"errors"
	"fmt"
	"strings"

	"pix_storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// CallbackSeparator splits the parts of inline keyboard callback data, so it may not
// appear inside category ids or tier labels.
const CallbackSeparator = "_"

// maxCallbackData is Telegram's limit for callback_data.
const maxCallbackData = 64

var (
	ErrCategoryNotFound = fmt.Errorf("category %w", domain.ErrNotFound)
	ErrTierNotFound     = fmt.Errorf("quantity tier %w", domain.ErrNotFound)
	ErrInvalidCatalog   = errors.New("invalid catalog")
)

// Tier is a fixed purchase quantity (e.g. "1K") and its price.
type Tier struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Category groups the tiers of one product line.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
	Tiers []Tier `json:"tiers"`
}

// DisplayName falls back to the id when no name was configured.
func (c Category) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Catalog is immutable after NewCatalog and safe for concurrent readers.
// Category and tier order is the declaration order and drives button order.
type Catalog struct {
	categories []Category
	index      map[string]int
}

func NewCatalog(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		if err := validateCategory(cat); err != nil {
			return nil, err
		}
		if _, dup := c.index[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, cat.ID)
		}
		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, copyCategory(cat))
	}
	return c, nil
}

func validateCategory(cat Category) error {
	if strings.TrimSpace(cat.ID) == "" {
		return fmt.Errorf("%w: empty category id", ErrInvalidCatalog)
	}
	if strings.Contains(cat.ID, CallbackSeparator) {
		return fmt.Errorf("%w: category id %q contains %q", ErrInvalidCatalog, cat.ID, CallbackSeparator)
	}
	if len(cat.Tiers) == 0 {
		return fmt.Errorf("%w: category %q has no tiers", ErrInvalidCatalog, cat.ID)
	}

	seen := make(map[string]struct{}, len(cat.Tiers))
	for _, t := range cat.Tiers {
		if strings.TrimSpace(t.Label) == "" || strings.Contains(t.Label, CallbackSeparator) {
			return fmt.Errorf("%w: invalid tier label %q in %q", ErrInvalidCatalog, t.Label, cat.ID)
		}
		if _, dup := seen[t.Label]; dup {
			return fmt.Errorf("%w: duplicate tier %q in %q", ErrInvalidCatalog, t.Label, cat.ID)
		}
		seen[t.Label] = struct{}{}

		if !t.Price.IsPositive() {
			return fmt.Errorf("%w: price of %s/%s must be positive", ErrInvalidCatalog, cat.ID, t.Label)
		}
		if !t.Price.Equal(t.Price.Round(2)) {
			return fmt.Errorf("%w: price of %s/%s has more than two decimals", ErrInvalidCatalog, cat.ID, t.Label)
		}
		if len(QuantityCallbackData(cat.ID, t.Label)) > maxCallbackData {
			return fmt.Errorf("%w: callback data for %s/%s is too long", ErrInvalidCatalog, cat.ID, t.Label)
		}
	}
	return nil
}

func copyCategory(cat Category) Category {
	out := cat
	out.Tiers = append([]Tier(nil), cat.Tiers...)
	return out
}

// PriceOf resolves the price of tier within category.
func (c *Catalog) PriceOf(categoryID, tier string) (decimal.Decimal, error) {
	cat, ok := c.Category(categoryID)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID)
	}
	for _, t := range cat.Tiers {
		if t.Label == tier {
			return t.Price, nil
		}
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %q in %q", ErrTierNotFound, tier, categoryID)
}

func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return copyCategory(c.categories[i]), true
}

func (c *Catalog) ListCategories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = copyCategory(cat)
	}
	return out
}

func (c *Catalog) ListQuantities(categoryID string) ([]Tier, error) {
	cat, ok := c.Category(categoryID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID)
	}
	return cat.Tiers, nil
}

// CategoryCallbackData is the payload of a category button, e.g. "category_FKI".
func CategoryCallbackData(categoryID string) string {
	return "category" + CallbackSeparator + categoryID
}

// QuantityCallbackData is the payload of a tier button, e.g. "quantity_FKI_2K".
// It carries the category so a press can be checked against the conversation.
func QuantityCallbackData(categoryID, tier string) string {
	return "quantity" + CallbackSeparator + categoryID + CallbackSeparator + tier
}

// DefaultCatalog is the storefront's built-in price table.
func DefaultCatalog() *Catalog {
	tiers := func(prices ...int64) []Tier {
		out := make([]Tier, len(prices))
		for i, p := range prices {
			out[i] = Tier{Label: fmt.Sprintf("%dK", i+1), Price: decimal.NewFromInt(p)}
		}
		return out
	}

	c, err := NewCatalog([]Category{
		{ID: "Fibrada", Name: "Fibrada", Emoji: "🟡", Tiers: tiers(180, 360, 540, 720)},
		{ID: "FKI", Name: "FKI", Emoji: "🟢", Tiers: tiers(250, 500, 750, 1000)},
		{ID: "GameOn", Name: "Game On", Emoji: "🟣", Tiers: tiers(280, 560, 840, 1120)},
	})
	if err != nil {
		panic(err)
	}
	return c
}
