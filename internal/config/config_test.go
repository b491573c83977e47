package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pix_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	Bind(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, ProviderPagarme, cfg.Payment.Provider)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Payment.PixExpiresIn)
	assert.Equal(t, "Adição de Saldo", cfg.Payment.ItemDescription)
	assert.Equal(t, "https://api.pagar.me/core/v5", cfg.Pagarme.BaseURL)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "pix_orders", cfg.DynamoDB.OrdersTable)
	assert.Equal(t, "@every 15s", cfg.Watcher.Schedule)
	assert.Equal(t, 3000, cfg.HTTP.Port)

	require.NotNil(t, cfg.Catalog)
	price, err := cfg.Catalog.PriceOf("FKI", "2K")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(500)))
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER", "MercadoPago")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("PAYMENT_TIMEOUT", "3s")
	t.Setenv("PAGARME_BASE_URL", "http://localhost:9999/core/v5/")
	t.Setenv("TELEGRAM_TOKEN", "bot-token")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, ProviderMercadoPago, cfg.Payment.Provider)
	assert.Equal(t, "TEST-123", cfg.MercadoPago.AccessToken)
	assert.Equal(t, 3*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, "http://localhost:9999/core/v5", cfg.Pagarme.BaseURL)
	assert.NoError(t, cfg.ValidateBot())
}

func TestLoad_CatalogFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
catalog:
  - id: Basic
    name: Basic Pack
    tiers:
      - label: 1K
        price: "10.50"
      - label: 2K
        price: "21"
  - id: Pro
    tiers:
      - label: 1K
        price: "99.99"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	cats := cfg.Catalog.ListCategories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Basic", cats[0].ID)
	assert.Equal(t, "Pro", cats[1].ID)

	price, err := cfg.Catalog.PriceOf("Basic", "1K")
	require.NoError(t, err)
	assert.Equal(t, "10.50", price.StringFixed(2))
}

func TestLoad_InvalidCatalog(t *testing.T) {
	v := newViper(t)
	v.Set("catalog", []map[string]any{
		{"id": "Bad", "tiers": []map[string]any{{"label": "1K", "price": "abc"}}},
	})

	_, err := Load(v)
	require.ErrorIs(t, err, entities.ErrInvalidCatalog)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("pagarme without key", func(t *testing.T) {
		cfg, err := Load(newViper(t))
		require.NoError(t, err)
		assert.ErrorIs(t, cfg.Validate(), ErrMissingPagarmeKey)
	})

	t.Run("mock provider needs no credentials", func(t *testing.T) {
		v := newViper(t)
		v.Set("payment.provider", "mock")
		cfg, err := Load(v)
		require.NoError(t, err)
		assert.NoError(t, cfg.Validate())
		assert.ErrorIs(t, cfg.ValidateBot(), ErrMissingBotToken)
	})

	t.Run("unknown provider and driver", func(t *testing.T) {
		v := newViper(t)
		v.Set("payment.provider", "paypal")
		v.Set("storage.driver", "redis")
		cfg, err := Load(v)
		require.NoError(t, err)

		err = cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown payment.provider "paypal"`)
		assert.Contains(t, err.Error(), `unknown storage.driver "redis"`)
	})
}
