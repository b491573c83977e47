// Package config loads the storefront configuration from defaults, an optional
// YAML file and the environment (PAGARME_SECRET_KEY overrides pagarme.secret_key).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pix_storefront/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	ProviderPagarme     = "pagarme"
	ProviderMercadoPago = "mercadopago"
	ProviderMock        = "mock"

	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

var (
	ErrMissingBotToken      = errors.New("missing telegram.token (TELEGRAM_TOKEN)")
	ErrMissingPagarmeKey    = errors.New("missing pagarme.secret_key (PAGARME_SECRET_KEY)")
	ErrMissingMercadoPagoAT = errors.New("missing mercadopago.access_token (MERCADOPAGO_ACCESS_TOKEN)")
)

type Config struct {
	Telegram    TelegramConfig    `mapstructure:"telegram"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Payment     PaymentConfig     `mapstructure:"payment"`
	Pagarme     PagarmeConfig     `mapstructure:"pagarme"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Customer    CustomerConfig    `mapstructure:"customer"`
	Storage     StorageConfig     `mapstructure:"storage"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Watcher     WatcherConfig     `mapstructure:"watcher"`
	Log         LogConfig         `mapstructure:"log"`

	Catalog *entities.Catalog `mapstructure:"-"`
}

type TelegramConfig struct {
	Token         string `mapstructure:"token"`
	Debug         bool   `mapstructure:"debug"`
	UpdateTimeout int    `mapstructure:"update_timeout"`
}

type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type PaymentConfig struct {
	Provider        string        `mapstructure:"provider"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PixExpiresIn    time.Duration `mapstructure:"pix_expires_in"`
	ItemDescription string        `mapstructure:"item_description"`
	ItemCode        string        `mapstructure:"item_code"`
}

type PagarmeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	BaseURL   string `mapstructure:"base_url"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	PayerEmail  string `mapstructure:"payer_email"`
}

// CustomerConfig is the payer sent with every PIX order. The bot has no
// customer registration, so a single configured customer is used.
type CustomerConfig struct {
	Name     string        `mapstructure:"name"`
	Email    string        `mapstructure:"email"`
	Document string        `mapstructure:"document"`
	Type     string        `mapstructure:"type"`
	Address  AddressConfig `mapstructure:"address"`
	Phone    PhoneConfig   `mapstructure:"phone"`
}

type AddressConfig struct {
	Line1   string `mapstructure:"line_1"`
	Line2   string `mapstructure:"line_2"`
	ZipCode string `mapstructure:"zip_code"`
	City    string `mapstructure:"city"`
	State   string `mapstructure:"state"`
	Country string `mapstructure:"country"`
}

type PhoneConfig struct {
	CountryCode string `mapstructure:"country_code"`
	AreaCode    string `mapstructure:"area_code"`
	Number      string `mapstructure:"number"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	OrdersTable     string `mapstructure:"orders_table"`
	CreateTable     bool   `mapstructure:"create_table"`
}

type WatcherConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type catalogEntry struct {
	ID    string      `mapstructure:"id"`
	Name  string      `mapstructure:"name"`
	Emoji string      `mapstructure:"emoji"`
	Tiers []tierEntry `mapstructure:"tiers"`
}

type tierEntry struct {
	Label string `mapstructure:"label"`
	Price string `mapstructure:"price"`
}

// SetDefaults registers every key so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 60)

	v.SetDefault("http.enabled", true)
	v.SetDefault("http.port", 3000)
	v.SetDefault("http.gin_mode", "release")

	v.SetDefault("payment.provider", ProviderPagarme)
	v.SetDefault("payment.timeout", 10*time.Second)
	v.SetDefault("payment.pix_expires_in", 2*time.Hour)
	v.SetDefault("payment.item_description", "Adição de Saldo")
	v.SetDefault("payment.item_code", "123")

	v.SetDefault("pagarme.secret_key", "")
	v.SetDefault("pagarme.base_url", "https://api.pagar.me/core/v5")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.payer_email", "")

	v.SetDefault("customer.name", "")
	v.SetDefault("customer.email", "")
	v.SetDefault("customer.document", "")
	v.SetDefault("customer.type", "individual")
	v.SetDefault("customer.address.line_1", "")
	v.SetDefault("customer.address.line_2", "")
	v.SetDefault("customer.address.zip_code", "")
	v.SetDefault("customer.address.city", "")
	v.SetDefault("customer.address.state", "")
	v.SetDefault("customer.address.country", "BR")
	v.SetDefault("customer.phone.country_code", "55")
	v.SetDefault("customer.phone.area_code", "")
	v.SetDefault("customer.phone.number", "")

	v.SetDefault("storage.driver", StorageMemory)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "")
	v.SetDefault("dynamodb.secret_access_key", "")
	v.SetDefault("dynamodb.orders_table", "pix_orders")
	v.SetDefault("dynamodb.create_table", false)

	v.SetDefault("watcher.enabled", true)
	v.SetDefault("watcher.schedule", "@every 15s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Bind wires environment variables into v: "payment.timeout" reads PAYMENT_TIMEOUT.
func Bind(v *viper.Viper) {
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes v into a Config. The catalog falls back to the built-in price
// table when the "catalog" key is absent.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Payment.Provider = strings.ToLower(strings.TrimSpace(cfg.Payment.Provider))
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Pagarme.BaseURL = strings.TrimRight(cfg.Pagarme.BaseURL, "/")

	catalog, err := loadCatalog(v)
	if err != nil {
		return nil, err
	}
	cfg.Catalog = catalog

	return &cfg, nil
}

func loadCatalog(v *viper.Viper) (*entities.Catalog, error) {
	if !v.IsSet("catalog") {
		return entities.DefaultCatalog(), nil
	}

	var entries []catalogEntry
	if err := v.UnmarshalKey("catalog", &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(entries) == 0 {
		return entities.DefaultCatalog(), nil
	}

	categories := make([]entities.Category, 0, len(entries))
	for _, e := range entries {
		cat := entities.Category{ID: e.ID, Name: e.Name, Emoji: e.Emoji}
		for _, t := range e.Tiers {
			price, err := decimal.NewFromString(strings.TrimSpace(t.Price))
			if err != nil {
				return nil, fmt.Errorf("%w: price %q of %s/%s: %v", entities.ErrInvalidCatalog, t.Price, e.ID, t.Label, err)
			}
			cat.Tiers = append(cat.Tiers, entities.Tier{Label: t.Label, Price: price})
		}
		categories = append(categories, cat)
	}
	return entities.NewCatalog(categories)
}

// Validate checks what every command needs: a known provider with its
// credentials and a known storage driver.
func (c *Config) Validate() error {
	var errs []error

	switch c.Payment.Provider {
	case ProviderPagarme:
		if strings.TrimSpace(c.Pagarme.SecretKey) == "" {
			errs = append(errs, ErrMissingPagarmeKey)
		}
	case ProviderMercadoPago:
		if strings.TrimSpace(c.MercadoPago.AccessToken) == "" {
			errs = append(errs, ErrMissingMercadoPagoAT)
		}
	case ProviderMock:
	default:
		errs = append(errs, fmt.Errorf("unknown payment.provider %q", c.Payment.Provider))
	}

	switch c.Storage.Driver {
	case StorageMemory, StorageDynamoDB:
	default:
		errs = append(errs, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver))
	}

	if c.Payment.Timeout <= 0 {
		errs = append(errs, errors.New("payment.timeout must be positive"))
	}
	if c.Payment.PixExpiresIn < time.Second {
		errs = append(errs, errors.New("payment.pix_expires_in must be at least 1s"))
	}

	return errors.Join(errs...)
}

// ValidateBot additionally requires the Telegram token.
func (c *Config) ValidateBot() error {
	err := c.Validate()
	if strings.TrimSpace(c.Telegram.Token) == "" {
		err = errors.Join(err, ErrMissingBotToken)
	}
	return err
}
