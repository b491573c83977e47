package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "pix_storefront/docs"
	"pix_storefront/internal/config"
	"pix_storefront/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title           PIX Storefront API
// @version         1.0
// @description     Auxiliary HTTP API of the Telegram PIX storefront: catalog, PIX orders and status checks.

// @host localhost:3000

// @BasePath  /v1

var (
	cfgFile string
	version = "dev"
	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storebot",
		Short: "🛍️ Telegram storefront that sells catalog items paid with PIX",
		Long: `storebot runs a Telegram bot that walks buyers through a fixed catalog,
issues PIX charges through Pagar.me or Mercado Pago and follows them until paid.

Configuration comes from an optional YAML file, a .env file and environment
variables such as TELEGRAM_TOKEN and PAGARME_SECRET_KEY.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	cmd.PersistentFlags().String("provider", "", "payment provider (pagarme, mercadopago, mock)")

	_ = viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("payment.provider", cmd.PersistentFlags().Lookup("provider"))

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(apiCmd())
	cmd.AddCommand(catalogCmd())
	cmd.AddCommand(pixCmd())
	cmd.AddCommand(statusCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	v := viper.GetViper()
	config.Bind(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logging.Setup(v.GetString("log.level"), v.GetString("log.format"))
	return nil
}

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}
