package main

import (
	"pix_storefront/internal/app"
	"pix_storefront/internal/infrastructure/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot, the payment watcher and the HTTP API",
		Long: `Start long polling against the Bot API. The HTTP API listens on http.port
unless --no-http is given. Stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			logger := logging.Component("cli")
			logger.Info().Str("version", version).Bool("http", cfg.HTTP.Enabled).Bool("watcher", cfg.Watcher.Enabled).Msg("storebot starting")
			if err := a.Serve(cmd.Context()); err != nil {
				return err
			}
			logger.Info().Msg("storebot stopped")
			return nil
		},
	}

	cmd.Flags().Bool("no-http", false, "disable the HTTP API")
	cmd.Flags().Int("port", 3000, "HTTP API port")
	cmd.Flags().Bool("no-watcher", false, "do not follow issued PIX orders")
	_ = viper.BindPFlag("http.port", cmd.Flags().Lookup("port"))
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		if off, _ := cmd.Flags().GetBool("no-http"); off {
			viper.Set("http.enabled", false)
		}
		if off, _ := cmd.Flags().GetBool("no-watcher"); off {
			viper.Set("watcher.enabled", false)
		}
	}
	return cmd
}

func apiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Run only the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.ServeHTTP(cmd.Context())
		},
	}
}
