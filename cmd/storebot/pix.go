package main

import (
	"fmt"
	"io"

	"pix_storefront/internal/app"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/qrcode"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func pixCmd() *cobra.Command {
	var (
		amount      string
		description string
		noQR        bool
	)

	cmd := &cobra.Command{
		Use:   "pix",
		Short: "Create a PIX order and print its copy-and-paste code",
		Example: `  storebot pix --amount 180.00
  storebot pix --amount 250 --provider mock`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			order, err := a.Payments.CreatePixOrder(cmd.Context(), entities.PixOrderRequest{Amount: value, Description: description})
			if err != nil {
				return err
			}
			return printPixOrder(cmd.OutOrStdout(), order, !noQR)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount in BRL, e.g. 180.00")
	cmd.Flags().StringVar(&description, "description", "", "item description sent to the provider")
	cmd.Flags().BoolVar(&noQR, "no-qr", false, "do not draw the QR code in the terminal")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func printPixOrder(out io.Writer, order entities.PixOrder, drawQR bool) error {
	fmt.Fprintf(out, "Pedido:  %s\n", order.ID)
	fmt.Fprintf(out, "Valor:   %s\n", entities.FormatBRL(order.Amount))
	fmt.Fprintf(out, "Status:  %s\n", order.Status)
	fmt.Fprintf(out, "Expira:  %s\n\n", order.ExpiresAt.Format("02/01/2006 15:04"))
	fmt.Fprintln(out, order.QRCode)

	if !drawQR {
		return nil
	}
	art, err := qrcode.Terminal(order.QRCode)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, art)
	return nil
}
