package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/logger"
	"github.com/dmitrymomot/offerkit/pkg/qrcode"
)

func newQRCmd(a *app) *cobra.Command {
	var (
		index int
		size  int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "qr <file>",
		Short: "Write a QR code PNG for an offer's call to action link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := loadOffers(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			selected, err := pick(offers, index)
			if err != nil {
				return err
			}

			png, err := qrcode.ForOffer(selected[0], qrcode.WithSize(size))
			if err != nil {
				return err
			}
			a.logger.Debug("qr code generated", logger.OfferID(selected[0].ID), logger.File(out))
			return os.WriteFile(out, png, 0o644)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", 0, "offer index")
	cmd.Flags().IntVar(&size, "size", qrcode.DefaultSize, "image edge in pixels")
	cmd.Flags().StringVarP(&out, "out", "o", "offer-qr.png", "output file")
	return cmd
}
