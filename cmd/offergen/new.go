package main

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/logger"
	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/theme"
)

func newNewCmd(a *app) *cobra.Command {
	var (
		year, vehicleMake, model string
		layoutID, variation      string
		out                      string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print a new offer with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := offer.Layout(layoutID)
			if !slices.Contains(offer.Layouts(), l) {
				return fmt.Errorf("unknown layout %q", layoutID)
			}

			o := offer.Update(offer.New(),
				offer.SetVehicle(year, vehicleMake, model),
				offer.SetLayout(l),
				offer.SetVariation(variation),
			)

			if err := offer.Validate(o); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := offer.Encode(&buf, []offer.Offer{o}); err != nil {
				return err
			}
			a.logger.Debug("new offer", logger.OfferID(o.ID))
			return writeOutput(cmd.OutOrStdout(), out, buf.String())
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "model year")
	cmd.Flags().StringVar(&vehicleMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&model, "model", "", "vehicle model")
	cmd.Flags().StringVar(&layoutID, "layout", string(offer.LayoutAdaptiveAuto), "layout template id")
	cmd.Flags().StringVar(&variation, "variation", theme.Default, "color variation id")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
