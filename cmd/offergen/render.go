package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/logger"
	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		index     int
		variation string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render one offer or the whole collection to HTML",
		Long: `Render prints the HTML document for the offer at --index, or a collection
document with every offer when --index is negative. The color variation
comes from the first rendered offer unless --variation is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := loadOffers(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			selected, err := pick(offers, index)
			if err != nil {
				return err
			}

			lead := selected[0]
			if variation != "" {
				lead = offer.Update(lead, offer.SetVariation(variation))
			}
			variationID, custom := lead.Variation()

			var html string
			if index >= 0 {
				html = render.OfferHTML(selected[0], variationID, custom)
			} else {
				html = render.MultipleOffersHTML(selected, variationID, custom,
					render.WithClock(a.now),
					render.WithLocale(a.locale),
				)
			}

			a.logger.Debug("rendered",
				logger.Variation(variationID),
				logger.Count(len(selected)),
			)
			return writeOutput(cmd.OutOrStdout(), out, html)
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", -1, "offer index; negative renders the collection")
	cmd.Flags().StringVar(&variation, "variation", "", "override the color variation")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
