package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/offerkit/pkg/logger"
	"github.com/dmitrymomot/offerkit/pkg/offer"
	"github.com/dmitrymomot/offerkit/pkg/validator"
)

// errIncomplete makes validate exit non-zero.
var errIncomplete = errors.New("some offers are not ready for download")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check offers for missing fields and invalid settings",
		Long: `Validate reports, per offer, the fields that must be filled in before the
offer can be downloaded, plus any structural problems such as unknown
layouts, malformed colors or unsafe links. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offers, err := loadOffers(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := 0
			for i, o := range offers {
				v := offer.ValidateForDownload(o)
				structural := validator.ExtractValidationErrors(offer.Validate(o))

				label := fmt.Sprintf("[%d] %s", i, describe(o))
				if v.IsValid && len(structural) == 0 {
					fmt.Fprintf(w, "%s %s\n", green("✓"), label)
					continue
				}

				failed++
				fmt.Fprintf(w, "%s %s\n", red("✗"), bold(label))
				if len(v.MissingFields) > 0 {
					fmt.Fprintf(w, "    missing: %s\n", yellow(strings.Join(v.MissingFields, ", ")))
				}
				for _, e := range structural {
					fmt.Fprintf(w, "    %s: %s\n", e.Field, yellow(e.Message))
				}
				a.logger.Debug("offer failed validation", logger.OfferID(o.ID), logger.Missing(v.MissingFields))
			}

			fmt.Fprintf(w, "\n%d of %d offers ready\n", len(offers)-failed, len(offers))
			if failed > 0 {
				return errIncomplete
			}
			return nil
		},
	}
}

// describe names an offer for reports.
func describe(o offer.Offer) string {
	if name := strings.Join(strings.Fields(o.Vehicle().String()), " "); name != "" {
		return name
	}
	return "untitled offer " + o.ID
}
