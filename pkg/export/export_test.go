package export_test

import (
	"time"

	"github.com/dmitrymomot/offerkit/pkg/offer"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 4, 14, 5, 9, 0, time.UTC)
}

func civic() offer.Offer {
	o := offer.New()
	return offer.Update(o,
		offer.SetVehicle("2025", "Honda", "Civic"),
		offer.SetPricing("$299", "2.9%", "$500"),
		offer.SetDisclaimer("Offer expires 12/31/2025."),
		offer.UpdateCTAButton(o.CTAButtons[0].ID, func(b *offer.CTAButton) { b.Link = "https://dealer.example.com" }),
		offer.SetDealer("Springfield Honda", "Springfield, IL"),
		offer.SetVariation("honda"),
	)
}
