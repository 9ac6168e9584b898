// Package offer defines the offer record the generation engine renders and
// the operations collaborators perform on it.
//
// Records are values. Every edit goes through Update, which copies the
// record (including its slices and nested settings) and applies explicit
// Change functions, so a record handed to the renderer is never modified
// behind its back:
//
//	o := offer.New()
//	o = offer.Update(o,
//	    offer.SetVehicle("2025", "Toyota", "Camry"),
//	    offer.SetPricing("$299", "2.9%", ""),
//	    offer.SetDisclaimer("Offer expires 12/31/2025."),
//	)
//	if v := offer.ValidateForDownload(o); !v.IsValid {
//	    fmt.Println("missing:", v.MissingFields)
//	}
//
// Decode and LoadFile read offers from YAML or JSON documents and fill in the
// identifiers and defaults a hand written file usually omits.
package offer
