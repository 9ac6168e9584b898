// Package render assembles complete, self-contained HTML documents for
// automotive offers.
//
// OfferHTML produces one document per offer: resolved colors and
// typography go into an embedded stylesheet, the layout and disclaimer
// fragments into the body, and a short inline script handles the pulsing
// call-to-action animation. MultipleOffersHTML wraps any number of offer
// documents in a collection shell stamped with the generation date.
//
// Rendering is pure. The same inputs always give the same bytes (apart from
// the collection date, which can be pinned with WithClock), nothing is
// cached, and the functions are safe for concurrent use. Invalid or missing
// input degrades to placeholders and defaults instead of failing.
//
// OfferComponent and CollectionComponent expose the same documents as
// templ components for hosts that stream HTML into a writer:
//
//	html, err := render.ToString(ctx, render.OfferComponent(o, "toyota", nil))
package render
