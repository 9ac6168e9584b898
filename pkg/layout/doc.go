// Package layout arranges an offer's price, APR and bonus cash into the
// offer-details fragment of the generated document.
//
// Five strategies are available, selected by the offer's LayoutTemplate.
// Unknown or empty ids use the adaptive strategy, which picks an arrangement
// from how many of the three fields are filled in. Field values are display
// text and are never parsed.
package layout
