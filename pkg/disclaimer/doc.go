// Package disclaimer renders the legal disclaimer block of an offer.
//
// Depending on the offer's DisclaimerSettings the block shows the full text,
// a one line summary, or the summary with a client side "See Details"
// toggle that reveals the full text. Summaries name the vehicle and, when
// one can be found in the disclaimer, its expiration date.
package disclaimer
