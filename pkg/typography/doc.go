// Package typography maps symbolic font sizes and weights to CSS values.
//
// Offers carry per-element Settings (header, price, description, call to
// action). Resolve turns them into pixel sizes and numeric weights; unknown
// symbols degrade to the element's default instead of failing.
package typography
