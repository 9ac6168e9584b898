// Package theme holds the static color variation catalog and resolves the
// palette an offer document is painted with.
//
// The catalog (classic, one entry per supported brand, seasonal themes and
// custom) is built once at package init and never mutated; accessors hand
// out copies. Resolve never fails: unknown ids fall back to the classic
// variation.
//
//	p := theme.Resolve("honda", nil)
//	p.CTA        // "#0066CC"
//	p.Background // "#f8f8f8"
package theme
