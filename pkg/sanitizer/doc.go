// Package sanitizer provides small, composable string transforms used to clean
// user supplied offer copy before it is stored in a record or written to a
// file name.
//
// Every helper is a func(string) string so transforms can be chained with
// Apply or stored as a reusable pipeline with Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)
//	make := clean("  Toyota\x00 ") // "Toyota"
//
// None of the helpers returns an error. Invalid input always degrades to a
// safe result.
package sanitizer
