// Package validator builds validation from small, declarative rules.
//
// A Rule pairs a check with the ValidationError reported when the check fails.
// Apply evaluates every rule and returns ValidationErrors (never a partial
// result) so callers see all problems at once:
//
//	err := validator.Apply(
//	    validator.RequiredString("make", o.Make),
//	    validator.HexColor("customColors.cta", colors.CTA),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs.Has("make") {
//	    // ...
//	}
//
// Each error carries a translation key and values so a UI layer can render
// its own copy.
package validator
