package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredAny passes when at least one of values is non-blank.
func RequiredAny(field string, values ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.ContainsFunc(values, func(v string) bool {
				return strings.TrimSpace(v) != ""
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        "at least one value is required",
			TranslationKey: "validation.required_any",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// AnyOf passes when predicate holds for at least one element.
func AnyOf[T any](field string, value []T, predicate func(T) bool, message string) Rule {
	return Rule{
		Check: func() bool {
			return slices.ContainsFunc(value, predicate)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.any_of",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// OneOfString passes for empty values too; pair it with RequiredString when
// the field is mandatory.
func OneOfString(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || slices.Contains(options, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": options,
			},
		},
	}
}

// HexColor validates a #RRGGBB color.
func HexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hexColorRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a hex color like #RRGGBB",
			TranslationKey: "validation.hex_color",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// URL validates an absolute http(s) or mailto/tel link. Empty values pass.
func URL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			if value == "" || value == "#" {
				return true
			}
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			switch u.Scheme {
			case "http", "https":
				return u.Host != ""
			case "mailto", "tel", "sms":
				return u.Opaque != "" || u.Path != ""
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid link",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail validates a plain address such as user@example.com.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != strings.TrimSpace(value) {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" || !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
