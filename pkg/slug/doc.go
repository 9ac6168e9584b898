// Package slug converts free text (vehicle makes, models, custom export
// names) into file and URL safe identifiers.
//
//	slug.Make("Mercedes-Benz C-Class")        // "mercedes-benz-c-class"
//	slug.Make("Škoda Octavia", slug.MaxLength(5)) // "skoda"
//
// Latin diacritics are folded to ASCII; every other non alphanumeric run
// collapses into one separator.
package slug
