package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/offerkit/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []slug.Option
		want string
	}{
		{name: "make and model", in: "Mercedes-Benz C-Class", want: "mercedes-benz-c-class"},
		{name: "collapses punctuation", in: "  Toyota -- Camry!! ", want: "toyota-camry"},
		{name: "diacritics", in: "Škoda Citroën", want: "skoda-citroen"},
		{name: "empty", in: "!!!", want: ""},
		{name: "max length", in: "Chevrolet Silverado", opts: []slug.Option{slug.MaxLength(9)}, want: "chevrolet"},
		{name: "max length drops dangling separator", in: "Ford Mustang", opts: []slug.Option{slug.MaxLength(5)}, want: "ford"},
		{name: "custom separator", in: "Honda Civic", opts: []slug.Option{slug.Separator("_")}, want: "honda_civic"},
		{name: "keep case", in: "BMW X5", opts: []slug.Option{slug.Lowercase(false)}, want: "BMW-X5"},
		{name: "custom replace", in: "Sales & Service", opts: []slug.Option{slug.CustomReplace(map[string]string{"&": "and"})}, want: "sales-and-service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Make(tt.in, tt.opts...))
		})
	}
}
