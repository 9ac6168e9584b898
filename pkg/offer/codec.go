package offer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/offerkit/pkg/sanitizer"
)

// document is the file form: a top level "offers" list.
type document struct {
	Offers []Offer `json:"offers" yaml:"offers"`
}

// UnmarshalYAML fills omitted fields with the default settings.
func (s *DisclaimerSettings) UnmarshalYAML(value *yaml.Node) error {
	type plain DisclaimerSettings
	p := plain(DefaultDisclaimerSettings())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = DisclaimerSettings(p)
	return nil
}

// UnmarshalJSON fills omitted fields with the default settings.
func (s *DisclaimerSettings) UnmarshalJSON(data []byte) error {
	type plain DisclaimerSettings
	p := plain(DefaultDisclaimerSettings())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = DisclaimerSettings(p)
	return nil
}

// Decode reads offers from YAML or JSON. The document may be a list of
// offers, a mapping with an "offers" list, or a single offer.
func Decode(r io.Reader) ([]Offer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoOffers
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var offers []Offer
	switch {
	case node.Kind == yaml.SequenceNode:
		err = node.Decode(&offers)
	case node.Kind == yaml.MappingNode && hasKey(node, "offers"):
		var doc document
		err = node.Decode(&doc)
		offers = doc.Offers
	case node.Kind == yaml.MappingNode:
		var o Offer
		err = node.Decode(&o)
		offers = []Offer{o}
	default:
		err = fmt.Errorf("unexpected document of kind %d", node.Kind)
	}
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if len(offers) == 0 {
		return nil, ErrNoOffers
	}

	for i := range offers {
		offers[i] = normalize(offers[i])
	}
	return offers, nil
}

// LoadFile decodes the offers stored at path.
func LoadFile(path string) ([]Offer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	defer f.Close()

	offers, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return offers, nil
}

// Encode writes offers as a YAML document with a top level "offers" list.
func Encode(w io.Writer, offers []Offer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Offers: offers}); err != nil {
		return errors.Join(ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

var cleanField = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)

// normalize assigns missing ids and cleans the single line descriptors.
func normalize(o Offer) Offer {
	if o.ID = sanitizer.Trim(o.ID); o.ID == "" {
		o.ID = NewID()
	}
	for _, p := range []*string{&o.ModelYear, &o.Make, &o.Model, &o.Price, &o.APR, &o.APRCash} {
		*p = cleanField(*p)
	}

	seen := make(map[string]bool, len(o.CTAButtons))
	for i := range o.CTAButtons {
		b := &o.CTAButtons[i]
		if b.ID == "" || seen[b.ID] {
			b.ID = NewID()
		}
		seen[b.ID] = true
	}
	return o
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
