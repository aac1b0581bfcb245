package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindCommercialPrint   Kind = "commercial_print"
	KindFoldingCarton     Kind = "folding_carton"
	KindFlexiblePackaging Kind = "flexible_packaging"
	KindRollLabel         Kind = "roll_label"
)

var ErrUnknownKind = errors.New("unknown product kind")

func Kinds() []Kind {
	return []Kind{KindCommercialPrint, KindFoldingCarton, KindFlexiblePackaging, KindRollLabel}
}

// Config is one product family's configuration. Each family carries only
// the attributes its form collects.
type Config interface {
	Kind() Kind
	ProductType() string
	Specifications() []Spec
}

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (s Spec) String() string {
	return s.Label + ": " + s.Value
}

// Envelope is the wire form of a Config: {"kind": "...", "config": {...}}.
// An object without "kind" is read as a flat CommercialPrint config.
type Envelope struct {
	Config Config
}

type envelopeJSON struct {
	Kind   Kind            `json:"kind"`
	Config json.RawMessage `json:"config"`
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Config == nil {
		return []byte("null"), nil
	}
	raw, err := json.Marshal(e.Config)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelopeJSON{Kind: e.Config.Kind(), Config: raw})
}

func (e *Envelope) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.Config = nil
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if _, ok := fields["kind"]; !ok {
		// Browser history records carry the print form's fields directly.
		cfg, err := Decode(KindCommercialPrint, data)
		if err != nil {
			return err
		}
		e.Config = cfg
		return nil
	}
	var env envelopeJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	cfg, err := Decode(env.Kind, env.Config)
	if err != nil {
		return err
	}
	e.Config = cfg
	return nil
}

// Decode builds the variant for kind. Fields missing from raw keep the form
// defaults.
func Decode(kind Kind, raw json.RawMessage) (Config, error) {
	cfg, err := Defaults(kind)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return cfg, nil
	}
	switch c := cfg.(type) {
	case *CommercialPrint:
		err = json.Unmarshal(raw, c)
	case *FoldingCarton:
		err = json.Unmarshal(raw, c)
	case *FlexiblePackaging:
		err = json.Unmarshal(raw, c)
		if err == nil {
			err = c.normalize()
		}
	case *RollLabel:
		err = json.Unmarshal(raw, c)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s config: %w", kind, err)
	}
	return cfg, nil
}

func Defaults(kind Kind) (Config, error) {
	switch kind {
	case KindCommercialPrint:
		return DefaultCommercialPrint(), nil
	case KindFoldingCarton:
		return DefaultFoldingCarton(), nil
	case KindFlexiblePackaging:
		return DefaultFlexiblePackaging(), nil
	case KindRollLabel:
		return DefaultRollLabel(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Summary is the one-line "type - size - material - printing" form.
func Summary(c Config) string {
	if c == nil {
		return ""
	}
	parts := []string{display(c.ProductType())}
	for _, s := range c.Specifications() {
		switch s.Label {
		case "Size", "Material", "Printing":
			parts = append(parts, s.Value)
		}
	}
	return strings.Join(parts, " - ")
}

var blankValues = map[string]bool{
	"":              true,
	"0":             true,
	"None":          true,
	"Other":         true,
	"No_Coating":    true,
	"No_Lamination": true,
}

func isBlank(v string) bool {
	return blankValues[strings.TrimSpace(v)]
}

func display(v string) string {
	return strings.ReplaceAll(strings.TrimSpace(v), "_", " ")
}

type specs []Spec

func (s *specs) add(label, value string) {
	if isBlank(value) {
		return
	}
	*s = append(*s, Spec{Label: label, Value: display(value)})
}

func (s *specs) addf(label, format, value string) {
	if isBlank(value) {
		return
	}
	*s = append(*s, Spec{Label: label, Value: fmt.Sprintf(format, display(value))})
}
