package propertychecker

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/message"

	"github.com/opencatalog/propcheck/rdf"
)

func init() {
	registrations := []*component.PayloadRegistration{
		{
			Domain:      "dataset",
			Category:    "harvested",
			Version:     "v1",
			Description: "Harvested dataset graph awaiting quality assessment",
			Factory:     func() any { return &HarvestPayload{} },
		},
		{
			Domain:      "mqa",
			Category:    "properties-checked",
			Version:     "v1",
			Description: "Quality measurement graph produced by the property checker",
			Factory:     func() any { return &ResultPayload{} },
		},
	}
	for _, reg := range registrations {
		if err := component.RegisterPayload(reg); err != nil {
			panic("failed to register payload: " + err.Error())
		}
	}
}

// HarvestedType is the message type for harvested dataset payloads.
var HarvestedType = message.Type{Domain: "dataset", Category: "harvested", Version: "v1"}

// PropertiesCheckedType is the message type for assessment result payloads.
var PropertiesCheckedType = message.Type{Domain: "mqa", Category: "properties-checked", Version: "v1"}

// WireTerm is the JSON form of one RDF term.
type WireTerm struct {
	Kind     string `json:"kind"` // iri, blank, literal
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// WireTriple is the JSON form of one RDF triple.
type WireTriple struct {
	Subject   WireTerm `json:"subject"`
	Predicate string   `json:"predicate"`
	Object    WireTerm `json:"object"`
}

// ToTerm converts a wire term to its in-memory form. Unknown kinds decode
// as IRIs so dirty input degrades to an unsatisfiable resource rather
// than an error.
func (w WireTerm) ToTerm() rdf.Term {
	switch w.Kind {
	case "blank":
		return rdf.NewBlank(w.Value)
	case "literal":
		switch {
		case w.Lang != "":
			return rdf.NewLangLiteral(w.Value, w.Lang)
		case w.Datatype != "":
			return rdf.NewTypedLiteral(w.Value, w.Datatype)
		default:
			return rdf.NewLiteral(w.Value)
		}
	default:
		return rdf.NewIRI(w.Value)
	}
}

// FromTerm converts an in-memory term to its wire form.
func FromTerm(t rdf.Term) WireTerm {
	w := WireTerm{Value: t.Value}
	switch t.Kind {
	case rdf.KindBlank:
		w.Kind = "blank"
	case rdf.KindLiteral:
		w.Kind = "literal"
		w.Lang = t.Lang
		if t.Lang == "" {
			w.Datatype = t.Datatype
		}
	default:
		w.Kind = "iri"
	}
	return w
}

// ToTriples converts wire triples to their in-memory form.
func ToTriples(wire []WireTriple) []rdf.Triple {
	triples := make([]rdf.Triple, len(wire))
	for i, wt := range wire {
		triples[i] = rdf.Triple{
			Subject:   wt.Subject.ToTerm(),
			Predicate: wt.Predicate,
			Object:    wt.Object.ToTerm(),
		}
	}
	return triples
}

// FromTriples converts in-memory triples to their wire form.
func FromTriples(triples []rdf.Triple) []WireTriple {
	wire := make([]WireTriple, len(triples))
	for i, t := range triples {
		wire[i] = WireTriple{
			Subject:   FromTerm(t.Subject),
			Predicate: t.Predicate,
			Object:    FromTerm(t.Object),
		}
	}
	return wire
}

// HarvestPayload carries one harvested dataset description.
type HarvestPayload struct {
	FdkID      string       `json:"fdk_id"`
	DatasetIRI string       `json:"dataset_iri"`
	Triples    []WireTriple `json:"triples"`
	Timestamp  time.Time    `json:"timestamp"`
}

// Schema returns the message type for Payload interface.
func (p *HarvestPayload) Schema() message.Type { return HarvestedType }

// Validate validates the payload for Payload interface.
func (p *HarvestPayload) Validate() error {
	if p.DatasetIRI == "" {
		return errors.New("dataset_iri is required")
	}
	if len(p.Triples) == 0 {
		return errors.New("triples are required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *HarvestPayload) MarshalJSON() ([]byte, error) {
	type Alias HarvestPayload
	return json.Marshal((*Alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *HarvestPayload) UnmarshalJSON(data []byte) error {
	type Alias HarvestPayload
	return json.Unmarshal(data, (*Alias)(p))
}

// ResultPayload carries the assessment graph for one dataset.
type ResultPayload struct {
	FdkID          string       `json:"fdk_id"`
	DatasetIRI     string       `json:"dataset_iri"`
	CatalogVersion string       `json:"catalog_version"`
	Triples        []WireTriple `json:"triples"`
	CheckedAt      time.Time    `json:"checked_at"`
}

// Schema returns the message type for Payload interface.
func (p *ResultPayload) Schema() message.Type { return PropertiesCheckedType }

// Validate validates the payload for Payload interface.
func (p *ResultPayload) Validate() error {
	if p.DatasetIRI == "" {
		return errors.New("dataset_iri is required")
	}
	if p.CatalogVersion == "" {
		return errors.New("catalog_version is required")
	}
	if len(p.Triples) == 0 {
		return errors.New("triples are required")
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *ResultPayload) MarshalJSON() ([]byte, error) {
	type Alias ResultPayload
	return json.Marshal((*Alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *ResultPayload) UnmarshalJSON(data []byte) error {
	type Alias ResultPayload
	return json.Unmarshal(data, (*Alias)(p))
}
