// Package catalog defines the versioned, immutable configuration of every
// selectable order field and specialty-meat group, including price rules.
//
// A Catalog is constructed once at startup and injected into the pricing
// engine and the wizard. It is the single source for both input validation
// and the persistence schema, so the two can never drift.
package catalog

import (
	"fmt"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// Kind identifies how a field is rendered and what values it accepts.
type Kind string

const (
	// KindSelect is a single-select dropdown.
	KindSelect Kind = "select"
	// KindRadio is a single-select radio group.
	KindRadio Kind = "radio"
	// KindCheckbox is a boolean toggle with a single priced option.
	KindCheckbox Kind = "checkbox"
	// KindText is free text with no options.
	KindText Kind = "text"
)

// Option is one selectable value of a Field.
type Option struct {
	Value string      `json:"value"`
	Label string      `json:"label"`
	Price model.Money `json:"price"`
	// PricePerFiveUnits marks Price as charged per 5 units of a numeric or
	// "Evenly" quantity instead of flat.
	PricePerFiveUnits bool `json:"price_per_5_unit,omitempty"`
}

// Field describes one selectable order field.
type Field struct {
	Key          string   `json:"key"`
	Section      string   `json:"section"`
	Label        string   `json:"label"`
	Kind         Kind     `json:"kind"`
	Options      []Option `json:"options,omitempty"`
	Required     bool     `json:"required,omitempty"`
	DefaultValue string   `json:"default_value,omitempty"`
}

// Option returns the field option matching the given value.
func (f Field) Option(value string) (Option, bool) {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Suboption is one priced product of a SpecialtyMeatGroup. Suboptions are
// addressed by their own key directly, not through a parent field value, and
// are always priced per 5 units.
type Suboption struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Price model.Money `json:"price"`
}

// SpecialtyMeatGroup is a group of per-5-lb priced specialty products. It is
// a distinct catalog variant from Field, discriminated explicitly rather
// than by structural sniffing.
type SpecialtyMeatGroup struct {
	Name       string      `json:"name"`
	Image      string      `json:"image,omitempty"`
	Suboptions []Suboption `json:"suboptions"`
}

// Catalog is the immutable set of fields and specialty-meat groups for one
// deployment, identified by a version string.
type Catalog struct {
	version     string
	fields      []Field
	fieldsByKey map[string]int
	groups      []SpecialtyMeatGroup
	subsByKey   map[string]Suboption
}

// New builds a Catalog from field and group definitions. Duplicate keys are
// a configuration defect and fail construction.
func New(version string, fields []Field, groups []SpecialtyMeatGroup) (*Catalog, error) {
	c := &Catalog{
		version:     version,
		fields:      fields,
		fieldsByKey: make(map[string]int, len(fields)),
		groups:      groups,
		subsByKey:   make(map[string]Suboption),
	}

	for i, f := range fields {
		if _, exists := c.fieldsByKey[f.Key]; exists {
			return nil, fmt.Errorf("catalog: duplicate field key %q", f.Key)
		}
		c.fieldsByKey[f.Key] = i
	}

	for _, g := range groups {
		for _, sub := range g.Suboptions {
			if _, exists := c.subsByKey[sub.Key]; exists {
				return nil, fmt.Errorf("catalog: duplicate suboption key %q", sub.Key)
			}
			if _, exists := c.fieldsByKey[sub.Key]; exists {
				return nil, fmt.Errorf("catalog: suboption key %q collides with field", sub.Key)
			}
			c.subsByKey[sub.Key] = sub
		}
	}

	return c, nil
}

// MustNew is New for static catalog definitions that are known to be valid.
func MustNew(version string, fields []Field, groups []SpecialtyMeatGroup) *Catalog {
	c, err := New(version, fields, groups)
	if err != nil {
		panic(err)
	}
	return c
}

// Version returns the catalog version identifier.
func (c *Catalog) Version() string {
	return c.version
}

// Field returns the field definition for a key.
func (c *Catalog) Field(key string) (Field, bool) {
	i, ok := c.fieldsByKey[key]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// Fields returns all field definitions in catalog order.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// SpecialtyMeatGroups returns all specialty-meat groups in catalog order.
func (c *Catalog) SpecialtyMeatGroups() []SpecialtyMeatGroup {
	out := make([]SpecialtyMeatGroup, len(c.groups))
	copy(out, c.groups)
	return out
}

// Suboption returns the specialty suboption for a key.
func (c *Catalog) Suboption(key string) (Suboption, bool) {
	sub, ok := c.subsByKey[key]
	return sub, ok
}

// HasKey reports whether a key names either a field or a suboption.
func (c *Catalog) HasKey(key string) bool {
	if _, ok := c.fieldsByKey[key]; ok {
		return true
	}
	_, ok := c.subsByKey[key]
	return ok
}

// AllFieldKeys returns every addressable key in catalog order: field keys
// first, then specialty suboption keys.
func (c *Catalog) AllFieldKeys() []string {
	keys := make([]string, 0, len(c.fields)+len(c.subsByKey))
	for _, f := range c.fields {
		keys = append(keys, f.Key)
	}
	for _, g := range c.groups {
		for _, sub := range g.Suboptions {
			keys = append(keys, sub.Key)
		}
	}
	return keys
}

// PriceTable flattens every priced option into a single table keyed by
// "fieldKey.optionValue" for fields and by the suboption key for specialty
// meats. This is the table frozen into each order's pricing snapshot.
func (c *Catalog) PriceTable() map[string]model.Money {
	table := make(map[string]model.Money)
	for _, f := range c.fields {
		for _, opt := range f.Options {
			if opt.Price != 0 {
				table[f.Key+"."+opt.Value] = opt.Price
			}
		}
	}
	for _, g := range c.groups {
		for _, sub := range g.Suboptions {
			table[sub.Key] = sub.Price
		}
	}
	return table
}
