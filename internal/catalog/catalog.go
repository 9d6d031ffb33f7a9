// Package catalog holds the static reference data the creator offers:
// races, classes, attribute tables, abilities, hair palette and the
// equipment tables for each slot.
package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

//go:embed data/catalog.yaml
var defaultData []byte

// Option is a keyed choice with a display name
type Option struct {
	Key  string `yaml:"key" json:"key"`
	Name string `yaml:"name" json:"name"`
}

// HairColor maps a palette name to the prefix code stored on a character
type HairColor struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"`
}

// AttributeInfo describes one of the six attributes
type AttributeInfo struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Data is the serialized form of the catalog
type Data struct {
	Races               []string                  `yaml:"races" json:"races"`
	Classes             []string                  `yaml:"classes" json:"classes"`
	Genders             []string                  `yaml:"genders" json:"genders"`
	Attributes          []AttributeInfo           `yaml:"attributes" json:"attributes"`
	ClassAttributes     map[string]map[string]int `yaml:"classAttributes" json:"classAttributes"`
	RaceBonuses         map[string]map[string]int `yaml:"raceBonuses" json:"raceBonuses"`
	ClassAbilities      map[string][]string       `yaml:"classAbilities" json:"classAbilities"`
	RaceAbilities       map[string][]string       `yaml:"raceAbilities" json:"raceAbilities"`
	AbilityDescriptions map[string]string         `yaml:"abilityDescriptions" json:"abilityDescriptions"`
	HairColors          []HairColor               `yaml:"hairColors" json:"hairColors"`
	HairStyles          []Option                  `yaml:"hairStyles" json:"hairStyles"`
	Equipment           map[string][]Option       `yaml:"equipment" json:"equipment"`
}

// Catalog is an immutable, indexed view of Data. All accessors return copies.
type Catalog struct {
	data       Data
	races      map[string]bool
	classes    map[string]bool
	genders    map[string]bool
	attributes map[string]string
	hairColors map[string]bool
	hairStyles map[string]bool
	equipment  map[string]map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary. It panics if the
// embedded data is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultData))
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load decodes and validates catalog YAML. Unknown top-level fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}
	return New(data)
}

// New validates data and builds its indexes
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		data:       data,
		races:      toSet(data.Races),
		classes:    toSet(data.Classes),
		genders:    toSet(data.Genders),
		attributes: make(map[string]string, len(data.Attributes)),
		hairColors: make(map[string]bool, len(data.HairColors)),
		hairStyles: make(map[string]bool, len(data.HairStyles)),
		equipment:  make(map[string]map[string]string, len(data.Equipment)),
	}
	for _, a := range data.Attributes {
		c.attributes[a.Name] = a.Description
	}
	for _, h := range data.HairColors {
		c.hairColors[h.Code] = true
	}
	for _, h := range data.HairStyles {
		c.hairStyles[h.Key] = true
	}
	for slot, items := range data.Equipment {
		table := make(map[string]string, len(items))
		for _, item := range items {
			table[item.Key] = item.Name
		}
		c.equipment[slot] = table
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.data.Races) == 0 {
		vb.RequiredField("races")
	}
	if len(c.data.Classes) == 0 {
		vb.RequiredField("classes")
	}
	if len(c.data.Genders) == 0 {
		vb.RequiredField("genders")
	}
	for _, name := range entities.AttributeNames {
		if _, ok := c.attributes[name]; !ok {
			vb.Fieldf("attributes", "missing %s", name)
		}
	}

	for _, class := range c.data.Classes {
		base, ok := c.data.ClassAttributes[class]
		if !ok {
			vb.Fieldf("classAttributes", "missing class %s", class)
			continue
		}
		for _, name := range entities.AttributeNames {
			if _, ok := base[name]; !ok {
				vb.Fieldf("classAttributes."+class, "missing %s", name)
			}
		}
	}
	for race, bonus := range c.data.RaceBonuses {
		if !c.races[race] {
			vb.Fieldf("raceBonuses", "unknown race %s", race)
		}
		for name := range bonus {
			if _, ok := c.attributes[name]; !ok {
				vb.Fieldf("raceBonuses."+race, "unknown attribute %s", name)
			}
		}
	}
	for class := range c.data.ClassAbilities {
		if !c.classes[class] {
			vb.Fieldf("classAbilities", "unknown class %s", class)
		}
	}
	for race := range c.data.RaceAbilities {
		if !c.races[race] {
			vb.Fieldf("raceAbilities", "unknown race %s", race)
		}
	}
	for _, slot := range entities.Slots {
		if _, ok := c.equipment[slot]; !ok {
			vb.Fieldf("equipment", "missing slot %s", slot)
		}
	}
	for slot, items := range c.data.Equipment {
		if len(c.equipment[slot]) != len(items) {
			vb.Fieldf("equipment."+slot, "duplicate keys")
		}
	}
	if len(c.data.HairColors) == 0 {
		vb.RequiredField("hairColors")
	}

	return vb.Build()
}

// Races lists race names in display order
func (c *Catalog) Races() []string { return cloneStrings(c.data.Races) }

// Classes lists class names in display order
func (c *Catalog) Classes() []string { return cloneStrings(c.data.Classes) }

// Genders lists gender names in display order
func (c *Catalog) Genders() []string { return cloneStrings(c.data.Genders) }

// IsRace reports whether race is in the catalog
func (c *Catalog) IsRace(race string) bool { return c.races[race] }

// IsClass reports whether class is in the catalog
func (c *Catalog) IsClass(class string) bool { return c.classes[class] }

// IsGender reports whether gender is in the catalog
func (c *Catalog) IsGender(gender string) bool { return c.genders[gender] }

// AttributeNames lists the attribute names in display order
func (c *Catalog) AttributeNames() []string {
	names := make([]string, len(c.data.Attributes))
	for i, a := range c.data.Attributes {
		names[i] = a.Name
	}
	return names
}

// AttributeDescription returns the help text for an attribute
func (c *Catalog) AttributeDescription(name string) string {
	return c.attributes[name]
}

// ClassAttributes returns a copy of the default attributes for class, or
// nil for an unknown class.
func (c *Catalog) ClassAttributes(class string) map[string]int {
	base, ok := c.data.ClassAttributes[class]
	if !ok {
		return nil
	}
	return cloneInts(base)
}

// RaceBonus returns a copy of the attribute deltas for race. Unknown races
// have no bonus.
func (c *Catalog) RaceBonus(race string) map[string]int {
	bonus := c.data.RaceBonuses[race]
	if bonus == nil {
		return map[string]int{}
	}
	return cloneInts(bonus)
}

// ClassAbilities returns the abilities granted by class, never nil
func (c *Catalog) ClassAbilities(class string) []string {
	return cloneStrings(c.data.ClassAbilities[class])
}

// RaceAbilities returns the abilities granted by race, never nil
func (c *Catalog) RaceAbilities(race string) []string {
	return cloneStrings(c.data.RaceAbilities[race])
}

// AbilityDescription returns the help text for an ability
func (c *Catalog) AbilityDescription(ability string) string {
	return c.data.AbilityDescriptions[ability]
}

// HairColors lists the palette in display order
func (c *Catalog) HairColors() []HairColor {
	return append([]HairColor{}, c.data.HairColors...)
}

// HasHairColor reports whether code is a palette prefix
func (c *Catalog) HasHairColor(code string) bool { return c.hairColors[code] }

// HairStyles lists hair styles in display order
func (c *Catalog) HairStyles() []Option {
	return append([]Option{}, c.data.HairStyles...)
}

// HasHairStyle reports whether key is a known hair style
func (c *Catalog) HasHairStyle(key string) bool { return c.hairStyles[key] }

// Equipment lists the options for slot in display order
func (c *Catalog) Equipment(slot string) []Option {
	return append([]Option{}, c.data.Equipment[slot]...)
}

// EquipmentTable returns key to display name for slot
func (c *Catalog) EquipmentTable(slot string) map[string]string {
	table := c.equipment[slot]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// HasEquipment reports whether key belongs to the table for slot
func (c *Catalog) HasEquipment(slot, key string) bool {
	_, ok := c.equipment[slot][key]
	return ok
}

// Data returns a deep copy of the underlying data, suitable for serving
func (c *Catalog) Data() Data {
	out := Data{
		Races:               cloneStrings(c.data.Races),
		Classes:             cloneStrings(c.data.Classes),
		Genders:             cloneStrings(c.data.Genders),
		Attributes:          append([]AttributeInfo{}, c.data.Attributes...),
		ClassAttributes:     make(map[string]map[string]int, len(c.data.ClassAttributes)),
		RaceBonuses:         make(map[string]map[string]int, len(c.data.RaceBonuses)),
		ClassAbilities:      make(map[string][]string, len(c.data.ClassAbilities)),
		RaceAbilities:       make(map[string][]string, len(c.data.RaceAbilities)),
		AbilityDescriptions: make(map[string]string, len(c.data.AbilityDescriptions)),
		HairColors:          c.HairColors(),
		HairStyles:          c.HairStyles(),
		Equipment:           make(map[string][]Option, len(c.data.Equipment)),
	}
	for k, v := range c.data.ClassAttributes {
		out.ClassAttributes[k] = cloneInts(v)
	}
	for k, v := range c.data.RaceBonuses {
		out.RaceBonuses[k] = cloneInts(v)
	}
	for k, v := range c.data.ClassAbilities {
		out.ClassAbilities[k] = cloneStrings(v)
	}
	for k, v := range c.data.RaceAbilities {
		out.RaceAbilities[k] = cloneStrings(v)
	}
	for k, v := range c.data.AbilityDescriptions {
		out.AbilityDescriptions[k] = v
	}
	for k, v := range c.data.Equipment {
		out.Equipment[k] = append([]Option{}, v...)
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// cloneStrings never returns nil so empty lists serialize as []
func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}

func cloneInts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
