// Package entities provides the character data model for toon-tailor.
package entities

// Character is the record a user edits. The JSON field names match files
// exported by the browser version of the creator.
type Character struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Race              string     `json:"race"`
	Class             string     `json:"class"`
	Gender            string     `json:"gender"`
	Attributes        Attributes `json:"attributes"`
	Appearance        Appearance `json:"appearance"`
	Equipment         Equipment  `json:"equipment"`
	Abilities         []string   `json:"abilities"`
	SelectedAbilities []string   `json:"selectedAbilities"`
	Level             int        `json:"level"`
	Experience        int        `json:"experience"`
}

// Attributes maps an attribute name to its stored value. The stored value
// already includes the race bonus.
type Attributes map[string]int

// Clone returns an independent copy; nil stays nil
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Appearance holds cosmetic choices. HairColor is a palette prefix code
// such as "b_", not a colour name.
type Appearance struct {
	HairColor string `json:"hairColor"`
	EyeColor  string `json:"eyeColor"`
	SkinTone  string `json:"skinTone"`
	Height    int    `json:"height"`
	HairStyle string `json:"hairStyle"`
	Beard     bool   `json:"beard"`
	Scars     bool   `json:"scars"`
	Tattoos   bool   `json:"tattoos"`
	Earrings  bool   `json:"earrings"`
}

// Equipment holds one catalog key per slot, empty meaning nothing equipped
type Equipment struct {
	Top       string `json:"top"`
	Foot      string `json:"foot"`
	Hair      string `json:"hair"`
	Hat       string `json:"hat"`
	Accessory string `json:"accessory"`
	Pant      string `json:"pant"`
	Bag       string `json:"bag"`
	Items     []any  `json:"items"`
}

// Slot returns the key equipped in slot and whether the slot exists
func (e *Equipment) Slot(slot string) (string, bool) {
	p := e.slotPtr(slot)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetSlot equips key in slot. It reports false for an unknown slot.
func (e *Equipment) SetSlot(slot, key string) bool {
	p := e.slotPtr(slot)
	if p == nil {
		return false
	}
	*p = key
	return true
}

func (e *Equipment) slotPtr(slot string) *string {
	switch slot {
	case SlotTop:
		return &e.Top
	case SlotFoot:
		return &e.Foot
	case SlotHair:
		return &e.Hair
	case SlotHat:
		return &e.Hat
	case SlotAccessory:
		return &e.Accessory
	case SlotPant:
		return &e.Pant
	case SlotBag:
		return &e.Bag
	default:
		return nil
	}
}

// HasSelected reports whether ability is currently selected
func (c *Character) HasSelected(ability string) bool {
	for _, a := range c.SelectedAbilities {
		if a == ability {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the character. Items are copied shallowly;
// their contents are never mutated in place.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Attributes = c.Attributes.Clone()
	out.Abilities = cloneStrings(c.Abilities)
	out.SelectedAbilities = cloneStrings(c.SelectedAbilities)
	if c.Equipment.Items != nil {
		out.Equipment.Items = append([]any{}, c.Equipment.Items...)
	}
	return &out
}

// DisplayName returns the name, or a placeholder for unnamed characters
func (c *Character) DisplayName() string {
	if c.Name == "" {
		return "Unnamed"
	}
	return c.Name
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
