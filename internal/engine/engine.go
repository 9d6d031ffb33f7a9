package engine

import (
	"regexp"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/toon-tailor/internal/catalog"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type engine struct {
	catalog *catalog.Catalog
	roller  dice.Roller
}

// Config holds the dependencies of the rules engine
type Config struct {
	Catalog    *catalog.Catalog
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if cfg.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	return vb.Build()
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{
		catalog: cfg.Catalog,
		roller:  cfg.DiceRoller,
	}, nil
}

func (e *engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// CalculateAttributes starts from base, or the class defaults when base is
// nil, and adds each race bonus whose attribute is present. Inputs are not
// modified.
func (e *engine) CalculateAttributes(class, race string, base map[string]int) entities.Attributes {
	start := base
	if start == nil {
		start = e.catalog.ClassAttributes(class)
	}

	out := make(entities.Attributes, len(start))
	for k, v := range start {
		out[k] = v
	}
	for attr, bonus := range e.catalog.RaceBonus(race) {
		if _, ok := out[attr]; ok {
			out[attr] += bonus
		}
	}
	return out
}

// BaseAttributes removes the race bonus from stored values
func (e *engine) BaseAttributes(race string, attrs entities.Attributes) entities.Attributes {
	out := attrs.Clone()
	if out == nil {
		out = entities.Attributes{}
	}
	for attr, bonus := range e.catalog.RaceBonus(race) {
		if _, ok := out[attr]; ok {
			out[attr] -= bonus
		}
	}
	return out
}

func (e *engine) GetAbilities(class, race string) *Abilities {
	return &Abilities{
		Class: e.catalog.ClassAbilities(class),
		Race:  e.catalog.RaceAbilities(race),
	}
}

// NewCharacter is the single source of character defaults
func (e *engine) NewCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:         id,
		Name:       "",
		Race:       entities.DefaultRace,
		Class:      entities.DefaultClass,
		Gender:     entities.DefaultGender,
		Attributes: e.CalculateAttributes(entities.DefaultClass, entities.DefaultRace, nil),
		Appearance: entities.Appearance{
			HairColor: entities.DefaultHairColor,
			EyeColor:  entities.DefaultEyeColor,
			SkinTone:  entities.DefaultSkinTone,
			Height:    entities.DefaultHeight,
			HairStyle: entities.DefaultHairStyle,
		},
		Equipment: entities.Equipment{
			Top:   entities.DefaultTop,
			Foot:  entities.DefaultFoot,
			Hair:  entities.DefaultHair,
			Pant:  entities.DefaultPant,
			Items: []any{},
		},
		Abilities:         []string{},
		SelectedAbilities: []string{},
		Level:             entities.MinLevel,
		Experience:        entities.MinExperience,
	}
}

// ToggleAbility deselects a selected ability, otherwise selects it. A
// selection must be offered by the character's class or race and may not
// exceed the limit. Deselecting is always allowed.
func (e *engine) ToggleAbility(c *entities.Character, ability string) (bool, error) {
	if c == nil {
		return false, errors.InvalidArgument("character is required")
	}

	if c.HasSelected(ability) {
		kept := make([]string, 0, len(c.SelectedAbilities))
		for _, a := range c.SelectedAbilities {
			if a != ability {
				kept = append(kept, a)
			}
		}
		c.SelectedAbilities = kept
		return false, nil
	}

	if !e.GetAbilities(c.Class, c.Race).Contains(ability) {
		return false, errors.InvalidArgumentf("%s is not available to a %s %s", ability, c.Race, c.Class).
			WithReason(ReasonAbilityNotEligible).
			WithMeta("ability", ability)
	}
	if len(c.SelectedAbilities) >= entities.MaxSelectedAbilities {
		return false, errors.FailedPrecondition(AbilityLimitMessage).
			WithReason(ReasonAbilityLimit).
			WithMeta("limit", entities.MaxSelectedAbilities)
	}

	c.SelectedAbilities = append(append([]string{}, c.SelectedAbilities...), ability)
	return true, nil
}

// SetBaseAttribute sets the slider value for one attribute; the stored value
// gets the race bonus added.
func (e *engine) SetBaseAttribute(c *entities.Character, attribute string, base int) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	vb := errors.NewValidationBuilder()
	if e.catalog.AttributeDescription(attribute) == "" {
		vb.Fieldf("attribute", "unknown attribute %q", attribute)
	}
	errors.ValidateRange("value", base, entities.MinBaseAttribute, entities.MaxBaseAttribute, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	attrs := c.Attributes.Clone()
	if attrs == nil {
		attrs = entities.Attributes{}
	}
	attrs[attribute] = base + e.catalog.RaceBonus(c.Race)[attribute]
	c.Attributes = attrs
	return nil
}

// ChangeRace keeps the base values the user chose and swaps the race bonus
func (e *engine) ChangeRace(c *entities.Character, race string) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	if !e.catalog.IsRace(race) {
		return errors.InvalidArgumentf("unknown race %q", race)
	}

	base := e.BaseAttributes(c.Race, c.Attributes)
	c.Race = race
	c.Attributes = e.CalculateAttributes(c.Class, race, base)
	e.pruneSelections(c)
	return nil
}

// ChangeClass resets attributes to the new class defaults plus race bonus
func (e *engine) ChangeClass(c *entities.Character, class string) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	if !e.catalog.IsClass(class) {
		return errors.InvalidArgumentf("unknown class %q", class)
	}

	c.Class = class
	c.Attributes = e.CalculateAttributes(class, c.Race, nil)
	e.pruneSelections(c)
	return nil
}

func (e *engine) ChangeGender(c *entities.Character, gender string) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	if !e.catalog.IsGender(gender) {
		return errors.InvalidArgumentf("unknown gender %q", gender)
	}
	c.Gender = gender
	return nil
}

func (e *engine) SetAppearance(c *entities.Character, appearance entities.Appearance) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	vb := errors.NewValidationBuilder()
	e.validateAppearance("appearance", appearance, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	c.Appearance = appearance
	return nil
}

// SetEquipment equips key in slot; an empty key clears the slot
func (e *engine) SetEquipment(c *entities.Character, slot, key string) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	if _, ok := c.Equipment.Slot(slot); !ok {
		return errors.InvalidArgumentf("unknown equipment slot %q", slot)
	}
	if key != "" && !e.catalog.HasEquipment(slot, key) {
		return errors.InvalidArgumentf("%q is not a %s option", key, slot).WithMeta("slot", slot)
	}
	c.Equipment.SetSlot(slot, key)
	return nil
}

// RollAttributes rolls 3d6 for each base attribute and applies the race
// bonus. It returns the rolled base values.
func (e *engine) RollAttributes(c *entities.Character) (entities.Attributes, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	base := make(entities.Attributes, len(entities.AttributeNames))
	for _, attr := range e.catalog.AttributeNames() {
		rolls, err := e.roller.RollN(3, 6)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", attr)
		}
		total := 0
		for _, r := range rolls {
			total += r
		}
		base[attr] = total
	}

	c.Attributes = e.CalculateAttributes(c.Class, c.Race, base)
	return base, nil
}

// Validate checks every field of c. Field paths follow the JSON names.
func (e *engine) Validate(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}
	vb := errors.NewValidationBuilder()

	if !e.catalog.IsRace(c.Race) {
		errors.ValidateEnum("race", c.Race, e.catalog.Races(), vb)
	}
	if !e.catalog.IsClass(c.Class) {
		errors.ValidateEnum("class", c.Class, e.catalog.Classes(), vb)
	}
	if !e.catalog.IsGender(c.Gender) {
		errors.ValidateEnum("gender", c.Gender, e.catalog.Genders(), vb)
	}

	bonus := e.catalog.RaceBonus(c.Race)
	for _, attr := range e.catalog.AttributeNames() {
		stored, ok := c.Attributes[attr]
		if !ok {
			vb.RequiredField("attributes." + attr)
			continue
		}
		errors.ValidateRange("attributes."+attr, stored-bonus[attr],
			entities.MinBaseAttribute, entities.MaxBaseAttribute, vb)
	}
	for attr := range c.Attributes {
		if e.catalog.AttributeDescription(attr) == "" {
			vb.Fieldf("attributes."+attr, "unknown attribute")
		}
	}

	e.validateAppearance("appearance", c.Appearance, vb)

	for _, slot := range entities.Slots {
		key, _ := c.Equipment.Slot(slot)
		errors.ValidateOptionalKey("equipment."+slot, key, e.catalog.EquipmentTable(slot), vb)
	}

	if len(c.SelectedAbilities) > entities.MaxSelectedAbilities {
		vb.Fieldf("selectedAbilities", "at most %d abilities may be selected", entities.MaxSelectedAbilities)
	}
	offered := e.GetAbilities(c.Class, c.Race)
	seen := make(map[string]bool, len(c.SelectedAbilities))
	for _, a := range c.SelectedAbilities {
		if seen[a] {
			vb.Fieldf("selectedAbilities", "%s selected twice", a)
		}
		seen[a] = true
		if !offered.Contains(a) {
			vb.Fieldf("selectedAbilities", "%s is not available", a)
		}
	}

	errors.ValidateMin("level", c.Level, entities.MinLevel, vb)
	errors.ValidateMin("experience", c.Experience, entities.MinExperience, vb)

	return vb.Build()
}

func (e *engine) validateAppearance(prefix string, a entities.Appearance, vb *errors.ValidationBuilder) {
	if !e.catalog.HasHairColor(a.HairColor) {
		vb.Fieldf(prefix+".hairColor", "unknown palette code %q", a.HairColor)
	}
	if !hexColor.MatchString(a.EyeColor) {
		vb.Field(prefix+".eyeColor", "must be a #rrggbb colour")
	}
	if !hexColor.MatchString(a.SkinTone) {
		vb.Field(prefix+".skinTone", "must be a #rrggbb colour")
	}
	errors.ValidateRange(prefix+".height", a.Height, entities.MinHeight, entities.MaxHeight, vb)
	if a.HairStyle != "" && !e.catalog.HasHairStyle(a.HairStyle) {
		vb.Fieldf(prefix+".hairStyle", "unknown hair style %q", a.HairStyle)
	}
}

// pruneSelections drops selected abilities the current class and race no
// longer offer
func (e *engine) pruneSelections(c *entities.Character) {
	offered := e.GetAbilities(c.Class, c.Race)
	kept := make([]string, 0, len(c.SelectedAbilities))
	for _, a := range c.SelectedAbilities {
		if offered.Contains(a) {
			kept = append(kept, a)
		}
	}
	c.SelectedAbilities = kept
}
