package testutils

import (
	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Thorin Oakenshield"

// NewTestCharacter returns a valid default Human Warrior with every slice
// non-nil, so it survives a JSON round trip unchanged
func NewTestCharacter(id, name string) *entities.Character {
	return &entities.Character{
		ID:     id,
		Name:   name,
		Race:   entities.RaceHuman,
		Class:  entities.ClassWarrior,
		Gender: entities.GenderMale,
		Attributes: entities.Attributes{
			entities.AttributeStrength:     15,
			entities.AttributeDexterity:    13,
			entities.AttributeConstitution: 15,
			entities.AttributeIntelligence: 9,
			entities.AttributeWisdom:       11,
			entities.AttributeCharisma:     11,
		},
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

// NewTestDwarfCleric returns a customised character touching every field
func NewTestDwarfCleric(id string) *entities.Character {
	c := NewTestCharacter(id, TestCharacterName)
	c.Race = entities.RaceDwarf
	c.Class = entities.ClassCleric
	c.Attributes = entities.Attributes{
		entities.AttributeStrength:     12,
		entities.AttributeDexterity:    10,
		entities.AttributeConstitution: 14,
		entities.AttributeIntelligence: 10,
		entities.AttributeWisdom:       17,
		entities.AttributeCharisma:     14,
	}
	c.Appearance.HairColor = "r_"
	c.Appearance.Height = 132
	c.Appearance.HairStyle = "braided"
	c.Appearance.Beard = true
	c.Equipment.Hat = "pirate"
	c.Equipment.Bag = "b_bag"
	c.SelectedAbilities = []string{"Heal", "Stonework"}
	c.Level = 3
	c.Experience = 450
	return c
}
