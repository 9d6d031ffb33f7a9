// Package engine applies the character rules: attribute derivation from
// class and race, ability selection and validated edits.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/toon-tailor/internal/engine Engine

import (
	"github.com/KirkDiggler/toon-tailor/internal/catalog"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

// Engine provides character rules on top of a catalog. Edit methods mutate
// the character in place and leave it untouched when they return an error.
type Engine interface {
	Catalog() *catalog.Catalog

	// Derivation
	CalculateAttributes(class, race string, base map[string]int) entities.Attributes
	BaseAttributes(race string, attrs entities.Attributes) entities.Attributes
	GetAbilities(class, race string) *Abilities
	NewCharacter(id string) *entities.Character

	// Ability selection
	ToggleAbility(c *entities.Character, ability string) (bool, error)

	// Edits
	SetBaseAttribute(c *entities.Character, attribute string, base int) error
	ChangeRace(c *entities.Character, race string) error
	ChangeClass(c *entities.Character, class string) error
	ChangeGender(c *entities.Character, gender string) error
	SetAppearance(c *entities.Character, appearance entities.Appearance) error
	SetEquipment(c *entities.Character, slot, key string) error
	RollAttributes(c *entities.Character) (entities.Attributes, error)

	// Validate checks the whole character against the catalog and limits
	Validate(c *entities.Character) error
}
