package entities

// Race constants
const (
	RaceHuman    = "Human"
	RaceElf      = "Elf"
	RaceDwarf    = "Dwarf"
	RaceOrc      = "Orc"
	RaceHalfling = "Halfling"
)

// Class constants
const (
	ClassWarrior = "Warrior"
	ClassMage    = "Mage"
	ClassRogue   = "Rogue"
	ClassCleric  = "Cleric"
	ClassRanger  = "Ranger"
)

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Attribute names
const (
	AttributeStrength     = "strength"
	AttributeDexterity    = "dexterity"
	AttributeConstitution = "constitution"
	AttributeIntelligence = "intelligence"
	AttributeWisdom       = "wisdom"
	AttributeCharisma     = "charisma"
)

// Equipment slots
const (
	SlotTop       = "top"
	SlotFoot      = "foot"
	SlotHair      = "hair"
	SlotHat       = "hat"
	SlotAccessory = "accessory"
	SlotPant      = "pant"
	SlotBag       = "bag"
)

// Limits on editable values
const (
	MinBaseAttribute     = 1
	MaxBaseAttribute     = 20
	MinHeight            = 120
	MaxHeight            = 220
	MaxSelectedAbilities = 4
	MinLevel             = 1
	MinExperience        = 0
)

// Defaults for a freshly created character
const (
	DefaultRace      = RaceHuman
	DefaultClass     = ClassWarrior
	DefaultGender    = GenderMale
	DefaultHairColor = "b_"
	DefaultEyeColor  = "#8B4513"
	DefaultSkinTone  = "#F5DEB3"
	DefaultHeight    = 175
	DefaultHairStyle = "short"
	DefaultTop       = "b_tee"
	DefaultFoot      = "b_boots"
	DefaultHair      = "shortdreads"
	DefaultPant      = "rainbow_tights"
)

// AttributeNames lists the six attributes in display order
var AttributeNames = []string{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// Slots lists equipment slots in display order
var Slots = []string{SlotTop, SlotPant, SlotFoot, SlotHair, SlotHat, SlotAccessory, SlotBag}
