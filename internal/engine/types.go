package engine

// Reasons attached to ability selection errors
const (
	ReasonAbilityLimit       = "ABILITY_LIMIT_REACHED"
	ReasonAbilityNotEligible = "ABILITY_NOT_ELIGIBLE"
)

// AbilityLimitMessage is shown when a fifth ability is selected
const AbilityLimitMessage = "You can only select up to 4 abilities at once."

// Abilities lists what a class and race combination may select from
type Abilities struct {
	Class []string `json:"classAbilities"`
	Race  []string `json:"raceAbilities"`
}

// Contains reports whether ability is offered by the class or the race
func (a *Abilities) Contains(ability string) bool {
	for _, list := range [][]string{a.Class, a.Race} {
		for _, v := range list {
			if v == ability {
				return true
			}
		}
	}
	return false
}
