package game

// Path labels for the two playable archetypes.
const (
	PathWarrior = "Warrior"
	PathMage    = "Mage"
)

// Attributes holds a character's six core attributes. All values are
// positive integers fixed by the character template.
type Attributes struct {
	Strength     int `yaml:"strength" json:"strength"`
	Constitution int `yaml:"constitution" json:"constitution"`
	Agility      int `yaml:"agility" json:"agility"`
	Intelligence int `yaml:"intelligence" json:"intelligence"`
	Willpower    int `yaml:"willpower" json:"willpower"`
	Charisma     int `yaml:"charisma" json:"charisma"`
}

// Character is one of the two fixed playable templates. Template data is
// read-only; selecting a character copies it into the game state and
// gameplay never mutates it.
type Character struct {
	Key              string     `yaml:"key" json:"key"`
	Name             string     `yaml:"name" json:"name"`
	Path             string     `yaml:"path" json:"path"`
	Description      string     `yaml:"description" json:"description"`
	StartingLocation string     `yaml:"startingLocation" json:"startingLocation"`
	Attributes       Attributes `yaml:"attributes" json:"attributes"`
	Inventory        []string   `yaml:"inventory" json:"inventory"`
}

// MaxHealth derives health from constitution. Derived stats are recomputed
// on every render and never stored.
func (c *Character) MaxHealth() int {
	return c.Attributes.Constitution * 10
}

// MaxMana derives mana from willpower; mages scale ten times harder.
func (c *Character) MaxMana() int {
	if c.Path == PathMage {
		return c.Attributes.Willpower * 10
	}
	return c.Attributes.Willpower * 2
}
