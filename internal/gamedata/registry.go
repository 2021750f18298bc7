package gamedata

import (
	"errors"

	"magician/internal/game"
)

// CharactersFile represents the structure of characters.yaml.
type CharactersFile struct {
	Characters []game.Character `yaml:"characters"`
}

// CharacterRegistry holds the loaded character templates and provides
// lookup by key. Templates are immutable after loading.
type CharacterRegistry struct {
	byKey map[string]*game.Character
	keys  []string
}

// NewCharacterRegistry creates a registry from loaded templates, keeping
// file order for listings.
func NewCharacterRegistry(characters []game.Character) *CharacterRegistry {
	r := &CharacterRegistry{
		byKey: make(map[string]*game.Character, len(characters)),
		keys:  make([]string, 0, len(characters)),
	}
	for i := range characters {
		r.byKey[characters[i].Key] = &characters[i]
		r.keys = append(r.keys, characters[i].Key)
	}
	return r
}

// LoadCharacterRegistry loads and creates a registry from the embedded
// characters.yaml.
func LoadCharacterRegistry() (*CharacterRegistry, error) {
	file, err := Load[CharactersFile]("characters.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Characters) == 0 {
		return nil, errors.New("no characters loaded from characters.yaml")
	}
	return NewCharacterRegistry(file.Characters), nil
}

// MustLoadCharacterRegistry loads a registry, panicking on error.
func MustLoadCharacterRegistry() *CharacterRegistry {
	registry, err := LoadCharacterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the template with the given key.
func (r *CharacterRegistry) Get(key string) (*game.Character, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// Keys returns the character keys in file order.
func (r *CharacterRegistry) Keys() []string {
	return r.keys
}

// All returns the templates in file order.
func (r *CharacterRegistry) All() []*game.Character {
	out := make([]*game.Character, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}
	return out
}

// Count returns the number of character templates.
func (r *CharacterRegistry) Count() int {
	return len(r.keys)
}
