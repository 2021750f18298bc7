package web

import "magician/internal/game"

// ViewModels are the only thing handed to templates: the core emits data,
// never markup.

// MenuViewModel drives the main menu. HasSave switches between "Continue
// your tale" and a fresh start.
type MenuViewModel struct {
	HasSave       bool
	Username      string
	CharacterName string
}

type LoginViewModel struct {
	Error string
}

type RegisterViewModel struct {
	Errors   []string
	Username string
	Email    string
}

// CharacterOption is one selectable template with its derived stats
// precomputed for display.
type CharacterOption struct {
	Key         string
	Name        string
	Path        string
	Description string
	Attributes  game.Attributes
	Health      int
	Mana        int
}

type CharacterSelectViewModel struct {
	Username string
	Options  []CharacterOption
}

// PlayViewModel carries everything the play screen renders. Health and
// Mana are recomputed from the character on every render, never stored.
type PlayViewModel struct {
	Username   string
	Name       string
	Path       string
	Health     int
	Mana       int
	Attributes game.Attributes
	Inventory  []string
	Messages   []game.Message
}

func (s *Server) characterOptions() []CharacterOption {
	all := s.Registry.All()
	out := make([]CharacterOption, 0, len(all))
	for _, c := range all {
		out = append(out, CharacterOption{
			Key:         c.Key,
			Name:        c.Name,
			Path:        c.Path,
			Description: c.Description,
			Attributes:  c.Attributes,
			Health:      c.MaxHealth(),
			Mana:        c.MaxMana(),
		})
	}
	return out
}

func makePlayViewModel(g *game.Game) PlayViewModel {
	c := g.Character()
	vm := PlayViewModel{
		Name:       c.Name,
		Path:       c.Path,
		Health:     c.MaxHealth(),
		Mana:       c.MaxMana(),
		Attributes: c.Attributes,
		Inventory:  c.Inventory,
		Messages:   g.Messages(),
	}
	if p := g.Player(); p != nil {
		vm.Username = p.Username
	}
	return vm
}
