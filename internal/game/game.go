package game

import (
	"errors"
	"strings"
)

var (
	// ErrWrongPhase is returned when an action is not defined for the
	// current phase. The state is left untouched.
	ErrWrongPhase = errors.New("action not available in current phase")
	// ErrEmptyUsername rejects empty or whitespace-only usernames at
	// login/register submit. No transition occurs.
	ErrEmptyUsername = errors.New("username must not be empty")
	// ErrUnknownCharacter rejects character keys outside the registry.
	ErrUnknownCharacter = errors.New("unknown character key")
	// ErrNoPlayer rejects character select without a logged-in player.
	ErrNoPlayer = errors.New("no player logged in")
)

// CharacterSource resolves a character key to its template.
type CharacterSource interface {
	Get(key string) (*Character, bool)
}

// Game is the session state container: current phase, player, selected
// character and the transcript. It performs no I/O; mutating actions set a
// dirty flag and the caller is expected to persist the snapshot afterwards.
type Game struct {
	characters CharacterSource

	phase     Phase
	player    *Player
	character *Character
	history   MessageLog
	dirty     bool
}

// New returns a Game at the main menu with no player or character.
func New(characters CharacterSource) *Game {
	return &Game{
		characters: characters,
		phase:      PhaseMenu,
	}
}

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) Player() *Player { return g.player }

func (g *Game) Character() *Character { return g.character }

// Messages returns a copy of the transcript, oldest first.
func (g *Game) Messages() []Message { return g.history.Messages() }

// Dirty reports whether state changed since the last MarkClean. The
// persistence adapter calls MarkClean after a successful write.
func (g *Game) Dirty() bool { return g.dirty }

// MarkClean resets the dirty flag; called after a successful persist.
func (g *Game) MarkClean() { g.dirty = false }

func (g *Game) transitionTo(to Phase) error {
	if !canTransition(g.phase, to) {
		return ErrWrongPhase
	}
	g.phase = to
	return nil
}

// GoToLogin moves from the menu to the login form ("continue").
func (g *Game) GoToLogin() error {
	if g.phase != PhaseMenu {
		return ErrWrongPhase
	}
	return g.transitionTo(PhaseLogin)
}

// GoToRegister moves from the menu to the registration form ("new").
func (g *Game) GoToRegister() error {
	if g.phase != PhaseMenu {
		return ErrWrongPhase
	}
	return g.transitionTo(PhaseRegister)
}

// SubmitLogin accepts a username and advances to character select. There is
// no credential check; the presentation layer does its own form validation.
func (g *Game) SubmitLogin(username string) error {
	return g.submitUsername(username, PhaseLogin)
}

// SubmitRegister accepts the registration form. Email and password are
// accepted but ignored here; only the username becomes the Player.
func (g *Game) SubmitRegister(username, email, password string) error {
	_, _ = email, password
	return g.submitUsername(username, PhaseRegister)
}

func (g *Game) submitUsername(username string, form Phase) error {
	if g.phase != form && g.phase != PhaseMenu {
		return ErrWrongPhase
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if g.phase == PhaseMenu {
		if err := g.transitionTo(form); err != nil {
			return err
		}
	}
	g.player = &Player{Username: username}
	g.dirty = true
	return g.transitionTo(PhaseCharacterSelect)
}

// EnterCharacterSelect resumes character selection for a player that is
// already logged in (menu → character_select).
func (g *Game) EnterCharacterSelect() error {
	if g.phase != PhaseMenu && g.phase != PhaseCharacterSelect {
		return ErrWrongPhase
	}
	if g.player == nil {
		return ErrNoPlayer
	}
	return g.transitionTo(PhaseCharacterSelect)
}

// SelectCharacter picks one of the registered templates, resets the
// transcript and seeds it with the starting-location description, then
// enters play.
func (g *Game) SelectCharacter(key string) error {
	if g.phase != PhaseCharacterSelect {
		return ErrWrongPhase
	}
	tmpl, ok := g.characters.Get(key)
	if !ok {
		return ErrUnknownCharacter
	}
	c := *tmpl
	c.Inventory = append([]string(nil), tmpl.Inventory...)
	g.character = &c
	g.history.Reset()
	g.history.Append(c.StartingLocation, false)
	g.dirty = true
	return g.transitionTo(PhasePlaying)
}

// SubmitCommand runs one line of player input through the interpreter.
// Every invocation appends exactly two transcript entries: the normalized
// command echo and the response.
func (g *Game) SubmitCommand(text string) (string, error) {
	if g.phase != PhasePlaying || g.character == nil {
		return "", ErrWrongPhase
	}
	echo := strings.ToLower(strings.TrimSpace(text))
	response := Dispatch(g.character, text)
	g.history.Append(echo, true)
	g.history.Append(response, false)
	g.dirty = true
	return response, nil
}

// GoToMenu leaves play for the main menu without clearing anything.
func (g *Game) GoToMenu() error {
	return g.transitionTo(PhaseMenu)
}

// Reset clears player, character and transcript and returns to the menu.
// The caller is responsible for clearing the persisted record ("new game"
// confirmation happens in the presentation layer).
func (g *Game) Reset() {
	g.phase = PhaseMenu
	g.player = nil
	g.character = nil
	g.history.Reset()
	g.dirty = true
}

// Snapshot produces the persistable record: player, character and the most
// recent window of the transcript.
func (g *Game) Snapshot() SaveRecord {
	return SaveRecord{
		Player:    g.player,
		Character: g.character,
		Messages:  g.history.Recent(savedHistory),
	}
}

// Restore loads a record. The session lands in the playing phase only when
// both player and character are present; a partial record keeps whatever
// data it has but stays at the menu.
func (g *Game) Restore(rec SaveRecord) {
	g.player = rec.Player
	g.character = rec.Character
	g.history.restore(rec.Messages)
	if rec.Player != nil && rec.Character != nil {
		g.phase = PhasePlaying
	} else {
		g.phase = PhaseMenu
	}
	g.dirty = false
}
