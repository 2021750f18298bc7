// Package save is the persistence adapter between the game core and a
// session store. The core never performs I/O itself; handlers call Save
// after any action that left the core dirty, Load before rendering, and
// Clear on an explicit new game.
package save

import (
	"context"

	"github.com/rs/zerolog"

	"magician/internal/game"
	"magician/internal/session"
)

type Manager struct {
	store session.Store[game.SaveRecord]
	log   zerolog.Logger
}

func NewManager(store session.Store[game.SaveRecord], log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// NewID mints a fresh save-slot key.
func (m *Manager) NewID() string {
	return m.store.NewID()
}

// Save writes the core's snapshot (player, character, recent transcript)
// under the given key and clears the dirty flag on success.
func (m *Manager) Save(ctx context.Context, key string, g *game.Game) error {
	if err := m.store.Put(ctx, key, g.Snapshot()); err != nil {
		return err
	}
	g.MarkClean()
	return nil
}

// Load restores the record at key into g. A missing record leaves g
// untouched at the menu. A record that cannot be read or decoded is
// treated as no save present: corrupt data must never keep the player out
// of the game.
func (m *Manager) Load(ctx context.Context, key string, g *game.Game) bool {
	rec, ok, err := m.store.Get(ctx, key)
	if err != nil {
		m.log.Warn().Err(err).Str("save", key).Msg("unreadable save treated as absent")
		return false
	}
	if !ok {
		return false
	}
	g.Restore(rec)
	return true
}

// Clear deletes the stored record and resets the core to the menu.
func (m *Manager) Clear(ctx context.Context, key string, g *game.Game) error {
	if err := m.store.Delete(ctx, key); err != nil {
		return err
	}
	g.Reset()
	g.MarkClean()
	return nil
}
