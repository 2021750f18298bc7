package web

import (
	"net/http"

	"magician/internal/game"
	"magician/internal/sheet"
)

// GET /sheet.pdf — printable character sheet for the current save.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	id := s.sessionID(r)
	if id == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	g := s.loadGame(ctx, id)
	if g.Phase() != game.PhasePlaying {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	username := ""
	if p := g.Player(); p != nil {
		username = p.Username
	}
	pdf, err := sheet.Generate(g.Character(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="character-sheet.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		s.Log.Error().Err(err).Msg("write sheet response")
	}
}
