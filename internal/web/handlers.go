package web

import (
	"errors"
	"net/http"
	"strings"

	"magician/internal/game"
)

// GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)

	vm := MenuViewModel{HasSave: g.Phase() == game.PhasePlaying}
	if p := g.Player(); p != nil {
		vm.Username = p.Username
	}
	if c := g.Character(); c != nil {
		vm.CharacterName = c.Name
	}
	s.render(w, "menu.html", vm)
}

// GET|POST /login
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, "login.html", LoginViewModel{})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))
	if username == "" || password == "" {
		s.render(w, "login.html", LoginViewModel{Error: "Please enter username and password"})
		return
	}

	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)
	if g.Phase() == game.PhasePlaying {
		_ = g.GoToMenu()
	}
	if err := g.SubmitLogin(username); err != nil {
		s.render(w, "login.html", LoginViewModel{Error: "Please enter username and password"})
		return
	}
	if err := s.persist(ctx, id, g); err != nil {
		http.Error(w, "failed to save state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/character-select", http.StatusFound)
}

// GET|POST /register
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		s.render(w, "register.html", RegisterViewModel{})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	// Form validation lives here, not in the core: the core keeps only the
	// username and performs no credential handling.
	var formErrors []string
	if len(username) < 3 {
		formErrors = append(formErrors, "Username must be at least 3 characters")
	}
	if !strings.Contains(email, "@") {
		formErrors = append(formErrors, "Please enter a valid email")
	}
	if len(password) < 8 {
		formErrors = append(formErrors, "Password must be at least 8 characters")
	}
	if len(formErrors) > 0 {
		s.render(w, "register.html", RegisterViewModel{Errors: formErrors, Username: username, Email: email})
		return
	}

	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)
	if g.Phase() == game.PhasePlaying {
		_ = g.GoToMenu()
	}
	if err := g.SubmitRegister(username, email, password); err != nil {
		s.render(w, "register.html", RegisterViewModel{Errors: []string{"Registration failed"}, Username: username, Email: email})
		return
	}
	if err := s.persist(ctx, id, g); err != nil {
		http.Error(w, "failed to save state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/character-select", http.StatusFound)
}

// GET|POST /character-select
func (s *Server) handleCharacterSelect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)

	if g.Player() == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if g.Phase() == game.PhasePlaying {
		_ = g.GoToMenu()
	}
	if err := g.EnterCharacterSelect(); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		s.render(w, "character_select.html", CharacterSelectViewModel{
			Username: g.Player().Username,
			Options:  s.characterOptions(),
		})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	key := r.FormValue("character")
	if err := g.SelectCharacter(key); err != nil {
		if errors.Is(err, game.ErrUnknownCharacter) {
			http.Error(w, "unknown character", http.StatusBadRequest)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := s.persist(ctx, id, g); err != nil {
		http.Error(w, "failed to save state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/play", http.StatusFound)
}

// GET /play
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)

	if g.Phase() != game.PhasePlaying {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.render(w, "play.html", makePlayViewModel(g))
}

// POST /command
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)

	if g.Phase() != game.PhasePlaying {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	if _, err := g.SubmitCommand(r.FormValue("command")); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := s.persist(ctx, id, g); err != nil {
		http.Error(w, "failed to save state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/play", http.StatusFound)
}

// POST /menu — back to the main menu, nothing cleared.
func (s *Server) handleMenuAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// POST /new-game — the confirmation dialog happens client-side; by the time
// this fires the player has agreed to lose the save.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	id := s.ensureSession(w, r)
	g := s.loadGame(ctx, id)

	if err := s.Saves.Clear(ctx, id, g); err != nil {
		http.Error(w, "failed to clear save", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// GET /logout — drops the cookie only; the save stays on disk.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
