package web

import (
	"context"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"magician/internal/game"
	"magician/internal/gamedata"
	"magician/internal/save"
)

const cookieName = "magician_sid"

type Server struct {
	Registry  *gamedata.CharacterRegistry
	Saves     *save.Manager
	Tmpl      *template.Template
	Log       zerolog.Logger
	Tracer    trace.Tracer
	StaticDir string
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/character-select", s.handleCharacterSelect)

	mux.HandleFunc("/play", s.handlePlay)
	mux.HandleFunc("/command", s.handleCommand)
	mux.HandleFunc("/menu", s.handleMenuAction)
	mux.HandleFunc("/new-game", s.handleNewGame)
	mux.HandleFunc("/sheet.pdf", s.handleSheet)
	mux.HandleFunc("/logout", s.handleLogout)

	staticDir := s.StaticDir
	if staticDir == "" {
		staticDir = "static"
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	return s.instrument(mux)
}

// instrument opens a span per request and logs the outcome at debug.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := s.Tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()
		span.SetAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
		s.Log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request handled")
	})
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// ensureSession returns the save-slot id for this browser, minting one and
// setting the cookie on first contact.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) string {
	id := s.sessionID(r)
	if id == "" {
		id = s.Saves.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return id
}

// loadGame builds a fresh core and restores whatever save exists for the
// session. A missing or unreadable save leaves the core at the menu.
func (s *Server) loadGame(ctx context.Context, id string) *game.Game {
	g := game.New(s.Registry)
	if id != "" {
		s.Saves.Load(ctx, id, g)
	}
	return g
}

// persist saves if the action left the core dirty, honoring the contract
// that the write for an action completes before its response is rendered.
func (s *Server) persist(ctx context.Context, id string, g *game.Game) error {
	if !g.Dirty() {
		return nil
	}
	return s.Saves.Save(ctx, id, g)
}

func (s *Server) render(w http.ResponseWriter, name string, vm any) {
	if err := s.Tmpl.ExecuteTemplate(w, name, vm); err != nil {
		s.Log.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "failed to render template", http.StatusInternalServerError)
	}
}
