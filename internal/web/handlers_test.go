package web

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"magician/internal/game"
	"magician/internal/gamedata"
	"magician/internal/save"
	"magician/internal/session"
	"magician/internal/telemetry"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	tmplDir := filepath.Join("..", "..", "templates")
	tmpl := template.Must(template.ParseGlob(filepath.Join(tmplDir, "*.html")))
	return &Server{
		Registry: gamedata.MustLoadCharacterRegistry(),
		Saves:    save.NewManager(session.NewMemoryStore[game.SaveRecord](), zerolog.Nop()),
		Tmpl:     tmpl,
		Log:      zerolog.Nop(),
		Tracer:   telemetry.NoopTracer(),
	}
}

func doRequest(t *testing.T, srv *Server, method, path, sid string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	}
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

// loginAndSelect walks a session to the playing phase via the HTTP surface.
func loginAndSelect(t *testing.T, srv *Server, sid, key string) {
	t.Helper()
	rec := doRequest(t, srv, http.MethodPost, "/login", sid, url.Values{
		"username": {"arutha"},
		"password": {"krondor123"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("login: expected 302, got %d", rec.Code)
	}
	rec = doRequest(t, srv, http.MethodPost, "/character-select", sid, url.Values{
		"character": {key},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("character-select: expected 302, got %d", rec.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "The Magician") {
		t.Error("Expected body to contain the game title")
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("Expected a session cookie to be set")
	}
}

func TestHandleIndex_UnknownPath(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/no-such-page", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/login", "", url.Values{
		"username": {"arutha"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please enter username and password") {
		t.Error("Expected validation error in body")
	}
}

func TestHandleLogin_Redirects(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	rec := doRequest(t, srv, http.MethodPost, "/login", sid, url.Values{
		"username": {"arutha"},
		"password": {"krondor123"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/character-select" {
		t.Errorf("Expected redirect to /character-select, got %q", loc)
	}
}

func TestHandleRegister_Validation(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodPost, "/register", "", url.Values{
		"username": {"ab"},
		"email":    {"not-an-email"},
		"password": {"short"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 re-render, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Username must be at least 3 characters",
		"Please enter a valid email",
		"Password must be at least 8 characters",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
}

func TestHandleRegister_Success(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	rec := doRequest(t, srv, http.MethodPost, "/register", sid, url.Values{
		"username": {"carline"},
		"email":    {"carline@crydee.example"},
		"password": {"swordfish123"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/character-select" {
		t.Errorf("Expected redirect to /character-select, got %q", loc)
	}
}

func TestHandleCharacterSelect_RequiresLogin(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/character-select", "", nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Expected redirect to /login, got %q", loc)
	}
}

func TestHandleCharacterSelect_ShowsBothPaths(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	rec := doRequest(t, srv, http.MethodPost, "/login", sid, url.Values{
		"username": {"arutha"},
		"password": {"krondor123"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("login: expected 302, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodGet, "/character-select", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Tomas") || !strings.Contains(body, "Pug") {
		t.Error("Expected both character options in body")
	}
	if !strings.Contains(body, "Warrior") || !strings.Contains(body, "Mage") {
		t.Error("Expected both path labels in body")
	}
}

func TestHandleCharacterSelect_UnknownKey(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	rec := doRequest(t, srv, http.MethodPost, "/login", sid, url.Values{
		"username": {"arutha"},
		"password": {"krondor123"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("login: expected 302, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPost, "/character-select", sid, url.Values{
		"character": {"macros"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown character, got %d", rec.Code)
	}
}

func TestScenario_PlayAsTomas(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "tomas")

	rec := doRequest(t, srv, http.MethodGet, "/play", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Castle Crydee") {
		t.Error("Expected starting location in the transcript")
	}
	if !strings.Contains(body, "HP 130") {
		t.Error("Expected derived HP 130 for Tomas")
	}

	rec = doRequest(t, srv, http.MethodPost, "/command", sid, url.Values{
		"command": {"stats"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("command: expected 302, got %d", rec.Code)
	}
	rec = doRequest(t, srv, http.MethodGet, "/play", sid, nil)
	if !strings.Contains(rec.Body.String(),
		"Stats: Strength 14, Constitution 13, Agility 12, Intelligence 10, Willpower 11, Charisma 12") {
		t.Error("Expected exact stats line in the transcript")
	}
}

func TestScenario_PugDerivedStats(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "pug")

	rec := doRequest(t, srv, http.MethodGet, "/play", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "HP 100") {
		t.Error("Expected derived HP 100 for Pug")
	}
	if !strings.Contains(body, "MP 140") {
		t.Error("Expected derived MP 140 for Pug")
	}
}

func TestHandleCommand_UnknownCommandEchoed(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "tomas")

	rec := doRequest(t, srv, http.MethodPost, "/command", sid, url.Values{
		"command": {"Cast Fireball"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	rec = doRequest(t, srv, http.MethodGet, "/play", sid, nil)
	body := rec.Body.String()
	// Quotes are HTML-escaped in the transcript, so match the pieces.
	if !strings.Contains(body, "Unknown command:") || !strings.Contains(body, "Cast Fireball") {
		t.Error("Expected unknown-command diagnostic with original casing")
	}
}

func TestHandlePlay_WithoutSaveRedirects(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/play", "", nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got %q", loc)
	}
}

func TestHandleIndex_ShowsContinueWithSave(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "tomas")

	rec := doRequest(t, srv, http.MethodGet, "/", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "tale awaits") {
		t.Error("Expected welcome-back greeting with a live save")
	}
	if !strings.Contains(body, "Tomas") {
		t.Error("Expected the saved character's name on the menu")
	}
}

func TestHandleNewGame_ClearsSave(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "tomas")

	rec := doRequest(t, srv, http.MethodPost, "/new-game", sid, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}

	// The cleared slot no longer restores into play.
	rec = doRequest(t, srv, http.MethodGet, "/play", sid, nil)
	if rec.Code != http.StatusFound {
		t.Errorf("Expected redirect after clear, got %d", rec.Code)
	}
	rec = doRequest(t, srv, http.MethodGet, "/", sid, nil)
	if strings.Contains(rec.Body.String(), "tale awaits") {
		t.Error("Expected menu to show no live save after new game")
	}
}

func TestHandleSheet(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "pug")

	rec := doRequest(t, srv, http.MethodGet, "/sheet.pdf", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("Expected PDF payload")
	}
}

func TestHandleSheet_WithoutSave(t *testing.T) {
	srv := testServer(t)
	rec := doRequest(t, srv, http.MethodGet, "/sheet.pdf", "", nil)
	if rec.Code != http.StatusFound {
		t.Errorf("Expected 302 without a save, got %d", rec.Code)
	}
}

func TestHandleLogout_DropsCookie(t *testing.T) {
	srv := testServer(t)
	sid := srv.Saves.NewID()
	loginAndSelect(t, srv, sid, "tomas")

	rec := doRequest(t, srv, http.MethodGet, "/logout", sid, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("Expected 302, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
		t.Error("Expected the session cookie to be expired")
	}

	// The save itself survives logout; the same sid still restores.
	rec = doRequest(t, srv, http.MethodGet, "/play", sid, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected save retained after logout, got %d", rec.Code)
	}
}
