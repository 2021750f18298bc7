package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"magician/internal/config"
	"magician/internal/game"
	"magician/internal/gamedata"
	"magician/internal/save"
	"magician/internal/session"
	"magician/internal/telemetry"
	"magician/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load("config.yml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	initLogger(cfg.Log)

	ctx := context.Background()

	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up telemetry")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("telemetry shutdown")
			}
		}()
		tracer = telemetry.Tracer("web")
		log.Info().Msg("telemetry enabled")
	}

	registry := gamedata.MustLoadCharacterRegistry()
	log.Info().Int("characters", registry.Count()).Msg("character templates loaded")

	store, err := newStore(cfg.SaveDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.SaveDir).Msg("failed to open save store")
	}

	tmpl, err := template.ParseGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	srv := &web.Server{
		Registry:  registry,
		Saves:     save.NewManager(store, log.Logger),
		Tmpl:      tmpl,
		Log:       log.Logger,
		Tracer:    tracer,
		StaticDir: cfg.StaticDir,
	}

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := http.ListenAndServe(cfg.Addr, srv.Routes()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// newStore picks the file-backed store, or in-memory when no directory is
// configured (saves then last only as long as the process).
func newStore(dir string) (session.Store[game.SaveRecord], error) {
	if dir == "" {
		log.Warn().Msg("SAVE_DIR empty, using in-memory saves")
		return session.NewMemoryStore[game.SaveRecord](), nil
	}
	return session.NewFileStore[game.SaveRecord](dir)
}

func initLogger(cfg config.LogConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Pretty {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil && cfg.Level != "" {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)
}
