package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/sheetgo/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	loader   config.Loader
	config   *Config
	renderer Renderer
}

// NewApp is the constructor for the main application. Rendered sheets go to
// outW and logs to logW, each App with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	var renderer Renderer
	if cfg.Output == "json" {
		renderer = &JSONRenderer{}
	} else {
		renderer = &TextRenderer{Color: colorEnabled(outW, cfg.NoColor)}
	}

	return &App{
		outW:     outW,
		logger:   logger,
		loader:   loader,
		config:   cfg,
		renderer: renderer,
	}
}
