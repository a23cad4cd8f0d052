package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/sheetgo/internal/ctxlog"
	"github.com/specialistvlad/sheetgo/internal/sheet"
)

// Run loads the configured sheet, builds and evaluates it, and renders the
// result. Entries that fail to evaluate are still rendered; Run then returns
// their joined errors.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "sheet_path", a.config.SheetPath)

	def, err := a.loader.Load(ctx, a.config.SheetPath)
	if err != nil {
		return fmt.Errorf("failed to load sheet: %w", err)
	}

	s, err := sheet.Build(ctx, def)
	if err != nil {
		return fmt.Errorf("failed to build sheet: %w", err)
	}
	a.logger.Debug("Sheet built.", "nodes", s.Template.Len())

	report := s.Evaluate(ctx)
	if err := a.renderer.Render(a.outW, s.Name, report); err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}

	if err := report.Err(); err != nil {
		return fmt.Errorf("sheet evaluation failed: %w", err)
	}
	a.logger.Info("Sheet evaluated.", "sheet", s.Name, "entries", len(report.Entries), "violations", report.Violations())
	return nil
}
