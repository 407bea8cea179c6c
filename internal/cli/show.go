package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/stagedash/internal/presentation/tui"
)

// Show paints one dashboard frame of the selected pipeline on out.
func Show(ctx context.Context, env *Environment, out io.Writer) error {
	term := tui.NewTerminal(out)
	canvas := term.Canvas(env.Config.UI.ASCII)

	renderErr := env.Dashboard().Render(ctx, canvas)
	// Flushed even for a failed frame.
	metricsErr := env.FlushMetrics()
	if renderErr != nil {
		return errors.Join(renderErr, metricsErr)
	}

	term.Clear()
	if err := term.Flush(canvas); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return metricsErr
}
