package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	statusadapter "github.com/bnema/cliptranslate/internal/adapters/render/status"
	"github.com/bnema/cliptranslate/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *app) *cobra.Command {
	var headless bool
	var noNotify bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Translate every new clipboard text until stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if headless {
				return runWatchHeadless(cmd, app, noNotify)
			}
			return runWatchScreen(cmd, app, noNotify)
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "Log status updates instead of drawing the status screen")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")

	return cmd
}

func runWatchHeadless(cmd *cobra.Command, app *app, noNotify bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = app.logger.Sync() }()

	monitor := application.NewMonitor(application.NewSettings(app.settings), application.MonitorDeps{
		Clipboard:   app.clipboard,
		Translator:  app.translator,
		Reporter:    statusadapter.NewLogReporter(app.logger),
		Notifier:    app.notifier(noNotify),
		Preferences: app.prefs,
		Logger:      app.logger,
		Languages:   app.languages,
	})

	return ignoreShutdown(ctx, monitor.Run(ctx))
}

func runWatchScreen(cmd *cobra.Command, app *app, noNotify bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger, err := app.screenLogger()
	if err != nil {
		return fmt.Errorf("wire screen logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reporter := statusadapter.NewReporter()
	monitor := application.NewMonitor(application.NewSettings(app.settings), application.MonitorDeps{
		Clipboard:   app.clipboard,
		Translator:  app.translator,
		Reporter:    reporter,
		Notifier:    app.notifier(noNotify),
		Preferences: app.prefs,
		Logger:      logger,
		Languages:   app.languages,
	})

	program := tea.NewProgram(
		statusadapter.NewModel(ctx, monitor, statusadapter.Options{Languages: app.languages}),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	reporter.Attach(program)

	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(ctx)
	}()

	_, runErr := program.Run()
	cancel()
	<-done

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("run status screen: %w", runErr)
	}

	return nil
}

// ignoreShutdown hides the context error the monitor returns once the
// session is stopped on purpose.
func ignoreShutdown(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}
