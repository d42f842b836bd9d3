package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/processor"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/watcher"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newRunCommand(configPath *string) *cobra.Command {
	var (
		topicName  string
		scriptPath string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Produce one video now",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}

			job := processor.Job{Topic: topicName}
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				job.Narration = string(data)
				job.Source = "file:" + scriptPath
			}

			res, err := app.processor.Process(ctx, job)
			if err != nil {
				app.log.Error(ctx, "Run failed: %v", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.VideoPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&topicName, "topic", "", "topic to cover instead of the topic of the day")
	cmd.Flags().StringVar(&scriptPath, "script", "", "narration file to use instead of generating one")
	return cmd
}

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Produce a video for every narration script dropped into the inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}
			cfg := app.cfg

			w, err := watcher.New(cfg.Paths.Inbox, app.processor.ProcessFile, app.log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			// Create context with cancellation
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			// Start watcher in goroutine
			errChan := make(chan error, 1)
			go func() {
				errChan <- w.Start(ctx)
			}()

			app.log.Info(ctx, "========================================")
			app.log.Info(ctx, "Autopilot is watching the inbox")
			app.log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
			app.log.Info(ctx, "Output: %s", cfg.Paths.Output)
			app.log.Info(ctx, "Concurrent: %d runs at once", cfg.Performance.MaxConcurrent)
			app.log.Info(ctx, "Press Ctrl+C to stop")
			app.log.Info(ctx, "========================================")

			return waitForShutdown(ctx, app, cancel, errChan)
		},
	}
}

func newScheduleCommand(configPath *string) *cobra.Command {
	var runNow bool
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Produce a video on the configured cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := bootstrap(ctx, *configPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			runOnce := func() {
				if _, err := app.processor.Process(ctx, processor.Job{}); err != nil {
					app.log.Error(ctx, "Scheduled run failed: %v", err)
				}
			}

			c, id, err := newScheduler(app.cfg.Schedule.Cron, runOnce)
			if err != nil {
				return err
			}
			c.Start()
			defer func() { <-c.Stop().Done() }()

			app.log.Info(ctx, "Scheduler started with cron %q", app.cfg.Schedule.Cron)
			if runNow {
				go runWrapped(c, id)
			}

			return waitForShutdown(ctx, app, cancel, make(chan error))
		},
	}
	cmd.Flags().BoolVar(&runNow, "now", false, "also run once immediately")
	return cmd
}

// newScheduler registers job on spec. SkipIfStillRunning keeps a slow render
// from overlapping the next tick.
func newScheduler(spec string, job func()) (*cron.Cron, cron.EntryID, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	id, err := c.AddFunc(spec, job)
	if err != nil {
		return nil, 0, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return c, id, nil
}

// runWrapped runs the entry through its job chain, so an immediate run and a
// scheduled tick share the same overlap guard.
func runWrapped(c *cron.Cron, id cron.EntryID) {
	if e := c.Entry(id); e.Valid() {
		e.WrappedJob.Run()
	}
}

// waitForShutdown blocks until a signal arrives or errChan reports, then cancels ctx.
func waitForShutdown(ctx context.Context, app *application, cancel context.CancelFunc, errChan <-chan error) error {
	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case <-sigChan:
		app.log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			app.log.Error(ctx, "Watcher error: %v", err)
			runErr = err
		}
	}

	// Graceful shutdown
	app.log.Info(ctx, "Shutting down gracefully...")
	cancel()
	app.log.Info(ctx, "Autopilot stopped")
	return runErr
}
