package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"axotly/internal/config"
	"axotly/internal/executor"
	"axotly/internal/httpclient"
	"axotly/internal/logging"
	"axotly/internal/render"
	"axotly/internal/runner"
)

func newRunCmd() *cobra.Command {
	var concurrency int
	var rendererName string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Discover and run .ax test files under path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dotenv, err := config.LoadDotEnv(".env")
			if err != nil {
				return fmt.Errorf("loading .env: %w", err)
			}

			flags := config.Flags{}
			if cmd.Flags().Changed("concurrency") {
				flags.Concurrency = &concurrency
			}
			if cmd.Flags().Changed("renderer") {
				flags.Renderer = &rendererName
			}
			if cmd.Flags().Changed("log-level") {
				flags.LogLevel = &logLevel
			}
			cfg := config.Resolve(flags, envMap(), dotenv)

			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			runID := uuid.NewString()
			log = log.With("run_id", runID)

			var r render.Renderer
			switch cfg.Renderer {
			case "diff":
				r = render.NewDiff()
			default:
				r = render.NewHuman()
			}

			inv := httpclient.New(log)
			exec := executor.New(inv, log)
			rn := runner.New(exec, log)

			// Individual assertion failures do not change the exit code; only
			// discovery/parse/infrastructure errors do, via the returned error.
			_, err = rn.Run(cmd.Context(), args[0], cfg.Concurrency, r)
			return err
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max concurrent test dispatches (1-200)")
	cmd.Flags().StringVar(&rendererName, "renderer", "", "renderer to use: human or diff")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}
