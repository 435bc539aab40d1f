package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-onboarding/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the onboarding HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, server.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("server setup failed")
		return err
	}
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	return nil
}
