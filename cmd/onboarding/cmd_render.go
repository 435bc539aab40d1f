package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-onboarding/internal/logger"
	"github.com/goliatone/go-onboarding/internal/server"
)

var (
	renderStep   int
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an onboarding step page to HTML",
	Long: `Render the page for a step of a fresh onboarding flow. Only the first
step is open until earlier steps are completed.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderStep, "step", 1, "step to render")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (stdout if empty)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.App.DisableMetrics = true

	srv, err := server.New(cmd.Context(), cfg, server.WithLogger(logger.Nop()))
	if err != nil {
		return err
	}
	defer srv.Close()

	html, err := srv.RenderStep(cmd.Context(), renderStep)
	if err != nil {
		return fmt.Errorf("render step %d: %w", renderStep, err)
	}

	if renderOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(renderOutput, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Step %d written to %s\n", renderStep, renderOutput)
	return nil
}
