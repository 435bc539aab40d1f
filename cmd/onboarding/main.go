// Command onboarding serves the agent onboarding flow and exposes its
// masking and validation helpers on the command line.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-onboarding/internal/config"
	"github.com/goliatone/go-onboarding/internal/logger"
)

// flagConfig holds the values bound to the persistent configuration flags.
var flagConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Agent onboarding server and tools",
	Long: `Serve the ten step agent onboarding flow, or use its helpers directly.

Available commands:
  serve    - Run the HTTP server
  render   - Render a step page to HTML
  mask     - Apply an input mask to a value
  validate - Check a value with a named validator
  prompt   - Fill in the personal information form on the terminal`,
	SilenceUsage: true,
}

func init() {
	flagConfig = config.BindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(serveCmd, renderCmd, maskCmd, validateCmd, promptCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the flags with the environment, file and defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	if strings.EqualFold(cfg.Log.Format, "console") {
		return logger.NewConsole("onboarding", cfg.Log.Level, w)
	}
	return logger.New("onboarding", cfg.Log.Level, w)
}
