package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-onboarding/internal/prompt"
	"github.com/goliatone/go-onboarding/pkg/model"
)

var (
	promptInput  string
	promptOutput string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill in the personal information form on the terminal",
	Long: `Ask for every personal information field, masking and validating the
answers as they are typed. The completed form is printed as JSON.

Use --input to start from a previously saved form.`,
	RunE: runPrompt,
}

func init() {
	promptCmd.Flags().StringVarP(&promptInput, "input", "i", "", "JSON form to use as defaults")
	promptCmd.Flags().StringVarP(&promptOutput, "output", "o", "", "output file (stdout if empty)")
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	var current model.PersonalInfo
	if promptInput != "" {
		data, err := os.ReadFile(promptInput)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &current); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
	}

	info, err := prompt.Collect(cmd.Context(), prompt.NewSurveyDriver(cmd.ErrOrStderr()), current)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	if promptOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	return os.WriteFile(promptOutput, append(data, '\n'), 0o600)
}
