package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-onboarding/pkg/mask"
	"github.com/goliatone/go-onboarding/pkg/validation"
)

var errInvalidValue = errors.New("value is invalid")

var maskCmd = &cobra.Command{
	Use:   "mask <phone|ssn|zipcode|pattern> <value>",
	Short: "Apply an input mask to a value",
	Long: `Apply a named preset or a custom pattern to the digits in value.

In a pattern every X takes the next digit and any other character is copied
as is, e.g. "XXX-XXX" or "XX/XX".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), mask.Apply(mask.Spec(args[0]), args[1]))
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <kind> <value>",
	Short: "Check a value with a named validator",
	Long:  "Check a value with one of the validators: " + kindList() + ".",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := validation.Validate(validation.Kind(args[0]), args[1])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			return errInvalidValue
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return err
	},
}

func kindList() string {
	kinds := validation.Kinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}
