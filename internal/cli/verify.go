package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/demokit/internal/expect"
)

// VerifyResult holds verification results for all demos.
type VerifyResult struct {
	Reports []expect.Report `json:"reports"`
	Passed  int             `json:"passed"`
	Failed  int             `json:"failed"`
	Total   int             `json:"total"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <specs-dir>",
		Short: "Verify demos against CUE expectation specs",
		Long: `Verify registered demos against their CUE expectation specs.

Loads every expectation spec from the directory, runs each named demo,
and checks the live transcript line by line against the declared
expectations. Classification bands, when declared, are checked by
exercising the classifier across every value in the band.

Exit codes:
  0 - All demos satisfy their specs
  1 - One or more contract violations
  2 - Command error (invalid specs, unknown demo, etc.)

Examples:
  demokit verify ./testdata/specs
  demokit verify ./testdata/specs --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runVerify(opts *RootOptions, specsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := LoadExpectations(specsDir, LoadModeFailFast)
	if len(loadErrors) > 0 {
		var loadErr *LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, specsDir)

	result := VerifyResult{
		Reports: make([]expect.Report, 0, len(loadResult.Specs)),
		Total:   len(loadResult.Specs),
	}

	for i := range loadResult.Specs {
		spec := &loadResult.Specs[i]
		formatter.VerboseLog("Verifying demo: %s", spec.Name)

		report, err := expect.VerifyDemo(cmd.Context(), spec)
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}

		result.Reports = append(result.Reports, *report)
		if report.Pass() {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputVerifyJSON(cmd, result)
	}

	return outputVerifyText(cmd, result)
}

// outputVerifyJSON outputs the verification result as JSON.
func outputVerifyJSON(cmd *cobra.Command, result VerifyResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   result,
	}

	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    "E_VERIFY_FAILED",
			Message: fmt.Sprintf("%d demo(s) violated their spec", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d demo(s) violated their spec", result.Failed))
	}
	return nil
}

// outputVerifyText outputs the verification result as text.
func outputVerifyText(cmd *cobra.Command, result VerifyResult) error {
	w := cmd.OutOrStdout()

	for _, report := range result.Reports {
		if report.Pass() {
			fmt.Fprintf(w, "✓ %s\n", report.Demo)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", report.Demo)
		for _, p := range report.Problems {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Verify Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d demo(s) violated their spec", result.Failed))
	}

	fmt.Fprintln(w, "✓ All demos satisfy their specs")
	return nil
}
