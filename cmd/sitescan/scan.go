package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scanner *scan.Scanner
}

// ScanCmd runs a single scan and reports the outcome.
type ScanCmd struct {
	URL string
	Out string
}

// Run executes the scan command.
// Fetch failures and a missing policy link are reported but do not fail
// the command; invalid input and write failures do.
func (c *ScanCmd) Run(deps *Dependencies) error {
	report, err := deps.Scanner.Scan(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", message(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scan %s of %s\n", report.ID, report.BaseURL)
	if report.BaseErr != nil {
		fmt.Fprintf(deps.Stderr, "Error retrieving URL: %s (%s)\n", report.BaseURL, message(report.BaseErr))
	}
	fmt.Fprintf(deps.Stdout, "Found %d external resources\n", len(report.Resources))
	fmt.Fprintf(deps.Stdout, "Saved %s\n", filepath.Join(c.Out, sitescan.ResourcesFile))

	switch {
	case report.PolicyURL == "":
		fmt.Fprintln(deps.Stdout, "Unable to find Privacy Policy page URL.")
	case report.PolicyErr != nil:
		fmt.Fprintf(deps.Stderr, "Error retrieving URL: %s (%s)\n", report.PolicyURL, message(report.PolicyErr))
	default:
		fmt.Fprintf(deps.Stdout, "Counted %d distinct words on %s\n", len(report.Frequencies), report.PolicyURL)
		fmt.Fprintf(deps.Stdout, "Saved %s\n", filepath.Join(c.Out, sitescan.FrequencyFile))
	}

	return nil
}

// message returns a user-facing message for err, keeping the text of
// errors that are not application errors.
func message(err error) string {
	if sitescan.ErrorCode(err) == sitescan.EINTERNAL {
		return err.Error()
	}
	return sitescan.ErrorMessage(err)
}
