package scan

import (
	"context"
	"net/url"

	"github.com/fwojciec/sitescan"
	"github.com/google/uuid"
)

// Scanner runs the pipeline for one site: it fetches the home page,
// records its external resources, then follows the privacy policy link
// and records the policy's word frequencies.
type Scanner struct {
	Fetcher sitescan.Fetcher
	Parser  sitescan.Parser
	Writer  sitescan.ResultWriter
}

// Report holds the outcome of a scan.
//
// Fetch failures and a missing policy link do not fail the scan; they are
// recorded in BaseErr and PolicyErr instead.
type Report struct {
	// ID identifies the run. It is attached to the context passed to the
	// fetcher and writer, see sitescan.RunIDFromContext.
	ID          string
	BaseURL     string
	Resources   []string
	PolicyURL   string
	Frequencies sitescan.FrequencyTable

	// BaseErr is set when the home page could not be fetched or parsed.
	BaseErr error

	// PolicyErr is ENOTFOUND when no policy link was found, or the
	// fetch error when the policy page could not be retrieved.
	PolicyErr error
}

// Scan analyzes the site at baseURL and writes ResourcesFile and, when the
// policy page is available, FrequencyFile.
// Returns EINVALID for a non-absolute base URL and EIO when results cannot
// be written.
func (s *Scanner) Scan(ctx context.Context, baseURL string) (*Report, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	report := &Report{
		ID:      uuid.New().String(),
		BaseURL: baseURL,
	}
	ctx = sitescan.NewContextWithRunID(ctx, report.ID)

	doc, err := s.load(ctx, baseURL)
	if err != nil {
		report.BaseErr = err
	}

	report.Resources = ExtractResources(doc, baseURL)
	if err := s.Writer.WriteJSON(ctx, sitescan.ResourcesFile, report.Resources); err != nil {
		return report, err
	}

	policyURL, ok := FindPolicyURL(doc, baseURL)
	if !ok {
		report.PolicyErr = sitescan.Errorf(sitescan.ENOTFOUND, "privacy policy link not found on %s", baseURL)
		return report, nil
	}
	report.PolicyURL = policyURL

	policyDoc, err := s.load(ctx, policyURL)
	if err != nil {
		report.PolicyErr = err
		return report, nil
	}

	report.Frequencies = sitescan.CountWords(Tokens(policyDoc))
	if err := s.Writer.WriteJSON(ctx, sitescan.FrequencyFile, report.Frequencies); err != nil {
		return report, err
	}

	return report, nil
}

// load fetches and parses the page at rawURL.
func (s *Scanner) load(ctx context.Context, rawURL string) (sitescan.Document, error) {
	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	doc, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func validateBaseURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return sitescan.Errorf(sitescan.EINVALID, "invalid base URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return sitescan.Errorf(sitescan.EINVALID, "base URL must be absolute: %q", rawURL)
	}
	return nil
}
