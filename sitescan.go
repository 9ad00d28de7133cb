// Package sitescan analyzes a website's home page and privacy policy.
// It collects links to externally-hosted resources, locates the privacy
// policy page, and computes word frequencies over the policy text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package sitescan

// Output file names written by a scan.
const (
	ResourcesFile = "external_resources.json"
	FrequencyFile = "word_frequency.json"
)
