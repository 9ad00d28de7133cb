package scan_test

import (
	"testing"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/goquery"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://www.example.com"

func parse(t *testing.T, html string) sitescan.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}
