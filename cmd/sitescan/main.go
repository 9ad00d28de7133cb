package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitescan/cache"
	"github.com/fwojciec/sitescan/fs"
	"github.com/fwojciec/sitescan/goquery"
	sitehttp "github.com/fwojciec/sitescan/http"
	"github.com/fwojciec/sitescan/scan"
	siteslog "github.com/fwojciec/sitescan/slog"
	"github.com/fwojciec/sitescan/sqlite"
)

// DefaultURL is the site scanned when no URL is given.
const DefaultURL = "https://www.cfcunderwriting.com"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitescan"),
		kong.Description("List a site's external resources and count the words of its privacy policy"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_url": DefaultURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open response cache
	db := sqlite.NewDB(cli.Cache)
	if err := db.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Use --cache to choose a writable cache location")
		return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
	}
	defer db.Close()

	// Wire dependencies
	store := siteslog.NewLoggingResponseStore(sqlite.NewResponseStore(db), logger)
	httpFetcher := sitehttp.NewFetcher(
		sitehttp.WithTimeout(cli.Timeout),
		sitehttp.WithRateLimiter(sitehttp.NewDomainLimiter(cli.RPS)),
	)
	retrying := sitehttp.NewRetryFetcher(httpFetcher, sitehttp.RetryDelays(cli.Retries, time.Second))
	fetcher := siteslog.NewLoggingFetcher(
		cache.NewFetcher(retrying, store, cache.WithExpiry(cli.Expire)),
		logger,
	)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scanner: &scan.Scanner{
			Fetcher: fetcher,
			Parser:  goquery.NewParser(),
			Writer:  siteslog.NewLoggingResultWriter(fs.NewWriter(cli.Out), logger),
		},
	}

	cmd := &ScanCmd{
		URL: cli.URL,
		Out: cli.Out,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out     string        `short:"o" default:"." help:"Directory for the JSON result files"`
	Cache   string        `default:"base_url_cache.sqlite" help:"SQLite file holding cached responses"`
	Expire  time.Duration `default:"1h" help:"How long cached responses are reused"`
	Timeout time.Duration `short:"t" default:"10s" help:"Timeout per request"`
	RPS     float64       `name:"rps" default:"1" help:"Requests per second per host (0 disables limiting)"`
	Retries int           `default:"0" help:"Retries for failed requests, with backoff from 1s"`
	Verbose bool          `short:"v" help:"Log cache activity"`
	URL     string        `arg:"" optional:"" default:"${default_url}" help:"Home page of the site to scan (default: ${default})"`
}
