package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/canpolat/snipr/internal/banner"
	"github.com/canpolat/snipr/internal/httpclient"
	"github.com/canpolat/snipr/internal/model"
	"github.com/canpolat/snipr/internal/output"
	"github.com/canpolat/snipr/internal/resolve"
	"github.com/canpolat/snipr/internal/shorten"
)

type options struct {
	shortenURL     string
	unshortenURL   string
	timeout        time.Duration
	connectTimeout time.Duration
	maxChain       int
	insecure       bool
	userAgent      string
	verbose        bool
	noBanner       bool
	outputJSONL    string
}

func main() {
	flag.Usage = func() { usage(os.Stderr) }
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}
	opts := parseFlags()
	if !opts.noBanner {
		banner.PrintBanner()
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage(os.Stderr)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.shortenURL, "s", "", "Shorten a long URL using the TinyURL API")
	flag.StringVar(&opts.unshortenURL, "u", "", "Unshorten a short URL to reveal its target")
	flag.DurationVar(&opts.timeout, "timeout", 8*time.Second, "Overall per-request timeout")
	flag.DurationVar(&opts.connectTimeout, "connect-timeout", 5*time.Second, "TCP connect timeout")
	flag.IntVar(&opts.maxChain, "max-chain", 15, "Max redirect hops to follow")
	flag.BoolVar(&opts.insecure, "insecure", false, "Skip TLS verification")
	flag.StringVar(&opts.userAgent, "ua", "", "Override the User-Agent header")
	flag.BoolVar(&opts.verbose, "v", false, "Print each redirect hop")
	flag.BoolVar(&opts.noBanner, "no-banner", false, "Suppress the startup banner")
	flag.StringVar(&opts.outputJSONL, "o", "", "Write the result as a JSONL record to this file")
	flag.Parse()
	return opts
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "snipr — URL shortener & unshortener\n\n")
	fmt.Fprintf(w, "Usage:\n  %s [options] -s <url> | -u <url>\n\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(w, "Options:\n")
	fs := flag.CommandLine
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s -s https://example.com\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(w, "  %s -u https://tinyurl.com/abc123\n", filepath.Base(os.Args[0]))
}

func validate(opts options) error {
	switch {
	case opts.shortenURL == "" && opts.unshortenURL == "":
		return errors.New("one of -s or -u is required")
	case opts.shortenURL != "" && opts.unshortenURL != "":
		return errors.New("-s and -u are mutually exclusive")
	case opts.timeout <= 0:
		return fmt.Errorf("-timeout must be > 0 (got %s)", opts.timeout)
	case opts.connectTimeout <= 0:
		return fmt.Errorf("-connect-timeout must be > 0 (got %s)", opts.connectTimeout)
	case opts.maxChain <= 0:
		return fmt.Errorf("-max-chain must be > 0 (got %d)", opts.maxChain)
	}
	return nil
}

// run executes the selected operation. Only usage problems surface as an
// error; operation failures are printed and leave the exit code at zero.
func run(opts options) error {
	if err := validate(opts); err != nil {
		return err
	}

	client := httpclient.New(httpclient.Config{
		ConnectTimeout: opts.connectTimeout,
		Timeout:        opts.timeout,
		UserAgent:      opts.userAgent,
		Insecure:       opts.insecure,
	})

	ctx := context.Background()
	var res model.Result
	if opts.shortenURL != "" {
		res = runShorten(ctx, client, opts.shortenURL)
		output.PrintOutcome("Shortened URL", res)
	} else {
		res = resolve.New(client, opts.maxChain).Resolve(ctx, opts.unshortenURL)
		if opts.verbose {
			output.PrintChain(res)
		}
		output.PrintOutcome("Original URL", res)
	}

	if opts.outputJSONL != "" {
		if err := writeJSONLFile(opts.outputJSONL, res); err != nil {
			return fmt.Errorf("write JSONL: %w", err)
		}
	}
	return nil
}

func runShorten(ctx context.Context, client *http.Client, target string) model.Result {
	res := model.Result{Op: "shorten", Input: target, StartedAt: time.Now()}
	short, err := shorten.New(client).Shorten(ctx, target)
	res.DurationMs = time.Since(res.StartedAt).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Output = short
	return res
}

func writeJSONLFile(path string, res model.Result) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := output.NewJSONLWriter(f)
	if err := w.Write(res); err != nil {
		return err
	}
	return w.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
