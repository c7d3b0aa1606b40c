package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func validOpts() options {
	return options{
		shortenURL:     "https://example.com",
		timeout:        8 * time.Second,
		connectTimeout: 5 * time.Second,
		maxChain:       15,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*options)
		wantErr bool
	}{
		{"shorten ok", func(o *options) {}, false},
		{"unshorten ok", func(o *options) {
			o.shortenURL = ""
			o.unshortenURL = "https://tinyurl.com/abc123"
		}, false},
		{"neither", func(o *options) { o.shortenURL = "" }, true},
		{"both", func(o *options) { o.unshortenURL = "https://tinyurl.com/abc123" }, true},
		{"bad timeout", func(o *options) { o.timeout = 0 }, true},
		{"bad connect timeout", func(o *options) { o.connectTimeout = -1 }, true},
		{"bad max chain", func(o *options) { o.maxChain = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOpts()
			tt.mutate(&opts)
			err := validate(opts)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUsageText(t *testing.T) {
	var helpPath, noArgPath bytes.Buffer
	usage(&helpPath)
	usage(&noArgPath)
	if helpPath.String() != noArgPath.String() {
		t.Fatalf("help text should be identical for -h and no-arg paths")
	}
	for _, want := range []string{"snipr", "-s <url> | -u <url>", "Examples:"} {
		if !strings.Contains(helpPath.String(), want) {
			t.Fatalf("usage text missing %q:\n%s", want, helpPath.String())
		}
	}
}
