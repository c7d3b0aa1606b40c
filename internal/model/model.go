package model

import "time"

// Hop represents a single step in a redirect chain.
type Hop struct {
	Index  int    `json:"index"`
	URL    string `json:"url"`
	Status int    `json:"status"`
	TimeMs int64  `json:"time_ms"`
	Final  bool   `json:"final"`
}

// Result is the outcome of a single shorten or unshorten call. Exactly one
// of Output or Error is set.
type Result struct {
	Op         string    `json:"op"`
	Input      string    `json:"input"`
	Output     string    `json:"output,omitempty"`
	Chain      []Hop     `json:"chain,omitempty"`
	Status     int       `json:"status,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
}

// OK reports whether the operation produced a usable URL.
func (r Result) OK() bool { return r.Error == "" && r.Output != "" }
