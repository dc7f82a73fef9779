package core

import "github.com/book-expert/events"

// TextSubmittedEvent announces that a text blob has been uploaded to the
// text bucket and is ready for origin analysis.
type TextSubmittedEvent struct {
	Header events.EventHeader `json:"header"`

	// TextKey is the object store key of the submitted UTF-8 text.
	TextKey string `json:"text_key"`

	// MinTextLength optionally overrides the service-wide minimum text
	// length for this job. Zero means "use the configured default".
	MinTextLength int `json:"min_text_length,omitempty"`
}

// AnalysisCompletedEvent is the reply published once a submitted text has
// been analyzed. A too-short text is a normal outcome: Success is false and
// Error carries the human-readable reason, but no report is produced.
type AnalysisCompletedEvent struct {
	Header events.EventHeader `json:"header"`

	TextKey   string `json:"text_key"`
	ReportKey string `json:"report_key,omitempty"`

	Success       bool       `json:"success"`
	Error         string     `json:"error,omitempty"`
	AIProbability float64    `json:"ai_probability"`
	Likelihood    Likelihood `json:"likelihood,omitempty"`
}
