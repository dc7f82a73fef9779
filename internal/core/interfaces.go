// Package core defines the core business logic and interfaces for the detection service.
package core

import "context"

// ObjectStore defines the interface for interacting with a key-value blob store.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
}

// TextAnalyzer defines the interface for an AI-generated-text scoring engine.
//
// minTextLength is the minimum number of characters the trimmed text must
// have before analysis runs; a value of zero or less selects the engine
// default.
type TextAnalyzer interface {
	Analyze(text string, minTextLength int) (*Result, error)
}
