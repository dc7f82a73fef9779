package detect

import (
	"math"
	"regexp"
	"strings"
)

// Splitting rules shared by every analyzer.
const (
	sentenceSplitExpr  = `[.!?]+`
	wordTokenExpr      = `\w+`
	paragraphSeparator = "\n\n"

	// tokenPunctuationCutset mirrors the ASCII punctuation characters
	// stripped from a token before lexicon membership checks.
	tokenPunctuationCutset = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	sentenceSplitPattern = regexp.MustCompile(sentenceSplitExpr)
	wordTokenPattern     = regexp.MustCompile(wordTokenExpr)
)

// document is the parsed representation of one input text. Every
// decomposition is computed once per analysis and shared read-only across
// the analyzers.
type document struct {
	raw   string
	lower string

	// fields are the whitespace-separated tokens of the lowercased text.
	fields []string

	// words are the word-boundary tokens of the lowercased text. This is
	// a different tokenizer than fields and the two are not interchangeable.
	words []string

	sentences  []string
	paragraphs []string
}

func parseDocument(text string) *document {
	lower := strings.ToLower(text)

	return &document{
		raw:        text,
		lower:      lower,
		fields:     strings.Fields(lower),
		words:      wordTokenPattern.FindAllString(lower, -1),
		sentences:  splitNonEmpty(sentenceSplitPattern.Split(text, -1)),
		paragraphs: splitNonEmpty(strings.Split(text, paragraphSeparator)),
	}
}

// splitNonEmpty trims each part and drops the empty ones, preserving order.
func splitNonEmpty(parts []string) []string {
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// stripTokenPunctuation removes leading and trailing ASCII punctuation so a
// token like "however," still matches its lexicon entry.
func stripTokenPunctuation(token string) string {
	return strings.Trim(token, tokenPunctuationCutset)
}

// wordCounts returns the whitespace word count of each part.
func wordCounts(parts []string) []float64 {
	counts := make([]float64, len(parts))
	for i, part := range parts {
		counts[i] = float64(len(strings.Fields(part)))
	}

	return counts
}

func meanValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// variationCoefficient returns the population standard deviation divided by
// the mean. A zero mean yields 1.0, the maximally human-variable fallback.
func variationCoefficient(values []float64) float64 {
	mean := meanValue(values)
	if mean == 0 {
		return 1.0
	}

	var squares float64
	for _, v := range values {
		squares += (v - mean) * (v - mean)
	}

	stdDev := math.Sqrt(squares / float64(len(values)))

	return stdDev / mean
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(score float64) float64 {
	return math.Min(score, 1.0)
}
