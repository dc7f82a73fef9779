package detect

import "math"

// Pattern scoring thresholds.
const (
	patternMatchWeight = 0.25
	patternScoreCap    = 0.8

	transitionRatioHigh     = 0.08
	transitionRatioModerate = 0.05
	transitionRatioScale    = 3.0
	transitionScoreCap      = 0.5
	transitionModerateScore = 0.2
)

// scorePatterns rates explicit AI phrasing plus transition-word density.
func scorePatterns(doc *document) float64 {
	score := 0.0

	matches := 0

	for _, pattern := range aiPhrasePatterns {
		if pattern.MatchString(doc.lower) {
			matches++
		}
	}

	if matches > 0 {
		score += math.Min(float64(matches)*patternMatchWeight, patternScoreCap)
	}

	if len(doc.fields) > 0 {
		ratio := transitionRatio(doc.fields)

		switch {
		case ratio >= transitionRatioHigh:
			score += math.Min(ratio*transitionRatioScale, transitionScoreCap)
		case ratio >= transitionRatioModerate:
			score += transitionModerateScore
		}
	}

	return clampScore(score)
}

// transitionRatio is the share of whitespace tokens that are transition
// words, after stripping surrounding punctuation.
func transitionRatio(fields []string) float64 {
	if len(fields) == 0 {
		return 0
	}

	count := 0

	for _, field := range fields {
		if _, ok := aiTransitions[stripTokenPunctuation(field)]; ok {
			count++
		}
	}

	return float64(count) / float64(len(fields))
}
