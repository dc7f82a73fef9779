package detect

// Structure scoring thresholds. A low coefficient of variation means
// unnaturally uniform sentence lengths, which is the AI-typical signal.
const (
	minSentencesForStructure = 2

	insufficientSignalScore = 0.2

	uniformCVBound      = 0.30
	semiUniformCVBound  = 0.40
	uniformLengthScore  = 0.6
	semiUniformScore    = 0.4
	variableLengthScore = 0.1
	mediumSentenceMin   = 12
	mediumSentenceMax   = 20
	mediumRatioHigh     = 0.6
	mediumRatioModerate = 0.4
	mediumHighScore     = 0.4
	mediumModerateScore = 0.2
)

// scoreStructure rates sentence-length uniformity and clustering in the
// medium-length band.
func scoreStructure(sentences []string) float64 {
	if len(sentences) < minSentencesForStructure {
		return insufficientSignalScore
	}

	score := 0.0
	lengths := wordCounts(sentences)

	switch cv := variationCoefficient(lengths); {
	case cv < uniformCVBound:
		score += uniformLengthScore
	case cv < semiUniformCVBound:
		score += semiUniformScore
	default:
		score += variableLengthScore
	}

	mediumCount := 0

	for _, length := range lengths {
		if length >= mediumSentenceMin && length <= mediumSentenceMax {
			mediumCount++
		}
	}

	switch mediumRatio := float64(mediumCount) / float64(len(lengths)); {
	case mediumRatio > mediumRatioHigh:
		score += mediumHighScore
	case mediumRatio > mediumRatioModerate:
		score += mediumModerateScore
	}

	return clampScore(score)
}
