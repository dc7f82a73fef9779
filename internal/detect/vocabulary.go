package detect

// Vocabulary scoring thresholds.
const (
	minWordsForVocabulary = 10

	buzzwordRatioHigh     = 0.03
	buzzwordRatioModerate = 0.02
	buzzwordRatioLow      = 0.01
	buzzwordHighScore     = 0.5
	buzzwordModerateScore = 0.3
	buzzwordLowScore      = 0.15

	formalRatioHigh     = 0.04
	formalRatioModerate = 0.02
	formalHighScore     = 0.4
	formalModerateScore = 0.2

	// Moderate lexical diversity is the AI-typical band; very low or very
	// high diversity reads as human and contributes nothing.
	diversityBandMin   = 0.45
	diversityBandMax   = 0.65
	diversityBandScore = 0.3
)

// scoreVocabulary rates lexical diversity and the density of buzzword and
// formal-word lexicon hits over the word-boundary tokens.
func scoreVocabulary(words []string) float64 {
	if len(words) < minWordsForVocabulary {
		return insufficientSignalScore
	}

	score := 0.0
	total := float64(len(words))

	switch buzzwordRatio := float64(countLexiconHits(words, aiBuzzwords)) / total; {
	case buzzwordRatio > buzzwordRatioHigh:
		score += buzzwordHighScore
	case buzzwordRatio > buzzwordRatioModerate:
		score += buzzwordModerateScore
	case buzzwordRatio > buzzwordRatioLow:
		score += buzzwordLowScore
	}

	switch formalRatio := float64(countLexiconHits(words, formalWords)) / total; {
	case formalRatio > formalRatioHigh:
		score += formalHighScore
	case formalRatio > formalRatioModerate:
		score += formalModerateScore
	}

	diversity := float64(countUniqueWords(words)) / total
	if diversity >= diversityBandMin && diversity <= diversityBandMax {
		score += diversityBandScore
	}

	return clampScore(score)
}

func countLexiconHits(words []string, lexicon map[string]struct{}) int {
	count := 0

	for _, word := range words {
		if _, ok := lexicon[word]; ok {
			count++
		}
	}

	return count
}

func countUniqueWords(words []string) int {
	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		unique[word] = struct{}{}
	}

	return len(unique)
}
