package detect

import (
	"math"
	"strings"
)

// Repetition scoring thresholds.
const (
	minSentencesForRepetition = 3

	openerRepeatBound  = 2
	openerRepeatScore  = 0.3
	bigramRepeatBound  = 2
	bigramRepeatWeight = 0.2
	bigramScoreCap     = 0.5
	bigramLength       = 2
)

// scoreRepetition rates repeated sentence openers and repeated in-sentence
// bigrams.
func scoreRepetition(sentences []string) float64 {
	if len(sentences) < minSentencesForRepetition {
		return 0.0
	}

	score := 0.0

	// A single flat bonus however many openers repeat.
	for _, count := range openerCounts(sentences) {
		if count > openerRepeatBound {
			score += openerRepeatScore

			break
		}
	}

	repeated := 0

	for _, count := range bigramCounts(sentences) {
		if count > bigramRepeatBound {
			repeated++
		}
	}

	if repeated > 0 {
		score += math.Min(float64(repeated)*bigramRepeatWeight, bigramScoreCap)
	}

	return clampScore(score)
}

// openerCounts tallies the lowercased first word of each sentence.
func openerCounts(sentences []string) map[string]int {
	counts := make(map[string]int, len(sentences))

	for _, opener := range sentenceOpeners(sentences) {
		counts[opener]++
	}

	return counts
}

// sentenceOpeners returns the lowercased first word of each sentence, in
// sentence order.
func sentenceOpeners(sentences []string) []string {
	openers := make([]string, 0, len(sentences))

	for _, sentence := range sentences {
		words := strings.Fields(sentence)
		if len(words) == 0 {
			openers = append(openers, "")

			continue
		}

		openers = append(openers, strings.ToLower(words[0]))
	}

	return openers
}

// bigramCounts tallies consecutive lowercased word pairs within each
// sentence. Pairs never span a sentence boundary.
func bigramCounts(sentences []string) map[string]int {
	counts := make(map[string]int)

	for _, sentence := range sentences {
		words := strings.Fields(strings.ToLower(sentence))
		if len(words) < bigramLength {
			continue
		}

		for i := 0; i < len(words)-1; i++ {
			counts[words[i]+" "+words[i+1]]++
		}
	}

	return counts
}
