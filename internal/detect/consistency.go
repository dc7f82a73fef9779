package detect

import "strings"

// Consistency scoring thresholds. The narrow punctuation band sits inside
// the wide one; the narrow bonus wins and the two never stack.
const (
	punctuationNarrowMin   = 0.08
	punctuationNarrowMax   = 0.15
	punctuationWideMin     = 0.05
	punctuationWideMax     = 0.18
	punctuationNarrowScore = 0.5
	punctuationWideScore   = 0.25

	minParagraphsForBalance = 2

	uniformParagraphCVBound     = 0.25
	semiUniformParagraphCVBound = 0.40
	uniformParagraphScore       = 0.5
	semiUniformParagraphScore   = 0.3
)

// scoreConsistency rates punctuation-density uniformity and paragraph-length
// uniformity.
func scoreConsistency(doc *document) float64 {
	score := 0.0

	punctuation := strings.Count(doc.raw, ",") +
		strings.Count(doc.raw, ";") +
		strings.Count(doc.raw, ":")

	ratio := 0.0
	if len(doc.fields) > 0 {
		ratio = float64(punctuation) / float64(len(doc.fields))
	}

	switch {
	case ratio >= punctuationNarrowMin && ratio <= punctuationNarrowMax:
		score += punctuationNarrowScore
	case ratio >= punctuationWideMin && ratio <= punctuationWideMax:
		score += punctuationWideScore
	}

	if len(doc.paragraphs) >= minParagraphsForBalance {
		switch cv := variationCoefficient(wordCounts(doc.paragraphs)); {
		case cv < uniformParagraphCVBound:
			score += uniformParagraphScore
		case cv < semiUniformParagraphCVBound:
			score += semiUniformParagraphScore
		}
	}

	return clampScore(score)
}
