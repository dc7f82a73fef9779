package detect

import (
	"fmt"
	"regexp"
)

// Indicator messages. The leading marker flags signal strength: ❌ for a
// strong signal, ⚠️ for a weak one, ✓ for the all-clear fallback.
const (
	indicatorSelfReference   = "❌ Contains explicit AI self-reference phrases"
	indicatorHedging         = "⚠️ Uses common AI hedging phrases"
	indicatorMetaphor        = "⚠️ Uses AI-typical metaphorical language"
	indicatorBuzzwordsFmt    = "⚠️ High usage of AI buzzwords (%d instances)"
	indicatorTransitionsFmt  = "⚠️ Excessive formal transition words (%.1f%%)"
	indicatorUniformSentence = "⚠️ Unnaturally consistent sentence structure"
	indicatorUniformParas    = "⚠️ Uniformly balanced paragraph lengths"
	indicatorOpenersFmt      = "⚠️ Repetitive sentence openings ('%s' used %d times)"
	indicatorNoneFound       = "✓ No strong AI indicators detected"
)

// Indicator thresholds. These are looser than the scoring thresholds on
// purpose: an indicator explains a signal, it does not recompute the score.
const (
	indicatorBuzzwordRatio    = 0.02
	indicatorTransitionRatio  = 0.07
	indicatorMinSentences     = 3
	indicatorMinParagraphs    = 3
	indicatorParaSpreadBound  = 30
	indicatorOpenerRepeatsMin = 2
)

// Lightweight pattern subsets used only for explanations.
var (
	selfReferencePattern = regexp.MustCompile(
		`(?i)\b(as an AI|I am an AI|language model|AI assistant)\b`)
	hedgingPattern = regexp.MustCompile(
		`(?i)\b(it's important to note|it's worth noting|it should be noted)\b`)
	metaphorPattern = regexp.MustCompile(
		`(?i)\b(delve into|dive into|embark on|journey into|landscape of)\b`)
)

// collectIndicators re-derives human-readable explanations from the parsed
// text. The check order is fixed; checks that do not trigger are omitted,
// and the list is never empty.
func collectIndicators(doc *document) []string {
	indicators := make([]string, 0, 8)

	if selfReferencePattern.MatchString(doc.lower) {
		indicators = append(indicators, indicatorSelfReference)
	}

	if hedgingPattern.MatchString(doc.lower) {
		indicators = append(indicators, indicatorHedging)
	}

	if metaphorPattern.MatchString(doc.lower) {
		indicators = append(indicators, indicatorMetaphor)
	}

	indicators = appendLexiconIndicators(indicators, doc)
	indicators = appendStructureIndicators(indicators, doc)

	if len(indicators) == 0 {
		indicators = append(indicators, indicatorNoneFound)
	}

	return indicators
}

// appendLexiconIndicators adds the buzzword-density and transition-density
// explanations, each quoting the concrete count or percentage.
func appendLexiconIndicators(indicators []string, doc *document) []string {
	if len(doc.fields) == 0 {
		return indicators
	}

	total := float64(len(doc.fields))

	buzzwords := 0

	for _, field := range doc.fields {
		if _, ok := aiBuzzwords[stripTokenPunctuation(field)]; ok {
			buzzwords++
		}
	}

	if float64(buzzwords)/total > indicatorBuzzwordRatio {
		indicators = append(indicators,
			fmt.Sprintf(indicatorBuzzwordsFmt, buzzwords))
	}

	if ratio := transitionRatio(doc.fields); ratio > indicatorTransitionRatio {
		indicators = append(indicators,
			fmt.Sprintf(indicatorTransitionsFmt, ratio*percentScale))
	}

	return indicators
}

// appendStructureIndicators adds the sentence-uniformity, paragraph-balance
// and repeated-opener explanations.
func appendStructureIndicators(indicators []string, doc *document) []string {
	if len(doc.sentences) >= indicatorMinSentences {
		if variationCoefficient(wordCounts(doc.sentences)) < uniformCVBound {
			indicators = append(indicators, indicatorUniformSentence)
		}
	}

	if len(doc.paragraphs) >= indicatorMinParagraphs {
		lengths := wordCounts(doc.paragraphs)
		if maxValue(lengths)-minValue(lengths) < indicatorParaSpreadBound {
			indicators = append(indicators, indicatorUniformParas)
		}
	}

	if len(doc.sentences) >= indicatorMinSentences {
		opener, repeats := mostRepeatedOpener(doc.sentences)
		if repeats > indicatorOpenerRepeatsMin {
			indicators = append(indicators,
				fmt.Sprintf(indicatorOpenersFmt, opener, repeats))
		}
	}

	return indicators
}

// mostRepeatedOpener returns the most frequent sentence opener and its
// count. Ties resolve to the opener that appears first in the text, keeping
// the explanation deterministic.
func mostRepeatedOpener(sentences []string) (string, int) {
	counts := openerCounts(sentences)

	best := ""
	bestCount := 0

	for _, opener := range sentenceOpeners(sentences) {
		if counts[opener] > bestCount {
			best = opener
			bestCount = counts[opener]
		}
	}

	return best, bestCount
}

func maxValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

func minValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}

	return best
}
