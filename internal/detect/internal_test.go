package detect

import (
	"math"
	"testing"

	"github.com/ai-media-detector/detection-service/internal/core"
)

func TestAggregationWeightsSumToOne(t *testing.T) {
	t.Parallel()

	sum := patternWeight + vocabularyWeight + structureWeight +
		consistencyWeight + repetitionWeight

	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("Expected weights to sum to 1.0, got %v", sum)
	}
}

func TestClassifyLikelihood_Bands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		overall  float64
		expected core.Likelihood
	}{
		{name: "zero", overall: 0.0, expected: core.LikelihoodVeryLow},
		{name: "below low bound", overall: 0.19, expected: core.LikelihoodVeryLow},
		{name: "low bound inclusive", overall: 0.20, expected: core.LikelihoodLow},
		{name: "below medium bound", overall: 0.34, expected: core.LikelihoodLow},
		{name: "medium bound inclusive", overall: 0.35, expected: core.LikelihoodMedium},
		{name: "below high bound", overall: 0.54, expected: core.LikelihoodMedium},
		{name: "high bound inclusive", overall: 0.55, expected: core.LikelihoodHigh},
		{name: "maximum", overall: 1.0, expected: core.LikelihoodHigh},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			likelihood, message := classifyLikelihood(testCase.overall)
			if likelihood != testCase.expected {
				t.Errorf("Expected %q for %v, got %q",
					testCase.expected, testCase.overall, likelihood)
			}

			if message == "" {
				t.Error("Expected a non-empty band message")
			}
		})
	}
}

func TestClassifyLikelihood_Monotonic(t *testing.T) {
	t.Parallel()

	rank := map[core.Likelihood]int{
		core.LikelihoodVeryLow: 0,
		core.LikelihoodLow:     1,
		core.LikelihoodMedium:  2,
		core.LikelihoodHigh:    3,
	}

	previous := -1

	for overall := 0.0; overall <= 1.0; overall += 0.01 {
		likelihood, _ := classifyLikelihood(overall)
		if rank[likelihood] < previous {
			t.Fatalf("Likelihood decreased at overall=%v", overall)
		}

		previous = rank[likelihood]
	}
}

func TestVariationCoefficient_ZeroMeanFallback(t *testing.T) {
	t.Parallel()

	cv := variationCoefficient([]float64{0, 0, 0})
	if cv != 1.0 {
		t.Errorf("Expected cv fallback 1.0 for zero mean, got %v", cv)
	}
}

func TestScoreConsistency_PunctuationBandPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{
			// 3 commas over 25 words: ratio 0.12 sits in the narrow band.
			name: "narrow band wins",
			text: "one, two, three, four five six seven eight nine ten " +
				"eleven twelve thirteen fourteen fifteen sixteen seventeen " +
				"eighteen nineteen twenty alpha beta gamma delta epsilon",
			expected: punctuationNarrowScore,
		},
		{
			// 3 commas over 50 words: ratio 0.06 only reaches the wide band.
			name: "wide band fallback",
			text: "one, two, three, four five six seven eight nine ten " +
				"eleven twelve thirteen fourteen fifteen sixteen seventeen " +
				"eighteen nineteen twenty alpha beta gamma delta epsilon " +
				"zeta eta theta iota kappa lambda mu nu xi omicron " +
				"pi rho sigma tau upsilon phi chi psi omega aa " +
				"bb cc dd ee ff",
			expected: punctuationWideScore,
		},
		{
			name:     "no punctuation",
			text:     "one two three four five six seven eight nine ten",
			expected: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			score := scoreConsistency(parseDocument(testCase.text))
			if score != testCase.expected {
				t.Errorf("Expected consistency %v, got %v", testCase.expected, score)
			}
		})
	}
}

func TestScoreConsistency_ParagraphUniformity(t *testing.T) {
	t.Parallel()

	// Three identical-length paragraphs, no commas: only the paragraph
	// bonus applies.
	text := "one two three four five six seven eight\n\n" +
		"alpha beta gamma delta epsilon zeta eta theta\n\n" +
		"red orange yellow green blue indigo violet pink"

	score := scoreConsistency(parseDocument(text))
	if score != uniformParagraphScore {
		t.Errorf("Expected paragraph uniformity score %v, got %v",
			uniformParagraphScore, score)
	}
}

func TestScoreStructure_TooFewSentences(t *testing.T) {
	t.Parallel()

	score := scoreStructure([]string{"just one sentence"})
	if score != insufficientSignalScore {
		t.Errorf("Expected fallback %v, got %v", insufficientSignalScore, score)
	}
}

func TestScoreVocabulary_TooFewWords(t *testing.T) {
	t.Parallel()

	score := scoreVocabulary([]string{"one", "two", "three"})
	if score != insufficientSignalScore {
		t.Errorf("Expected fallback %v, got %v", insufficientSignalScore, score)
	}
}

func TestScoreRepetition_TooFewSentences(t *testing.T) {
	t.Parallel()

	score := scoreRepetition([]string{"first one", "second one"})
	if score != 0 {
		t.Errorf("Expected zero for two sentences, got %v", score)
	}
}

func TestScorePatterns_EmptyWordList(t *testing.T) {
	t.Parallel()

	// Empty input has no whitespace tokens and punctuation-only tokens
	// strip to nothing; the transition contribution must stay zero.
	for _, input := range []string{"", "..."} {
		score := scorePatterns(parseDocument(input))
		if score != 0 {
			t.Errorf("Expected zero pattern score for %q, got %v", input, score)
		}
	}
}

func TestParseDocument_Decompositions(t *testing.T) {
	t.Parallel()

	doc := parseDocument("First part. Second part!\n\nThird part?")

	if len(doc.sentences) != 3 {
		t.Errorf("Expected 3 sentences, got %d: %v", len(doc.sentences), doc.sentences)
	}

	if len(doc.paragraphs) != 2 {
		t.Errorf("Expected 2 paragraphs, got %d: %v", len(doc.paragraphs), doc.paragraphs)
	}

	if len(doc.fields) != 6 {
		t.Errorf("Expected 6 whitespace tokens, got %d: %v", len(doc.fields), doc.fields)
	}

	if len(doc.words) != 6 {
		t.Errorf("Expected 6 word tokens, got %d: %v", len(doc.words), doc.words)
	}
}

func TestCollectIndicators_FixedOrder(t *testing.T) {
	t.Parallel()

	text := "As an AI language model, I don't have personal opinions. " +
		"However, it's important to note that furthermore, moreover, " +
		"this topic is comprehensive."

	indicators := collectIndicators(parseDocument(text))

	expected := []string{
		"❌ Contains explicit AI self-reference phrases",
		"⚠️ Uses common AI hedging phrases",
		"⚠️ High usage of AI buzzwords (1 instances)",
		"⚠️ Excessive formal transition words (13.6%)",
	}

	if len(indicators) != len(expected) {
		t.Fatalf("Expected %d indicators, got %d: %v", len(expected), len(indicators), indicators)
	}

	for i, want := range expected {
		if indicators[i] != want {
			t.Errorf("Indicator %d: expected %q, got %q", i, want, indicators[i])
		}
	}
}

func TestMostRepeatedOpener_FirstAppearanceWinsTies(t *testing.T) {
	t.Parallel()

	sentences := []string{
		"alpha one", "beta one", "alpha two", "beta two", "alpha three", "beta three",
	}

	opener, count := mostRepeatedOpener(sentences)
	if opener != "alpha" || count != 3 {
		t.Errorf("Expected ('alpha', 3), got (%q, %d)", opener, count)
	}
}
