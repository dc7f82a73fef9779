// Package detect implements a heuristic scorer that estimates, from text
// alone, how likely the text was produced by a language model.
//
// Five independent analyzers examine the same parsed representation of the
// input (explicit AI phrasing, sentence structure, vocabulary, punctuation
// and paragraph consistency, repetition) and a weighted sum of their scores
// is mapped onto a discrete likelihood band. The scorer is a pure
// computation: it performs no I/O, holds no mutable state, and is safe for
// concurrent use. It is an explainable rule-based estimator, not a trained
// classifier.
package detect

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ai-media-detector/detection-service/internal/core"
)

// DefaultMinTextLength is the minimum number of characters a trimmed text
// must have before analysis runs, unless the caller overrides it.
const DefaultMinTextLength = 50

// ErrTextTooShort indicates the input was below the minimum length. This is
// a normal, non-retryable outcome: the caller should ask for more text.
var ErrTextTooShort = errors.New("text too short for analysis")

// Analyzer weights. They are fixed constants and must sum to exactly 1.0.
const (
	patternWeight     = 0.35
	vocabularyWeight  = 0.25
	structureWeight   = 0.20
	consistencyWeight = 0.15
	repetitionWeight  = 0.05
)

// Likelihood band thresholds, inclusive lower bounds on the overall score.
const (
	highBandThreshold   = 0.55
	mediumBandThreshold = 0.35
	lowBandThreshold    = 0.20
)

// Band messages.
const (
	messageHigh    = "This text shows strong indicators of being AI-generated"
	messageMedium  = "This text shows moderate indicators of being AI-generated"
	messageLow     = "This text shows some indicators of being AI-generated"
	messageVeryLow = "This text appears to be human-written"
)

const percentScale = 100

// Detector scores text for signs of machine generation. The zero value is
// ready to use; all lexicons are package-level immutable constants.
type Detector struct{}

// New creates a Detector.
func New() *Detector {
	return &Detector{}
}

// Analyze scores the given text and returns the full analysis result.
//
// minTextLength overrides the minimum trimmed length; zero or less selects
// DefaultMinTextLength. Inputs below the minimum return ErrTextTooShort.
// Given the same text the result is always identical.
func (d *Detector) Analyze(text string, minTextLength int) (*core.Result, error) {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return nil, fmt.Errorf(
			"%w (minimum %d characters)", ErrTextTooShort, minTextLength,
		)
	}

	doc := parseDocument(text)

	patternScore := scorePatterns(doc)
	structureScore := scoreStructure(doc.sentences)
	vocabularyScore := scoreVocabulary(doc.words)
	consistencyScore := scoreConsistency(doc)
	repetitionScore := scoreRepetition(doc.sentences)

	overall := patternScore*patternWeight +
		vocabularyScore*vocabularyWeight +
		structureScore*structureWeight +
		consistencyScore*consistencyWeight +
		repetitionScore*repetitionWeight

	likelihood, message := classifyLikelihood(overall)

	return &core.Result{
		Success:       true,
		AIProbability: roundTwoDecimals(overall * percentScale),
		Likelihood:    likelihood,
		Message:       message,
		Metrics: core.Metrics{
			PatternScore:     roundTwoDecimals(patternScore * percentScale),
			VocabularyScore:  roundTwoDecimals(vocabularyScore * percentScale),
			StructureScore:   roundTwoDecimals(structureScore * percentScale),
			ConsistencyScore: roundTwoDecimals(consistencyScore * percentScale),
			RepetitionScore:  roundTwoDecimals(repetitionScore * percentScale),
		},
		Indicators: collectIndicators(doc),
		Statistics: buildStatistics(doc),
	}, nil
}

// classifyLikelihood maps the overall score onto its discrete band.
func classifyLikelihood(overall float64) (core.Likelihood, string) {
	switch {
	case overall >= highBandThreshold:
		return core.LikelihoodHigh, messageHigh
	case overall >= mediumBandThreshold:
		return core.LikelihoodMedium, messageMedium
	case overall >= lowBandThreshold:
		return core.LikelihoodLow, messageLow
	default:
		return core.LikelihoodVeryLow, messageVeryLow
	}
}

// buildStatistics assembles the raw count block. The word count uses a plain
// whitespace split while the unique-word ratio uses word-boundary tokens;
// the mismatch is part of the contract.
func buildStatistics(doc *document) core.Statistics {
	stats := core.Statistics{
		WordCount:         len(doc.fields),
		SentenceCount:     len(doc.sentences),
		AvgSentenceLength: 0,
		UniqueWordRatio:   0,
	}

	if len(doc.sentences) > 0 {
		total := 0.0
		for _, length := range wordCounts(doc.sentences) {
			total += length
		}

		stats.AvgSentenceLength = roundTwoDecimals(total / float64(len(doc.sentences)))
	}

	if len(doc.words) > 0 {
		stats.UniqueWordRatio = roundTwoDecimals(
			float64(countUniqueWords(doc.words)) / float64(len(doc.words)),
		)
	}

	return stats
}
