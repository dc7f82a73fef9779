package core

// Likelihood is the discrete band derived from the overall probability.
type Likelihood string

// Likelihood bands, from least to most AI-like.
const (
	LikelihoodVeryLow Likelihood = "Very Low"
	LikelihoodLow     Likelihood = "Low"
	LikelihoodMedium  Likelihood = "Medium"
	LikelihoodHigh    Likelihood = "High"
)

// Metrics holds the per-analyzer breakdown, each value scaled to [0, 100]
// and rounded to two decimals.
type Metrics struct {
	PatternScore     float64 `json:"pattern_score"`
	VocabularyScore  float64 `json:"vocabulary_score"`
	StructureScore   float64 `json:"structure_score"`
	ConsistencyScore float64 `json:"consistency_score"`
	RepetitionScore  float64 `json:"repetition_score"`
}

// Statistics holds raw counts about the analyzed text.
//
// WordCount comes from a plain whitespace split while UniqueWordRatio is
// computed over word-boundary tokens; the two tokenizers are intentionally
// different and must not be unified.
type Statistics struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	UniqueWordRatio   float64 `json:"unique_word_ratio"`
}

// Result is the complete outcome of a successful text analysis.
type Result struct {
	Success       bool       `json:"success"`
	AIProbability float64    `json:"ai_probability"`
	Likelihood    Likelihood `json:"likelihood"`
	Message       string     `json:"message"`
	Metrics       Metrics    `json:"metrics"`
	Indicators    []string   `json:"indicators"`
	Statistics    Statistics `json:"statistics"`
}
